package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", input.Email)
			}
			return &domain.User{ID: "u1", Email: input.Email, Role: domain.RoleMember}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"surname":"Doe","name":"Alice","email":"alice@example.com","password":"s3cret"}`
	c, rec := newJSONContext(http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not expose password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	})

	cases := []string{
		`{"surname":"Doe","name":"A","email":"not-an-email","password":"s3cret"}`,
		`{"surname":"Doe","name":"A","email":"a@x.com","password":"short"}`,
		`{"surname":"Doe","name":"A","email":"a@x.com","password":"s3cret","role":"owner"}`,
	}
	for _, body := range cases {
		c, rec := newJSONContext(http.MethodPost, "/auth/register", body)
		if err := h.Register(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	body := `{"surname":"Doe","name":"Bob","email":"bob@example.com","password":"s3cret"}`
	c, rec := newJSONContext(http.MethodPost, "/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "bob@x.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s/%s", email, password)
			}
			return "signed-token", &domain.User{Email: email, Role: domain.RoleMember}, nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"bob@x.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("expected token in response, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	// The failure is returned for the central error handler to render.
	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"bob@x.com","password":"nope"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(http.MethodGet, "/v1/me", "")
	c.Set("email", "bob@x.com")
	c.Set("role", domain.RoleAdmin)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.RoleAdmin) {
		t.Fatalf("expected role in response, got %s", rec.Body.String())
	}
}
