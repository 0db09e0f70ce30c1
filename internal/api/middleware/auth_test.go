package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/domain"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_ValidTokenSetsContext(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	policy := auth.NewPolicy(codec, auth.TokenRoleSource{})

	token, err := codec.Issue("bob@x.com", domain.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	c, rec := newAuthTestContext("Bearer " + token)
	handler := Auth(policy)(func(c echo.Context) error {
		if got, _ := c.Get("email").(string); got != "bob@x.com" {
			t.Fatalf("expected email in context, got %q", got)
		}
		if got, _ := c.Get("role").(string); got != domain.RoleAdmin {
			t.Fatalf("expected role in context, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	policy := auth.NewPolicy(auth.NewTokenCodec("secret", time.Hour), auth.TokenRoleSource{})

	c, _ := newAuthTestContext("")
	err := Auth(policy)(okHandler)(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	policy := auth.NewPolicy(auth.NewTokenCodec("secret", time.Hour), auth.TokenRoleSource{})

	for _, header := range []string{"Basic abc", "Bearer"} {
		c, _ := newAuthTestContext(header)
		err := Auth(policy)(okHandler)(c)

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_BadToken(t *testing.T) {
	policy := auth.NewPolicy(auth.NewTokenCodec("secret", time.Hour), auth.TokenRoleSource{})

	c, _ := newAuthTestContext("Bearer not-a-token")
	if err := Auth(policy)(okHandler)(c); !errors.Is(err, auth.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := auth.NewTokenCodec("secret", time.Hour).WithClock(func() time.Time { return now })
	policy := auth.NewPolicy(codec, auth.TokenRoleSource{})

	token, _ := codec.Issue("bob@x.com", domain.RoleMember, time.Minute)
	codec.WithClock(func() time.Time { return now.Add(time.Hour) })

	c, _ := newAuthTestContext("Bearer " + token)
	if err := Auth(policy)(okHandler)(c); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
