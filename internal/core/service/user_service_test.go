package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/planwise/scheduling-api/internal/core/auth"
	"github.com/planwise/scheduling-api/internal/core/domain"
	"github.com/planwise/scheduling-api/internal/core/ports"
)

type stubInvalidator struct {
	invalidated []string
}

func (s *stubInvalidator) Invalidate(_ context.Context, email string) error {
	s.invalidated = append(s.invalidated, email)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{
		Surname: "Doe", Name: "Test", Email: email, Role: role, PasswordHash: "$2a$04$x",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_Update_RoleChangeInvalidatesCache(t *testing.T) {
	repo := newStubUserRepo()
	inv := &stubInvalidator{}
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), inv, zerolog.Nop())

	user := seedUser(t, repo, "carl@x.com", domain.RoleMember)

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %+v", updated)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != "carl@x.com" {
		t.Fatalf("expected role cache invalidation for carl@x.com, got %v", inv.invalidated)
	}
}

func TestUserService_Update_EmailMoveInvalidatesBoth(t *testing.T) {
	repo := newStubUserRepo()
	inv := &stubInvalidator{}
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), inv, zerolog.Nop())

	user := seedUser(t, repo, "old@x.com", domain.RoleMember)

	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Email: "new@x.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(inv.invalidated) != 2 || inv.invalidated[0] != "old@x.com" || inv.invalidated[1] != "new@x.com" {
		t.Fatalf("expected both addresses invalidated, got %v", inv.invalidated)
	}
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), nil, zerolog.Nop())

	seedUser(t, repo, "taken@x.com", domain.RoleMember)
	user := seedUser(t, repo, "mine@x.com", domain.RoleMember)

	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Email: "taken@x.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), nil, zerolog.Nop())

	user := seedUser(t, repo, "carl@x.com", domain.RoleMember)

	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: "owner"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), nil, zerolog.Nop())

	user := seedUser(t, repo, "carl@x.com", domain.RoleMember)

	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Delete_InvalidatesCache(t *testing.T) {
	repo := newStubUserRepo()
	inv := &stubInvalidator{}
	svc := NewUserService(repo, auth.NewHasher(bcrypt.MinCost), inv, zerolog.Nop())

	user := seedUser(t, repo, "gone@x.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != "gone@x.com" {
		t.Fatalf("expected invalidation for gone@x.com, got %v", inv.invalidated)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user not deleted: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), auth.NewHasher(bcrypt.MinCost), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
