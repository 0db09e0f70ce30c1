package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

func TestPolicy_RoleGate(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	policy := NewPolicy(codec, TokenRoleSource{})

	token, err := codec.Issue("eve@x.com", domain.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := policy.Authorize(context.Background(), token, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member against admin gate: expected ErrForbidden, got %v", err)
	}

	identity, err := policy.Authorize(context.Background(), token, domain.RoleMember)
	if err != nil {
		t.Fatalf("member against member gate: %v", err)
	}
	if identity.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
}

func TestPolicy_NoRequiredRole(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	policy := NewPolicy(codec, TokenRoleSource{})

	token, _ := codec.Issue("eve@x.com", domain.RoleMember, time.Hour)
	identity, err := policy.Authorize(context.Background(), token)
	if err != nil {
		t.Fatalf("authorize without role requirement: %v", err)
	}
	if identity.Email != "eve@x.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestPolicy_NoImplicitHierarchy(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	policy := NewPolicy(codec, TokenRoleSource{})

	// super_admin is not implicitly allowed where admin is required.
	token, _ := codec.Issue("root@x.com", domain.RoleSuperAdmin, time.Hour)
	if _, err := policy.Authorize(context.Background(), token, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// A route open to both roles lists both.
	if _, err := policy.Authorize(context.Background(), token, domain.RoleAdmin, domain.RoleSuperAdmin); err != nil {
		t.Fatalf("expected allow with explicit set, got %v", err)
	}
}

func TestPolicy_TokenFailuresPropagate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", time.Hour).WithClock(fixedClock(now))
	policy := NewPolicy(codec, TokenRoleSource{})

	token, _ := codec.Issue("eve@x.com", domain.RoleMember, time.Minute)
	codec.WithClock(fixedClock(now.Add(time.Hour)))

	if _, err := policy.Authorize(context.Background(), token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if _, err := policy.Authorize(context.Background(), "garbage"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestPolicy_StoreRoleSource(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	lookup := &stubLookup{users: map[string]*domain.User{
		"eve@x.com": {Email: "eve@x.com", Role: domain.RoleMember},
	}}
	policy := NewPolicy(codec, NewStoreRoleSource(lookup))

	// Token carries a stale admin snapshot; the store says member.
	token, _ := codec.Issue("eve@x.com", domain.RoleAdmin, time.Hour)
	if _, err := policy.Authorize(context.Background(), token, domain.RoleAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected current role to win over snapshot, got %v", err)
	}

	// Promotion takes effect without re-login.
	lookup.users["eve@x.com"].Role = domain.RoleAdmin
	if _, err := policy.Authorize(context.Background(), token, domain.RoleAdmin); err != nil {
		t.Fatalf("expected allow after promotion, got %v", err)
	}
}

func TestPolicy_DeletedSubject(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	policy := NewPolicy(codec, NewStoreRoleSource(&stubLookup{users: map[string]*domain.User{}}))

	token, _ := codec.Issue("gone@x.com", domain.RoleMember, time.Hour)
	if _, err := policy.Authorize(context.Background(), token); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for deleted subject, got %v", err)
	}
}
