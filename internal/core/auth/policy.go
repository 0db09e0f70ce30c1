package auth

import (
	"context"
	"errors"

	"github.com/planwise/scheduling-api/internal/core/domain"
)

// RoleSource resolves the effective role for a set of decoded claims.
type RoleSource interface {
	Role(ctx context.Context, claims *Claims) (string, error)
}

// TokenRoleSource trusts the role snapshot embedded at issuance. Cheapest
// option, but a role change only takes effect once the token expires.
type TokenRoleSource struct{}

func (TokenRoleSource) Role(_ context.Context, claims *Claims) (string, error) {
	return claims.Role, nil
}

// StoreRoleSource re-fetches the current role from the user store on every
// request, so role changes apply without forcing re-login. The token's
// embedded role is ignored.
type StoreRoleSource struct {
	lookup CredentialLookup
}

func NewStoreRoleSource(lookup CredentialLookup) *StoreRoleSource {
	return &StoreRoleSource{lookup: lookup}
}

func (s *StoreRoleSource) Role(ctx context.Context, claims *Claims) (string, error) {
	record, err := s.lookup.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	return record.Role, nil
}

// Policy is the single allow/deny decision point for protected operations.
// Every role-gated route goes through Authorize; no handler compares role
// strings on its own.
type Policy struct {
	codec *TokenCodec
	roles RoleSource
}

func NewPolicy(codec *TokenCodec, roles RoleSource) *Policy {
	return &Policy{codec: codec, roles: roles}
}

// Authorize decodes token, resolves the caller's current role and, when
// requiredRoles is non-empty, requires exact membership in that set. There
// is no implicit hierarchy: a route open to super_admin must list it.
// Token failures propagate unchanged (ErrTokenExpired, ErrTokenMalformed);
// an insufficient role is domain.ErrForbidden.
func (p *Policy) Authorize(ctx context.Context, token string, requiredRoles ...string) (*Identity, error) {
	claims, err := p.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	role, err := p.roles.Role(ctx, claims)
	if err != nil {
		// A token whose subject no longer exists is indistinguishable
		// from bad credentials; anything else is a store failure.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := p.Require(role, requiredRoles...); err != nil {
		return nil, err
	}

	return &Identity{Email: claims.Subject, Role: role}, nil
}

// Require checks exact membership of role in requiredRoles. An empty
// required set allows any authenticated caller.
func (p *Policy) Require(role string, requiredRoles ...string) error {
	if len(requiredRoles) == 0 {
		return nil
	}
	for _, r := range requiredRoles {
		if role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}
