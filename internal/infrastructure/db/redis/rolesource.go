package redis

import (
	"context"

	"github.com/planwise/scheduling-api/internal/core/auth"
)

// CachedRoleSource resolves the caller's current role from the user store,
// fronted by the RoleCache. It is the wired RoleSource for the access
// policy: role changes take effect within the cache TTL, without a Mongo
// round-trip on every request.
type CachedRoleSource struct {
	lookup auth.CredentialLookup
	cache  *RoleCache
}

func NewCachedRoleSource(lookup auth.CredentialLookup, cache *RoleCache) *CachedRoleSource {
	return &CachedRoleSource{lookup: lookup, cache: cache}
}

func (s *CachedRoleSource) Role(ctx context.Context, claims *auth.Claims) (string, error) {
	if role, ok := s.cache.Get(ctx, claims.Subject); ok {
		return role, nil
	}

	record, err := s.lookup.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(ctx, record.Email, record.Role); err != nil {
		// Cache write failure is not a denial; the role is already known.
		return record.Role, nil
	}
	return record.Role, nil
}
