package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRoleTTL = 30 * time.Second

// RoleCache is a short-lived cache in front of the per-request role
// re-fetch. The TTL bounds how long a role change can take to apply
// without forcing a Mongo round-trip on every protected request.
// Key format: role:<email>
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache creates a RoleCache wrapping the given Redis client. A
// non-positive ttl falls back to defaultRoleTTL.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = defaultRoleTTL
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role for email, or ok=false on a miss. Transport
// failures count as misses so Redis downtime degrades to extra Mongo reads
// rather than denied requests.
func (c *RoleCache) Get(ctx context.Context, email string) (role string, ok bool) {
	val, err := c.client.Get(ctx, c.key(email)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the role for email, expiring after the cache TTL.
func (c *RoleCache) Set(ctx context.Context, email, role string) error {
	if err := c.client.Set(ctx, c.key(email), role, c.ttl).Err(); err != nil {
		return fmt.Errorf("role cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached role, forcing the next request to re-fetch.
// Called after role mutations.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *RoleCache) key(email string) string {
	return "role:" + email
}
