package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/domain"
	"github.com/GustavoTiagoSilva/simplified-twitter/internal/core/ports"
)

const (
	roleCacheTTL = time.Hour
	pingTimeout  = 5 * time.Second
)

// Config locates the Redis instance backing the role cache.
type Config struct {
	Addr string
	DB   int
}

// Connect initialises the Redis client shared by the role cache and the
// readiness probe, validating connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RoleCache is a read-through cache over a RoleRepository. The role catalog
// is closed and effectively static, so entries are cached by name.
// Key format: role:<name>
type RoleCache struct {
	client *redis.Client
	next   ports.RoleRepository
}

// NewRoleCache wraps the given repository with a Redis-backed cache.
func NewRoleCache(client *redis.Client, next ports.RoleRepository) *RoleCache {
	return &RoleCache{client: client, next: next}
}

// FindByName returns the cached role when present, otherwise delegates and
// caches the result. Cache failures fall through to the repository; a broken
// cache never fails a lookup.
func (c *RoleCache) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Result()
	if err == nil {
		var role domain.Role
		if json.Unmarshal([]byte(raw), &role) == nil {
			return &role, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return c.next.FindByName(ctx, name)
	}

	role, err := c.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(role); err == nil {
		_ = c.client.Set(ctx, c.key(name), encoded, roleCacheTTL).Err()
	}
	return role, nil
}

func (c *RoleCache) key(name string) string {
	return fmt.Sprintf("role:%s", name)
}
