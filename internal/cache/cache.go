// Package cache provides a small key/value cache used for read-through lookups
// of catalog entities.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encodable values under string keys.
type Cache interface {
	// Get decodes the cached value into dest. It reports false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
	// DeleteDomain removes every key created with Key(domain, ...).
	DeleteDomain(ctx context.Context, domain string) error
}

// NewRedisClient returns a go-redis client for redisURL (e.g. redis://localhost:6379/0)
// after checking the server answers a PING.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("empty redis url")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// RedisCache implements Cache on top of Redis with a fixed TTL per entry.
type RedisCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a RedisCache. Keys are namespaced with prefix.
func NewRedisCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisCache) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// Get retrieves key and unmarshals it into dest. Corrupt entries are evicted.
func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.client.Del(ctx, r.key(key))
		return false, fmt.Errorf("failed to unmarshal cached value: %w", err)
	}
	return true, nil
}

// Set marshals value as JSON and stores it with the cache TTL.
func (r *RedisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

// DeleteDomain scans for domain:* keys and removes them.
func (r *RedisCache) DeleteDomain(ctx context.Context, domain string) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.key(domain)+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan failed: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

// NoOpCache never stores anything. It is used when caching is disabled.
type NoOpCache struct{}

// NewNoOpCache creates a cache that always misses.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (n *NoOpCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (n *NoOpCache) Set(ctx context.Context, key string, value any) error {
	return nil
}

func (n *NoOpCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (n *NoOpCache) DeleteDomain(ctx context.Context, domain string) error {
	return nil
}

// Key joins a domain name and an id into a cache key, e.g. Key("movie", 7) = "movie:7".
func Key(domain string, id int64) string {
	return fmt.Sprintf("%s:%d", domain, id)
}

// Load returns the value cached under key, or calls load and caches its result.
// Cache failures degrade to a plain load; errors from load are returned as is
// and never cached.
func Load[T any](ctx context.Context, c Cache, key string, load func(context.Context) (*T, error)) (*T, error) {
	var cached T
	if hit, err := c.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	_ = c.Set(ctx, key, value)
	return value, nil
}
