package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheRepo is a thin byte-oriented cache over Redis. It backs the
// dev seeding lock and any state that must survive a process restart.
type RedisCacheRepo struct {
	client redis.UniversalClient
}

// NewRedisCacheRepo wraps an already-connected Redis client.
func NewRedisCacheRepo(client redis.UniversalClient) *RedisCacheRepo {
	return &RedisCacheRepo{client: client}
}

var errEmptyCacheKey = errors.New("key cannot be empty")

// Set stores value under key with the given TTL.
func (r *RedisCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errEmptyCacheKey
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns the value stored under key, or nil when the key is absent.
func (r *RedisCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errEmptyCacheKey
	}

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// Delete removes key and reports whether it existed.
func (r *RedisCacheRepo) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyCacheKey
	}

	removed, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return removed > 0, nil
}

// Exists reports whether key is present.
func (r *RedisCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyCacheKey
	}

	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// SetTTL resets the TTL of an existing key and reports whether the key exists.
func (r *RedisCacheRepo) SetTTL(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, errEmptyCacheKey
	}

	ok, err := r.client.Expire(ctx, key, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis expire: %w", err)
	}
	return ok, nil
}

// SetIfNotExists stores value under key only when the key is absent,
// returning whether the write happened. The NX mode and TTL travel in a
// single SET command so racing callers cannot both acquire the key.
func (r *RedisCacheRepo) SetIfNotExists(
	ctx context.Context,
	key string,
	value []byte,
	ttl time.Duration,
) (bool, error) {
	if key == "" {
		return false, errEmptyCacheKey
	}

	if ttl <= 0 {
		ttl = time.Second
	}

	status, err := r.client.SetArgs(ctx, key, value, redis.SetArgs{Mode: "NX", TTL: ttl}).Result()
	if err != nil {
		// A nil reply means the key already existed; that is a normal miss.
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis set nx: %w", err)
	}
	return status == "OK", nil
}

// Health pings the Redis connection.
func (r *RedisCacheRepo) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
