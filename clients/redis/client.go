package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/mo"

	"sentrybot/clients"
)

// RedisKeyValueStore implements the clients.KeyValueStore interface on top
// of a Redis connection. Expiration is enforced by Redis itself.
type RedisKeyValueStore struct {
	client *goredis.Client
}

var _ clients.KeyValueStore = (*RedisKeyValueStore)(nil)

// NewRedisKeyValueStore creates a key-value store from a Redis URL
// (redis://[user:password@]host:port[/db])
func NewRedisKeyValueStore(redisURL string) (*RedisKeyValueStore, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisKeyValueStore{client: goredis.NewClient(opts)}, nil
}

// Ping verifies the Redis connection is alive
func (s *RedisKeyValueStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *RedisKeyValueStore) Close() error {
	return s.client.Close()
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) (mo.Option[[]byte], error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return mo.None[[]byte](), nil
		}
		return mo.None[[]byte](), fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return mo.Some(value), nil
}

func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
