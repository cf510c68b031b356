package repository

import (
	"context"
	"errors"
	"time"

	"checkout_core/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisKeyValueStore keeps carts in Redis. Keys expire after ttl as a backstop; the
// staleness rule itself is enforced by the cart storage envelope.
type RedisKeyValueStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

var _ interfaces.IKeyValueStore = (*RedisKeyValueStore)(nil)

func NewRedisKeyValueStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisKeyValueStore {
	return &RedisKeyValueStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
