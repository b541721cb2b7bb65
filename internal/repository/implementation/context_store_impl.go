package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mist-provisioning-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const defaultStoreTimeout = 3 * time.Second

type RedisContextStore struct {
	rdb     *redis.Client
	prefix  string
	ttl     time.Duration
	timeout time.Duration
}

// NewRedisContextStore namespaces every key with prefix. A zero ttl stores
// keys without expiry.
func NewRedisContextStore(rdb *redis.Client, prefix string, ttl, timeout time.Duration) contract.ContextStore {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &RedisContextStore{
		rdb:     rdb,
		prefix:  prefix,
		ttl:     ttl,
		timeout: timeout,
	}
}

func (s *RedisContextStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisContextStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	val, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", contract.ErrStoreUnavailable, key, err)
	}
	return val, true, nil
}

func (s *RedisContextStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.rdb.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", contract.ErrStoreUnavailable, key, err)
	}
	return nil
}

func (s *RedisContextStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: delete %s: %v", contract.ErrStoreUnavailable, key, err)
	}
	return nil
}

func (s *RedisContextStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrStoreUnavailable, err)
	}
	return nil
}
