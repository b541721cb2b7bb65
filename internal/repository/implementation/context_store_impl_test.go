package implementation

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"mist-provisioning-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisContextStoreUnavailable(t *testing.T) {
	store := NewRedisContextStore(unreachableRedis(t), "mist:context:", 0, 500*time.Millisecond)
	ctx := context.Background()

	_, found, err := store.Get(ctx, contract.KeyAPIHost)
	assert.False(t, found)
	assert.True(t, errors.Is(err, contract.ErrStoreUnavailable), "get must not report absent on connectivity failure")

	err = store.Set(ctx, contract.KeyAPIHost, "api.mist.com")
	assert.True(t, errors.Is(err, contract.ErrStoreUnavailable))

	err = store.Delete(ctx, contract.KeyAPIHost)
	assert.True(t, errors.Is(err, contract.ErrStoreUnavailable))

	err = store.Ping(ctx)
	assert.True(t, errors.Is(err, contract.ErrStoreUnavailable))
}

func TestRedisContextStoreKeyPrefix(t *testing.T) {
	s := &RedisContextStore{prefix: "mist:context:"}
	assert.Equal(t, "mist:context:org_id", s.key(contract.KeyOrgID))
}
