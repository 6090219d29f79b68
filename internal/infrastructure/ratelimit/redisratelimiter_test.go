package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow("user-1", 5)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("user-1", 5)
	require.NoError(t, err)
	assert.False(t, allowed, "sixth request in the window is rejected")
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow("user-1", 3)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow("user-2", 3)
	require.NoError(t, err)
	assert.True(t, allowed, "another user's window is untouched")
}

func TestRedisRateLimiter_ZeroLimitAllows(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))

	allowed, err := limiter.Allow("user-1", 0)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestUnlimited(t *testing.T) {
	allowed, err := Unlimited{}.Allow("anyone", 1)
	require.NoError(t, err)
	assert.True(t, allowed)
}
