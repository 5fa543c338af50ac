package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "user1:transfers", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "user1:transfers", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "user2:transfers", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("counters carry a ttl", func(t *testing.T) {
		for _, k := range mr.Keys() {
			assert.Positive(t, mr.TTL(k), "key %s has no ttl", k)
		}
	})
}

func TestRateLimitStore_NewWindow(t *testing.T) {
	_, client := newTestClient(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	_, err := store.Allow(ctx, "user3:merge", 1, time.Minute)
	require.NoError(t, err)
	result, err := store.Allow(ctx, "user3:merge", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, (now.Unix()/60+1)*60, result.ResetAt)

	now = now.Add(time.Minute)
	result, err = store.Allow(ctx, "user3:merge", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
