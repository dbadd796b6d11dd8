package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakarsu/go_deli/internal/cart"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	sessionID := "sess-123"

	c := &cart.Cart{
		Items: []cart.LineItem{
			{ID: 1, Name: "Chef Salad", UnitPrice: 1595, Quantity: 2},
			{ID: 2, Name: "Beef Gyro", UnitPrice: 1294, Quantity: 1},
		},
		IsOpen: true,
	}

	cartJSON, _ := json.Marshal(c)
	mr.Set(cacheKey(sessionID), string(cartJSON))

	result, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(1), result.Items[0].ID)
	assert.Equal(t, 2, result.Items[0].Quantity)
	assert.True(t, result.IsOpen)
}

func TestRedisGet_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := cache.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestRedisGet_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cacheKey("bad"), "{not json")

	_, err := cache.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisSetThenGet(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	c := &cart.Cart{Items: []cart.LineItem{{ID: 5, Name: "Acai Bowl", UnitPrice: 1297, Quantity: 1}}}

	require.NoError(t, cache.Set(ctx, "sess-1", c))

	got, err := cache.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Acai Bowl", got.Items[0].Name)
}

func TestRedisSet_AppliesTTL(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	c := &cart.Cart{}
	require.NoError(t, cache.Set(context.Background(), "sess-1", c))

	ttl := mr.TTL(cacheKey("sess-1"))
	assert.GreaterOrEqual(t, ttl, cache.baseTTL)
}

func TestRedisDelete(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cacheKey("sess-1"), "{}")

	require.NoError(t, cache.Delete(context.Background(), "sess-1"))
	assert.False(t, mr.Exists(cacheKey("sess-1")))
}
