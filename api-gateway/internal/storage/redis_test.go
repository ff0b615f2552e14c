package storage

import (
	"context"
	"testing"
	"time"

	"nuerpay-gateway/api-gateway/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_Keys(t *testing.T) {
	cache := &RedisCache{}

	assert.Equal(t, "gateway:restaurants:1,2", cache.RestaurantsKey("1,2"))
	assert.Equal(t, "gateway:restaurant:r1", cache.RestaurantKey("r1"))
	assert.Equal(t, "gateway:items:r1", cache.ItemsKey("r1"))
}

func TestRedisCache_GetSet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var missed []domain.Restaurant
	hit, err := cache.Get(ctx, cache.RestaurantsKey(""), &missed)
	require.NoError(t, err)
	assert.False(t, hit)

	restaurants := []domain.Restaurant{{ID: domain.NewScalar("r1"), Name: domain.NewScalar("Pizza")}}
	require.NoError(t, cache.Set(ctx, cache.RestaurantsKey(""), restaurants))
	assert.Equal(t, time.Minute, mr.TTL(cache.RestaurantsKey("")))

	var cached []domain.Restaurant
	hit, err = cache.Get(ctx, cache.RestaurantsKey(""), &cached)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, restaurants, cached)
}

func TestRedisCache_GetCorrupt(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set(cache.RestaurantKey("r1"), "{not json"))

	var restaurant domain.Restaurant
	hit, err := cache.Get(context.Background(), cache.RestaurantKey("r1"), &restaurant)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedisCache_InvalidateRestaurant(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, cache.RestaurantKey("r1"), domain.Restaurant{ID: domain.NewScalar("r1")}))
	require.NoError(t, cache.Set(ctx, cache.RestaurantKey("r2"), domain.Restaurant{ID: domain.NewScalar("r2")}))
	require.NoError(t, cache.Set(ctx, cache.RestaurantsKey(""), []domain.Restaurant{{ID: domain.NewScalar("r1")}}))
	require.NoError(t, cache.Set(ctx, cache.RestaurantsKey("1,2"), []domain.Restaurant{{ID: domain.NewScalar("r1")}}))
	require.NoError(t, cache.Set(ctx, cache.ItemsKey("r1"), []domain.Item{{ID: domain.NewScalar("i1")}}))

	require.NoError(t, cache.InvalidateRestaurant(ctx, "r1"))

	assert.False(t, mr.Exists(cache.RestaurantKey("r1")))
	assert.False(t, mr.Exists(cache.RestaurantsKey("")))
	assert.False(t, mr.Exists(cache.RestaurantsKey("1,2")))
	assert.True(t, mr.Exists(cache.RestaurantKey("r2")))
	assert.True(t, mr.Exists(cache.ItemsKey("r1")))
}

func TestRedisCache_Unavailable(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	var restaurant domain.Restaurant
	_, err := cache.Get(context.Background(), cache.RestaurantKey("r1"), &restaurant)
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), cache.RestaurantKey("r1"), restaurant))
}
