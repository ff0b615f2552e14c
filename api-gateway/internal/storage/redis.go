package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gateway:"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RestaurantsKey(coordinates string) string {
	return keyPrefix + "restaurants:" + coordinates
}

func (c *RedisCache) RestaurantKey(id string) string {
	return keyPrefix + "restaurant:" + id
}

func (c *RedisCache) ItemsKey(restaurantID string) string {
	return keyPrefix + "items:" + restaurantID
}

// Get decodes the cached JSON under key into dest. A miss returns false and
// no error.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}

// InvalidateRestaurant drops the single restaurant entry and every cached
// restaurant list, since any of them may embed the changed restaurant.
func (c *RedisCache) InvalidateRestaurant(ctx context.Context, id string) error {
	keys := []string{c.RestaurantKey(id)}

	iter := c.Client.Scan(ctx, 0, c.RestaurantsKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	return c.Client.Del(ctx, keys...).Err()
}
