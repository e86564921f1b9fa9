package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// SuggestionKey derives the cache key for one suggestion request. The topic
// is hashed so arbitrary user input never ends up in a key.
func SuggestionKey(platform, topic string) string {
	sum := sha256.Sum256([]byte(topic))
	return fmt.Sprintf("suggestions:%s:%s", platform, hex.EncodeToString(sum[:8]))
}

func GetString(ctx context.Context, c *redis.Client, key string) (string, bool, error) {
	val, err := c.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func SetString(ctx context.Context, c *redis.Client, key, val string, ttl time.Duration) error {
	return c.Set(ctx, key, val, ttl).Err()
}
