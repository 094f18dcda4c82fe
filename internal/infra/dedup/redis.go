package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper implements at-most-once marking on top of SET NX. The key
// expires with the ttl, so memory is bounded by the delivery window, not by
// lifetime event count.
type RedisDeduper struct {
	client *redis.Client
}

func NewRedisDeduper(client *redis.Client) *RedisDeduper {
	return &RedisDeduper{client: client}
}

// MarkOnce returns true the first time key is seen within ttl
func (d *RedisDeduper) MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup: MarkOnce - setnx %s: %w", key, err)
	}
	return ok, nil
}
