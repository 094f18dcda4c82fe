package dedup

import (
	"context"
	"time"
)

// Noop treats every event as first-seen. Used when redis is disabled;
// redelivered webhook events are then processed again, which the webhook
// handlers tolerate.
type Noop struct{}

func (Noop) MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}
