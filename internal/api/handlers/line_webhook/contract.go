package line_webhook

import (
	"context"
	"time"
)

// Deduper remembers webhook delivery ids so redelivered events are only
// processed once
type Deduper interface {
	// MarkOnce returns true the first time key is seen within ttl
	MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
