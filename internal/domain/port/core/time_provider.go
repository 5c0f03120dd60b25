package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock operations so use cases and tests can control time
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
