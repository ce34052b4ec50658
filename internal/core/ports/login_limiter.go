package ports

import (
	"context"
	"time"
)

// LoginLimiter throttles password-guessing by client IP.
type LoginLimiter interface {
	// RetryAfter reports how long the client is locked out, zero when the
	// client may attempt a login.
	RetryAfter(ctx context.Context, ip string) (time.Duration, error)
	// RecordFailure counts a failed attempt and reports whether the client
	// is now locked out.
	RecordFailure(ctx context.Context, ip string) (bool, error)
	// Reset clears attempt state after a successful login.
	Reset(ctx context.Context, ip string) error
}
