package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	lockDuration  = 10 * time.Minute
	maxAttempts   = 5
)

// LoginThrottle counts failed login attempts per client IP in Redis.
// Key format: login_attempts:<ip> and login_lock:<ip>.
// Five failures inside a fifteen-minute window lock the IP for ten minutes.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// RetryAfter reports the remaining lockout for ip, zero when unlocked.
func (t *LoginThrottle) RetryAfter(ctx context.Context, ip string) (time.Duration, error) {
	ttl, err := t.client.TTL(ctx, t.lockKey(ip)).Result()
	if err != nil {
		return 0, fmt.Errorf("throttle check: %w", err)
	}
	if ttl < 0 {
		// -1 no expiry, -2 missing key; either way not locked.
		return 0, nil
	}
	return ttl, nil
}

// RecordFailure increments the attempt counter and reports whether the
// IP crossed the lockout threshold. The counter expires with the window
// so stale failures age out on their own.
func (t *LoginThrottle) RecordFailure(ctx context.Context, ip string) (bool, error) {
	key := t.attemptsKey(ip)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	if n < maxAttempts {
		return false, nil
	}

	if err := t.client.Set(ctx, t.lockKey(ip), "1", lockDuration).Err(); err != nil {
		return false, fmt.Errorf("throttle lock: %w", err)
	}
	return true, nil
}

// Reset clears attempt state after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, ip string) error {
	return t.client.Del(ctx, t.attemptsKey(ip), t.lockKey(ip)).Err()
}

func (t *LoginThrottle) attemptsKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}

func (t *LoginThrottle) lockKey(ip string) string {
	return fmt.Sprintf("login_lock:%s", ip)
}
