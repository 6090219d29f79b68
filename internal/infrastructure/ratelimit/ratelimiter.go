// Package ratelimit throttles expensive studio requests per user.
package ratelimit

// RateLimiter decides whether a request under key may proceed given a
// per-minute limit. A limit of zero or less always allows.
type RateLimiter interface {
	Allow(key string, perMinute int) (bool, error)
}

// Unlimited is the no-op limiter used when Redis is not configured.
type Unlimited struct{}

func (Unlimited) Allow(string, int) (bool, error) {
	return true, nil
}
