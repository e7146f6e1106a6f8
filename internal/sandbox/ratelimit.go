package sandbox

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per bearer token with a token bucket.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter allows rps requests per second per token with the given
// burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *RateLimiter) Allow(token string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	lim, ok := l.limiters[token]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[token] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}
