package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manhva-oppa/oppa-blog/api/controller"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = time.Hour

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	rate      rate.Limit
	burst     int
	lastSweep time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows requests per window for each key, with bursts up to
// requests.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*limiterEntry),
		rate:      rate.Every(window / time.Duration(requests)),
		burst:     requests,
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for k, e := range rl.limiters {
			if now.Sub(e.lastAccess) > limiterIdleTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastSweep = now
	}

	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = now
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// RateLimit keys on the authenticated user when there is one, otherwise on
// the client IP.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(UserIDKey)
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(key) {
			c.Header("Retry-After", "60")
			controller.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
			return
		}
		c.Next()
	}
}
