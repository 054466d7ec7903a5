package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-assistant/pkg/response"
)

// RateLimit enforces a per-client request budget. Authenticated clients
// are keyed by user so shared NAT cannot drain someone else's quota;
// anonymous ones fall back to the remote address. Each route gets its
// own limiter set.
func (m Middleware) RateLimit(perMinute int) gin.HandlerFunc {
	rl := newRateLimiter(perMinute)

	return func(c *gin.Context) {
		if err := rl.Allow(clientKey(c)); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func clientKey(c *gin.Context) string {
	if sc, ok := ScopeFromContext(c); ok && sc.UserID != "" {
		return "user:" + sc.UserID
	}
	return "ip:" + c.ClientIP()
}

// rateLimiter is a token-bucket limiter with auto-cleanup of idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate: rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		// Full per-minute allowance up front, matching the fixed-window
		// behavior clients were built against.
		burst: requestsPerMin,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
