package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterEntry pairs a token bucket with the last time its key was
// seen, so buckets for visitors who left can be dropped.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterIdleTTL is how long a key may sit unused before its bucket is
// evicted. Keys are client IPs in release mode, so without eviction the
// map would grow for as long as the process runs.
const limiterIdleTTL = 10 * time.Minute

var (
	limiters = make(map[string]*limiterEntry)
	mu       sync.Mutex
)

func getLimiter(key string, r rate.Limit, b int, now time.Time) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	entry, exists := limiters[key]
	if !exists {
		pruneStaleLocked(now)
		entry = &limiterEntry{limiter: rate.NewLimiter(r, b)}
		limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// pruneStaleLocked drops entries idle longer than limiterIdleTTL. The
// caller holds mu.
func pruneStaleLocked(now time.Time) {
	for key, entry := range limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(limiters, key)
		}
	}
}

// RateLimitMiddleware caps request rates per key. keyFunc picks the
// bucket: the route path in debug mode, the client IP otherwise.
func RateLimitMiddleware(r rate.Limit, b int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)
		limiter := getLimiter(key, r, b, time.Now())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again in a moment."})
			return
		}

		c.Next()
	}
}
