package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket is a per-client token bucket.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter enforces a per-IP token-bucket limit. Buckets idle for
// longer than staleAfter are swept on the next request that arrives.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens added per second
	burst      float64 // bucket capacity
	staleAfter time.Duration
	lastSweep  time.Time
}

func NewRateLimiter(rate, burst float64) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		burst:      burst,
		staleAfter: 10 * time.Minute,
		lastSweep:  time.Now(),
	}
}

// allow refills the client's bucket for the elapsed time and tries to
// take one token. Callers must hold mu.
func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: rl.burst, lastSeen: now}
		rl.buckets[ip] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets that have not been touched recently. Callers must
// hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.staleAfter {
			delete(rl.buckets, ip)
		}
	}
	rl.lastSweep = now
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		rl.mu.Lock()
		if now.Sub(rl.lastSweep) > rl.staleAfter {
			rl.sweep(now)
		}
		allowed := rl.allow(c.ClientIP(), now)
		rl.mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
