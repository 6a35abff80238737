package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/utils"
)

// Rate limiter for the financing endpoints: eligibility lookups hit an
// external credit system and must not be hammered from a single IP.
type FinancingRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	limit    int
	window   time.Duration
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewFinancingRateLimiter allows `limit` requests per IP per `window`.
func NewFinancingRateLimiter(limit int, window time.Duration) *FinancingRateLimiter {
	rl := &FinancingRateLimiter{
		attempts: make(map[string]*attemptInfo),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Allow checks if IP can make another attempt.
func (r *FinancingRateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	// Reset if window expired
	if now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	if info.count >= r.limit {
		return false
	}
	info.count++
	return true
}

// cleanup drops stale entries every few minutes so the map stays bounded.
func (r *FinancingRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, info := range r.attempts {
			if now.Sub(info.firstAt) > r.window {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}

// Handle returns a Gin middleware enforcing the limit.
func (r *FinancingRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			utils.Error(c, 429, "RATE_LIMITED", "Too many financing requests, try again shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}
