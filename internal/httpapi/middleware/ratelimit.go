package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with a token bucket. Limiters
// live for the process lifetime; catalog traffic is low enough that the map
// is not evicted.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (l *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.clients[clientIP]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.clients[clientIP] = limiter
	}
	return limiter
}

// Middleware rejects with 429 once a client exhausts its bucket.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "number of requests have been exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
