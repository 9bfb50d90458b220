package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out a token bucket per client IP, created lazily.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, ok := c.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.clients[ip] = limiter
	}
	return limiter
}

// RateLimiter returns middleware that limits each client IP to r requests per
// second with the given burst.
func RateLimiter(r rate.Limit, burst int) gin.HandlerFunc {
	limiters := &clientLimiters{
		clients: make(map[string]*rate.Limiter),
		limit:   r,
		burst:   burst,
	}
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
