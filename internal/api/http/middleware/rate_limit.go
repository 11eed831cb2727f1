package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// clientIdleTimeout is how long a client can stay quiet before its
	// limiter is dropped.
	clientIdleTimeout = 10 * time.Minute
	// pruneInterval bounds how often the idle sweep runs.
	pruneInterval = time.Minute
)

// clientLimiter tracks a token bucket per client IP.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a per-client token bucket. Solving is
// cheap but unbounded request loops from a misbehaving frontend are
// not, so the default is generous. Idle limiters are pruned in-line on
// request; the middleware owns no background goroutine.
func RateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = map[string]*clientLimiter{}
		lastPrune = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		if time.Since(lastPrune) > pruneInterval {
			for addr, cl := range clients {
				if time.Since(cl.lastSeen) > clientIdleTimeout {
					delete(clients, addr)
				}
			}
			lastPrune = time.Now()
		}
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rps, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		mu.Unlock()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
