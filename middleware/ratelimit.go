package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type visitor struct {
	limiter  *time.Ticker
	lastSeen time.Time
}

// RateLimit limits each client IP to requestsPerMinute. Applied to the
// credential endpoints to slow down online guessing.
func RateLimit(requestsPerMinute int) gin.HandlerFunc {
	var mu sync.Mutex
	visitors := make(map[string]*visitor)

	go cleanupVisitors(&mu, visitors)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()

		v, exists := visitors[ip]
		if !exists {
			ticker := time.NewTicker(time.Minute / time.Duration(requestsPerMinute))
			visitors[ip] = &visitor{ticker, time.Now()}
			mu.Unlock()
			c.Next()
			return
		}

		v.lastSeen = time.Now()
		mu.Unlock()

		select {
		case <-v.limiter.C:
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, try again later",
			})
		}
	}
}

func cleanupVisitors(mu *sync.Mutex, visitors map[string]*visitor) {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				v.limiter.Stop()
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}
