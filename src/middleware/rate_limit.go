package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kertapati/horizon-sub000/src/logger"
)

const (
	rateLimitWindow = time.Minute
	rateLimitMax    = 300
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

var (
	rateMu      sync.Mutex
	rateWindows = make(map[string]*rateWindow)
)

// RateLimitMiddleware applies a fixed-window per-IP rate limit. State is
// in-memory; a multi-instance deployment needs a shared store instead.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		rateMu.Lock()
		w, ok := rateWindows[clientIP]
		if !ok || now.After(w.resetAt) {
			w = &rateWindow{resetAt: now.Add(rateLimitWindow)}
			rateWindows[clientIP] = w
		}
		w.count++
		limited := w.count > rateLimitMax
		rateMu.Unlock()

		if limited {
			logger.WithField("client_ip", clientIP).Warn("rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too Many Requests",
				"retry_after": int(rateLimitWindow.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
