package middleware

import (
	"context"
	"strings"
	"time"

	"cinemood-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Metrics returns a middleware that records API call statistics
func Metrics(metrics *repository.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only track API endpoints
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := float64(time.Since(start).Milliseconds())
		status := c.Writer.Status()

		// Handlers mark cache hits via the cache_source context key
		cacheHit := c.GetString("cache_source") == "redis-cache"

		// FullPath gives the route template; unmatched requests fall
		// back to the raw path
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if err := metrics.RecordAPICall(context.Background(), path, status, latency, cacheHit); err != nil {
			log.Warn().Err(err).Msg("Failed to record metrics")
		}
	}
}
