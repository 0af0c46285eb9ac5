package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-engine/internal/shared/telemetry"
)

// Logging emits a structured log per request. Handlers may add fields by
// setting "analysisHash" or "matchScore" on the context.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"bytes_in":    c.Request.ContentLength,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if hash, ok := c.Get("analysisHash"); ok {
			fields["analysis_hash"] = hash
		}
		if score, ok := c.Get("matchScore"); ok {
			fields["match_score"] = score
		}
		telemetry.Info("request.complete", fields)
	}
}
