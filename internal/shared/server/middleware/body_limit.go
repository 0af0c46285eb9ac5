package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bodySlackBytes covers the JSON fields around the text itself.
const bodySlackBytes = 64 << 10

// BodyLimit caps how much of the request body a handler may read, derived
// from the largest text it accepts. JSON escaping can double the text.
// Reads past the cap fail with *http.MaxBytesError; see BodyTooLarge.
func BodyLimit(maxTextBytes int) gin.HandlerFunc {
	limit := bodyLimit(maxTextBytes)
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func bodyLimit(maxTextBytes int) int64 {
	if maxTextBytes <= 0 {
		return 0
	}
	return 2*int64(maxTextBytes) + bodySlackBytes
}

// BodyTooLarge reports whether err came from reading past a BodyLimit cap.
func BodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
