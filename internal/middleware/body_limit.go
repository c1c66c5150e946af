package middleware

import (
	"fmt"
	"net/http"

	"pawcare-admin/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

const defaultMaxBodyMB = 10

// BodyLimit caps request bodies at maxMB megabytes. Requests that declare a
// larger Content-Length are rejected up front; others fail when the handler
// reads past the limit.
func BodyLimit(maxMB int) gin.HandlerFunc {
	if maxMB <= 0 {
		maxMB = defaultMaxBodyMB
	}
	return BodyLimitBytes(int64(maxMB) << 20)
}

// BodyLimitBytes is BodyLimit for routes that size their ceiling from an
// upload policy rather than the server default.
func BodyLimitBytes(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyMB << 20
	}
	msg := fmt.Sprintf("Request body cannot exceed %dMB", (maxBytes+(1<<20)-1)>>20)

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			httpx.Fail(c, http.StatusRequestEntityTooLarge, msg, nil)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
