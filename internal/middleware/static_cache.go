package middleware

import "github.com/gin-gonic/gin"

// StaticCache sets Cache-Control on files served from the upload directory.
func StaticCache(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
