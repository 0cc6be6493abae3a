package middleware

import "github.com/gin-gonic/gin"

// NoStore marks every response as uncacheable. Rows are read straight from the
// database on each request and must not be served stale by intermediaries.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
