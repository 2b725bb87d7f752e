package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses as uncacheable. API payloads carry private
// feedback and tokens.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
