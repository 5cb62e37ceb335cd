package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses built from live authority state as uncacheable by clients.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
