package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookTokenMiddleware authenticates the form-builder integration with a
// shared token, passed either as a query parameter or a header since the
// upstream sender supports only one of the two depending on its version.
// An empty configured token disables the check for local development.
func WebhookTokenMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		supplied := c.Query("token")
		if supplied == "" {
			supplied = c.GetHeader("X-Webhook-Token")
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid webhook token"})
			c.Abort()
			return
		}
		c.Next()
	}
}
