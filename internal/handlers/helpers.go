package handlers

import (
	"estatesync-listings/internal/errors"
	"estatesync-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps a technical error onto the wire contract: a non-success
// status plus a user-facing message and stable code.
func respondError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	logger.GlobalLogger.Errorf("%s %s failed: %s", c.Request.Method, c.Request.URL.Path, appErr.TechnicalMessage)
	c.JSON(appErr.HTTPStatus, gin.H{
		"status":  "error",
		"message": appErr.UserMessage,
		"code":    appErr.Code,
	})
}
