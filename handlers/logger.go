package handlers

import (
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger prefers a request-scoped logger placed on the context by
// middleware, falling back to the shared application logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
