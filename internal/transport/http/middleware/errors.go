package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-todo-api/internal/transport/http/response"
)

// ErrorHandler translates any error left on the context into exactly
// one JSON envelope. Handlers push errors with c.Error and return.
func ErrorHandler(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := resp.FromError(err)
		if status >= http.StatusInternalServerError {
			l.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		c.JSON(status, body)
	}
}
