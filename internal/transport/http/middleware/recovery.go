package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-todo-api/internal/transport/http/response"
)

func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
				)
				if !c.Writer.Written() {
					resp.Abort(c, http.StatusInternalServerError, "internal error")
				} else {
					c.Abort()
				}
			}
		}()
		c.Next()
	}
}
