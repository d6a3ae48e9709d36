package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petclinic-micro/service-customers/internal/response"
)

// Recovery catches panics anywhere in the handler chain and rewrites them
// into the uniform 500 envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				if !c.Writer.Written() {
					response.WriteError(c, http.StatusInternalServerError, nil)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
