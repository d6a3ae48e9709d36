package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petclinic-micro/service-customers/internal/domain"
	"github.com/petclinic-micro/service-customers/internal/response"
)

// ErrorHandler is the boundary error translator. Handlers push typed errors
// via c.Error and return; this middleware performs the single, centralized
// mapping to status plus envelope after the chain has run.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var domainErr *domain.Error
		if !errors.As(err, &domainErr) {
			domainErr = domain.NewInternalError(err)
		}

		switch domainErr.Code {
		case domain.ErrCodeNotFound:
			log.Info("resource not found",
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", domainErr.Message),
			)
			response.WriteError(c, http.StatusNotFound, nil)
		case domain.ErrCodeValidation:
			log.Info("request validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("fields", domainErr.Fields),
			)
			response.WriteError(c, http.StatusBadRequest, domainErr.Fields)
		default:
			log.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.WriteError(c, http.StatusInternalServerError, nil)
		}
	}
}
