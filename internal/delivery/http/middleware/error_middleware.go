package middleware

import (
	"errors"
	"net/http"

	"freelance-site-backend/internal/delivery/http/response"
	"freelance-site-backend/internal/domain"
	"freelance-site-backend/pkg/apperror"
	"freelance-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(domain.MsgServerError, err)
		}

		attrs := []any{
			"request_id", c.GetString(RequestIDKey),
			"path", c.FullPath(),
			"status", appErr.Code,
		}
		if appErr.Err != nil {
			attrs = append(attrs, "error", appErr.Err.Error())
		}
		// Client mistakes are not server faults.
		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.ErrorContext(c.Request.Context(), appErr.Message, attrs...)
		} else {
			logger.Log.DebugContext(c.Request.Context(), appErr.Message, attrs...)
		}

		response.Error(c, appErr.Code, appErr.Message)
	}
}

// Recovery turns panics into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.ErrorContext(c.Request.Context(), "Panic recovered",
			"request_id", c.GetString(RequestIDKey),
			"path", c.FullPath(),
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, domain.MsgServerError)
		c.Abort()
	})
}
