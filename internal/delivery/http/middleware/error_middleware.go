package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Unknown errors are logged server-side only; clients get a generic
		// message so internals never leak.
		reqID, _ := c.Get("RequestID")
		slog.Error("unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
