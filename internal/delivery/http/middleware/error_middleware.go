package middleware

import (
	"context"
	"errors"
	"net/http"

	"study-planner-backend/internal/delivery/http/response"
	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is nginx's non-standard code for a client that hung up
const statusClientClosedRequest = 499

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		// The client went away mid-request; nobody reads the body and it is not a server fault.
		if errors.Is(err, context.Canceled) {
			logger.Log.Debug("Request canceled by client", "path", c.FullPath(), "request_id", response.RequestID(c))
			response.Error(c, statusClientClosedRequest, "Request canceled", nil)
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error(appErr.Message, "error", appErr.Err, "path", c.FullPath(), "request_id", response.RequestID(c))
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error", "error", err, "path", c.FullPath(), "request_id", response.RequestID(c))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
