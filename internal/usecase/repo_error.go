package usecase

import (
	"context"
	"errors"
	"net/http"

	"study-planner-backend/pkg/apperror"
	"study-planner-backend/pkg/logger"
)

// repoFailure wraps a repository error as a 500. A canceled request is only
// logged at debug; the error middleware answers it with 499.
func repoFailure(message string, err error, attrs ...any) error {
	args := append([]any{"error", err}, attrs...)
	if errors.Is(err, context.Canceled) {
		logger.Log.Debug(message, args...)
	} else {
		logger.Log.Error(message, args...)
	}
	return apperror.New(http.StatusInternalServerError, message, err)
}
