package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/common/logger"
)

// ErrorResponse is the JSON shape for failed requests.
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
}

// ErrorHandler recovers from handler panics and renders them as typed errors.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		logger.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "Internal server error").
			WithRequestID(requestID).
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		SendError(c, appErr)
	})
}

// SendError renders an AppError with the matching HTTP status.
func SendError(c *gin.Context, appErr *errors.AppError) {
	appErr.WithRequestID(GetRequestID(c))

	if appErr.IsInternal() {
		logger.Error().
			Str("request_id", appErr.RequestID).
			Str("error_code", string(appErr.Code)).
			Err(appErr).
			Msg("Internal error occurred")
	} else {
		logger.Info().
			Str("request_id", appErr.RequestID).
			Str("error_code", string(appErr.Code)).
			Msg(appErr.Message)
	}

	c.AbortWithStatusJSON(httpStatus(appErr), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: appErr.RequestID,
		Path:      c.Request.URL.Path,
	})
}

func httpStatus(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeStorageUnavailable, errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTelegramAPI, errors.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
