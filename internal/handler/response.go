package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"docassist/internal/domain"
	"docassist/internal/logger"
	"docassist/internal/model"
)

// APIResponse is the envelope for error responses and auxiliary endpoints.
// Assistant operations answer with their own flat result objects.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates errors from the auxiliary endpoints to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, "INVALID_ARGUMENT", vErr.Message
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrExportStorageDisabled):
		return http.StatusNotImplemented, "EXPORT_STORAGE_DISABLED", "export storage is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestLogger(c).Error("internal error", zap.Error(err))
	}
	RespondError(c, status, code, msg)
}

// HandleTaskError reports a failed assistant operation. Invalid input, fetch
// and model failures all surface as one internal error whose message names the
// operation and the cause.
func HandleTaskError(c *gin.Context, failure string, err error) {
	log := requestLogger(c)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		log.Info("rejected request", zap.String("operation", failure), zap.Error(err))
	case errors.Is(err, domain.ErrFetchFailed), errors.Is(err, domain.ErrModelFailed):
		log.Error("operation failed", zap.String("operation", failure), zap.Error(err))
	default:
		log.Error("operation failed unexpectedly", zap.String("operation", failure), zap.Error(err))
	}

	if rl, ok := model.AsRateLimit(err); ok {
		c.Header("Retry-After", strconv.Itoa(int(rl.RetryAfter.Seconds())))
	}
	RespondError(c, http.StatusInternalServerError, "INTERNAL", failure+": "+err.Error())
}

func requestLogger(c *gin.Context) *zap.Logger {
	requestID, _ := c.Get("request_id")
	id, _ := requestID.(string)
	return logger.Get().With(zap.String("request_id", id))
}
