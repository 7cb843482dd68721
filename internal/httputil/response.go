// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// Stable error codes shared across handlers. Route-specific codes (e.g.
// "account:invalidCode") are attached by use cases via apperrors.WithCode.
const (
	CodeBadRequest          = "badRequest"
	CodeValidationError     = "validationError"
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "notFound"
	CodeConflict            = "conflict"
	CodeMethodNotAllowed    = "methodNotAllowed"
	CodeInternalServerError = "internalServerError"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response.
// Route-specific error codes attached with apperrors.WithCode take precedence over
// the generic code for the mapped status. The caller never sees cryptographic or
// provider detail; full context is logged server-side.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	// Map domain errors to HTTP status codes
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   CodeNotFound,
			Message: "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		errorResponse = ErrorResponse{
			Error:   CodeConflict,
			Message: "A conflict occurred with existing data",
		}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   CodeValidationError,
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Error:   CodeUnauthorized,
			Message: "Authentication is required",
		}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{
			Error:   CodeForbidden,
			Message: "You don't have permission to access this resource",
		}

	case apperrors.Is(err, apperrors.ErrUpstream):
		// Provider failures surface as an opaque 500; the provider status is
		// logged below, never forwarded.
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   CodeInternalServerError,
			Message: "An internal error occurred",
		}

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   CodeInternalServerError,
			Message: "An internal error occurred",
		}
	}

	// A route-specific code overrides the generic one
	var coded *apperrors.CodedError
	if apperrors.As(err, &coded) {
		errorResponse.Error = coded.Code
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   CodeBadRequest,
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// HandleValidationErrorGin writes a 400 Bad Request response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   CodeValidationError,
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// MethodNotAllowedHandler answers requests that hit a known path with the wrong verb.
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error:   CodeMethodNotAllowed,
			Message: "Method not allowed",
		})
	}
}
