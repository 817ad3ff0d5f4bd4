package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

// ValidationError reports a missing or malformed required field. It is
// user-correctable and carries the offending field name where known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError builds a ConflictError.
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError builds a NotFoundError.
func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// AuthError reports a missing/invalid/expired token or a role not permitted
// for the operation.
type AuthError struct {
	Message   string
	Forbidden bool
}

func (e *AuthError) Error() string { return e.Message }

// NewAuthError builds an AuthError for a failed authentication (401).
func NewAuthError(message string) error {
	return &AuthError{Message: message}
}

// NewForbiddenError builds an AuthError for a denied authorization (403).
func NewForbiddenError(message string) error {
	return &AuthError{Message: message, Forbidden: true}
}

// HTTPStatus maps a taxonomy error to its HTTP status code. Anything outside
// the taxonomy is treated as a storage or internal failure.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		ce *ConflictError
		ne *NotFoundError
		ae *AuthError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusConflict
	case errors.As(err, &ne):
		return http.StatusNotFound
	case errors.As(err, &ae):
		if ae.Forbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError surfaces an operation error as a structured failure response.
// Internal failures are masked with a generic message.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	resp := ErrorResponse{Message: err.Error()}

	var ve *ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
		resp.Message = ve.Message
	}

	if status == http.StatusInternalServerError {
		GetLogger().Error("internal error", zap.Error(err))
		resp = ErrorResponse{Message: "Internal Server Error", Details: "An unexpected error occurred. Please try again later."}
	}
	c.JSON(status, resp)
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
