package models

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeUnavailable  = "UNAVAILABLE"
	CodeInternal     = "INTERNAL_ERROR"
)

var codeStatus = map[string]int{
	CodeNotFound:     fiber.StatusNotFound,
	CodeValidation:   fiber.StatusBadRequest,
	CodeUnauthorized: fiber.StatusUnauthorized,
	CodeForbidden:    fiber.StatusForbidden,
	CodeConflict:     fiber.StatusConflict,
	CodeRateLimited:  fiber.StatusTooManyRequests,
	CodeUnavailable:  fiber.StatusServiceUnavailable,
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError is a failure the API can explain to the caller. Err, when set,
// is the underlying cause and only surfaces outside production.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error { return e.Err }

func newAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Err: cause}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(resource string, id any) *AppError {
	return newAppError(CodeNotFound, fmt.Sprintf("%s with ID %v not found", resource, id), nil)
}

func NewValidationError(message string) *AppError {
	return newAppError(CodeValidation, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return newAppError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return newAppError(CodeForbidden, message, nil)
}

func NewConflictError(message string) *AppError {
	return newAppError(CodeConflict, message, nil)
}

// NewRateLimitError is returned once a client exhausts its request window.
func NewRateLimitError(message string) *AppError {
	return newAppError(CodeRateLimited, message, nil)
}

// NewUnavailableError is used when a feature or an upstream provider cannot
// serve the request, e.g. a payment gateway without credentials.
func NewUnavailableError(message string, err error) *AppError {
	return newAppError(CodeUnavailable, message, err)
}

func NewInternalError(err error) *AppError {
	return newAppError(CodeInternal, "Internal server error", err)
}

// ErrorCode returns the AppError code wrapped in err, or "" when err is not an AppError.
func ErrorCode(err error) string {
	if appErr, ok := errors.AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ""
}

// StatusForError maps an error to the HTTP status the API answers with.
func StatusForError(err error) int {
	if status, ok := codeStatus[ErrorCode(err)]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes err as an ErrorResponse with the given status.
// Plain 5xx errors are masked in production.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	body := ErrorResponse{Error: err.Error()}
	switch appErr, ok := errors.AsType[*AppError](err); {
	case ok:
		body = ErrorResponse{Error: appErr.Message, Code: appErr.Code}
		if appErr.Err != nil && !isProduction() {
			body.Details = appErr.Err.Error()
		}
	case status >= fiber.StatusInternalServerError && isProduction():
		body = ErrorResponse{Error: "Internal server error", Code: CodeInternal}
	}
	return c.Status(status).JSON(body)
}

func isProduction() bool {
	switch os.Getenv("APP_ENV") {
	case "production", "prod":
		return true
	}
	return false
}
