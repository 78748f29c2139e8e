package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON error payload returned by the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and the HTTP status it maps to.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Error codes used across the application.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"      // 400
	ErrCodeNotFound            = "NOT_FOUND"             // 404
	ErrCodeRemoteEmptyResponse = "REMOTE_EMPTY_RESPONSE" // 502
	ErrCodeRemoteUnavailable   = "REMOTE_UNAVAILABLE"    // 503
	ErrCodeStorage             = "STORAGE_ERROR"         // 500
	ErrCodeInternalError       = "INTERNAL_ERROR"        // 500
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"     // 429
)

// Predefined errors. Wrap these with fmt.Errorf("...: %w", err) to add
// operation detail while keeping the taxonomy intact.
var (
	ErrValidation          = NewError(ErrCodeValidation, "invalid input", http.StatusBadRequest, nil)
	ErrNotFound            = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrRemoteEmptyResponse = NewError(ErrCodeRemoteEmptyResponse, "assistant returned an empty response", http.StatusBadGateway, nil)
	ErrRemoteUnavailable   = NewError(ErrCodeRemoteUnavailable, "assistant is unavailable", http.StatusServiceUnavailable, nil)
	ErrStorage             = NewError(ErrCodeStorage, "storage operation failed", http.StatusInternalServerError, nil)
	ErrInternalError       = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
)

// ValidationError reports bad user input with a message safe to show inline.
func ValidationError(message string) error {
	return NewError(ErrCodeValidation, message, http.StatusBadRequest, nil)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsRemoteUnavailable reports whether err is a remote transport failure.
func IsRemoteUnavailable(err error) bool {
	return hasCode(err, ErrCodeRemoteUnavailable)
}

// IsRemoteEmptyResponse reports whether err is a blank remote response.
func IsRemoteEmptyResponse(err error) bool {
	return hasCode(err, ErrCodeRemoteEmptyResponse)
}

func hasCode(err error, code string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// HTTPStatus maps an error onto the status code it should be served with.
func HTTPStatus(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Status
	}
	return http.StatusInternalServerError
}

// ErrorCode extracts the taxonomy code, defaulting to INTERNAL_ERROR.
func ErrorCode(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeInternalError
}
