package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMethodNotAllowed ErrorType = "method_not_allowed"
	ErrorTypeFormParse        ErrorType = "form_parse"
	ErrorTypeMissingFile      ErrorType = "missing_file"
	ErrorTypeDecode           ErrorType = "decode"
	ErrorTypeCleanup          ErrorType = "cleanup"
	ErrorTypeInternal         ErrorType = "internal"
)

// User-facing messages
const (
	MessageFormParse    = "Error parsing form data"
	MessageMissingFile  = "No valid PDF file uploaded"
	MessageDecodePrefix = "Error parsing PDF: "
	MessageCleanup      = "Error deleting temporary file"
	MessageInternal     = "Internal server error"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMethodNotAllowedError creates an error for a rejected HTTP method
func NewMethodNotAllowedError(method string) *AppError {
	return &AppError{
		Type:       ErrorTypeMethodNotAllowed,
		Message:    fmt.Sprintf("Method %s Not Allowed", method),
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// NewFormParseError creates an error for a multipart body that could not be parsed
func NewFormParseError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeFormParse,
		Message:    MessageFormParse,
		Details:    describe(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewMissingFileError creates an error for a request without a usable pdf field
func NewMissingFileError() *AppError {
	return &AppError{
		Type:       ErrorTypeMissingFile,
		Message:    MessageMissingFile,
		StatusCode: http.StatusBadRequest,
	}
}

// NewDecodeError creates an error for a document the decoder rejected.
// The message embeds the cause's description.
func NewDecodeError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeDecode,
		Message:    MessageDecodePrefix + describe(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewCleanupError creates an error for a temporary file that could not be removed.
// It is only ever logged.
func NewCleanupError(path string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeCleanup,
		Message:    MessageCleanup,
		Details:    path,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text that may be shown to a client.
// Errors outside the taxonomy never leak their text.
func PublicMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return MessageInternal
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%#v", err)
}
