package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type returned by neto packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// --- Common Error Constructors ---

// MissingField creates a new AppError for a required field that was never set.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidURL creates a new AppError for a malformed base URL.
func InvalidURL(url string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidURL, Message: "Invalid URL format",
		Details: map[string]any{"base_url": url},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// InvalidFormat creates a new AppError for an invalid field format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// ClientBuildFailed creates a new AppError for a transport client that could not be built.
func ClientBuildFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeClientBuildFailed, Message: "Failed to build HTTP client",
		Cause: cause,
	}
}

// UnsupportedCapability creates a new AppError for a body kind the current
// build or platform cannot encode. hint suggests the alternative path.
func UnsupportedCapability(kind, hint string) *AppError {
	details := map[string]any{"kind": kind}
	if hint != "" {
		details["hint"] = hint
	}
	return &AppError{
		Code: ErrCodeUnsupportedCapability, Message: fmt.Sprintf("%s bodies are not supported on this build", kind),
		Details: details,
	}
}

// InvalidBody creates a new AppError for a body payload that failed to serialize.
func InvalidBody(kind string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidBody, Message: fmt.Sprintf("Failed to encode %s body", kind),
		Details: map[string]any{"kind": kind}, Cause: cause,
	}
}

// Transport creates a new AppError wrapping whatever the transport reported.
func Transport(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTransport, Message: "HTTP transport failed",
		Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
