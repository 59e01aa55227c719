package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// TritonError is the unified error type for Triton client operations.
type TritonError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the HTTP status that produced this error (0 for local errors).
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *TritonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *TritonError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *TritonError) WithCause(cause error) *TritonError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *TritonError) WithDetail(key string, value any) *TritonError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new TritonError with automatic retryable detection.
func New(code ErrorCode, message string) *TritonError {
	return &TritonError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// ServiceUnavailable creates an error for a service that is temporarily unavailable.
func ServiceUnavailable(service, message string) *TritonError {
	return &TritonError{
		Code: ErrCodeServiceUnavailable, Message: message,
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"service": service},
	}
}

// Timeout creates an error for a request that timed out.
func Timeout(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeTimeout, Message: message,
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
	}
}

// RateLimited creates an error for too many requests.
func RateLimited(service string) *TritonError {
	return &TritonError{
		Code: ErrCodeRateLimited, Message: fmt.Sprintf("%s rejected the request: too many requests", service),
		HTTPStatus: http.StatusTooManyRequests, Retryable: true,
		Details: map[string]any{"service": service},
	}
}

// DiscoveryFailed creates an error for a service whose endpoints could not be resolved.
func DiscoveryFailed(service, message string) *TritonError {
	return &TritonError{
		Code: ErrCodeDiscoveryFailed, Message: message,
		Retryable: false,
		Details:   map[string]any{"service": service},
	}
}

// NotFound creates an error for a resource that was not found.
func NotFound(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound, Retryable: false,
	}
}

// Conflict creates an error for a conflict with the current resource state.
func Conflict(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeConflict, Message: message,
		HTTPStatus: http.StatusConflict, Retryable: false,
	}
}

// InvalidRequest creates an error for a request the service rejected.
func InvalidRequest(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeInvalidRequest, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// BadRequest creates an error for a malformed request.
func BadRequest(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeBadRequest, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// InvalidUUID creates an error for an identifier that failed UUID parsing.
func InvalidUUID(value string, cause error) *TritonError {
	return &TritonError{
		Code: ErrCodeInvalidUUID, Message: fmt.Sprintf("invalid UUID %q", value),
		Retryable: false, Cause: cause,
	}
}

// InvalidEndpoint creates an error for a malformed endpoint URL or path.
func InvalidEndpoint(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeInvalidEndpoint, Message: message,
		Retryable: false,
	}
}

// Config creates an error for malformed client configuration.
func Config(message string) *TritonError {
	return &TritonError{
		Code: ErrCodeConfig, Message: message,
		Retryable: false,
	}
}

// Parse creates an error for a response body that could not be decoded.
func Parse(message string, cause error) *TritonError {
	return &TritonError{
		Code: ErrCodeParse, Message: message,
		Retryable: false, Cause: cause,
	}
}

// Internal creates an error for an unexpected internal failure.
func Internal(cause error) *TritonError {
	return &TritonError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// --- Predicates ---

// AsTritonError converts an error to a TritonError if possible.
func AsTritonError(err error) (*TritonError, bool) {
	var te *TritonError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	te, ok := AsTritonError(err)
	return ok && te.Code == code
}

// IsRetryable checks if an error is transient and may be retried.
func IsRetryable(err error) bool {
	te, ok := AsTritonError(err)
	return ok && te.Retryable
}

// IsServiceUnavailable checks if an error is a service-unavailable error.
func IsServiceUnavailable(err error) bool { return hasCode(err, ErrCodeServiceUnavailable) }

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsDiscoveryFailed checks if an error is a discovery failure.
func IsDiscoveryFailed(err error) bool { return hasCode(err, ErrCodeDiscoveryFailed) }

// IsInvalidRequest checks if an error is an invalid-request error.
func IsInvalidRequest(err error) bool { return hasCode(err, ErrCodeInvalidRequest) }

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool { return hasCode(err, ErrCodeConfig) }
