package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Transient errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates a Triton service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates the client is being rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Discovery errors
const (
	// ErrCodeDiscoveryFailed indicates service discovery could not resolve any endpoints.
	ErrCodeDiscoveryFailed ErrorCode = "DISCOVERY_FAILED"
	// ErrCodeInvalidEndpoint indicates a malformed endpoint URL or path.
	ErrCodeInvalidEndpoint ErrorCode = "INVALID_ENDPOINT"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates a conflict with the current state of the resource.
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Request errors
const (
	// ErrCodeInvalidRequest indicates the request was rejected by the service.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeBadRequest indicates a malformed request.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeInvalidUUID indicates an identifier failed UUID parsing.
	ErrCodeInvalidUUID ErrorCode = "INVALID_UUID"
)

// Local errors
const (
	// ErrCodeConfig indicates malformed client configuration, detected at construction.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeParse indicates a response body could not be decoded.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeTimeout:            true,
	ErrCodeRateLimited:        true,
}

// IsRetryableCode returns true if the error code indicates a transient,
// retryable failure.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
