package errors

// ErrorResponse is the JSON error structure used by Triton services.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
	// RequestID is an optional identifier for request tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ErrorBody contains the error details.
type ErrorBody struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
}

// ToResponse converts a TritonError to an ErrorResponse for JSON serialization.
func (e *TritonError) ToResponse() ErrorResponse {
	return e.ToResponseWithID("")
}

// ToResponseWithID converts a TritonError to an ErrorResponse carrying a request ID.
func (e *TritonError) ToResponseWithID(requestID string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:      e.Code,
			Message:   e.Message,
			Retryable: e.Retryable,
			Details:   e.Details,
		},
		RequestID: requestID,
	}
}
