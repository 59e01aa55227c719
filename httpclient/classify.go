package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mhalicki/tritonkit/errors"
)

// restifyError is the flat error body the Triton REST services return.
type restifyError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorMessage(service string, status int, body []byte) string {
	var re restifyError
	if err := json.Unmarshal(body, &re); err == nil && re.Message != "" {
		if re.Code != "" {
			return fmt.Sprintf("%s: %s (%s)", service, re.Message, re.Code)
		}
		return fmt.Sprintf("%s: %s", service, re.Message)
	}
	return fmt.Sprintf("%s returned HTTP %d", service, status)
}

// ClassifyFunc turns one response into an error, or nil to accept it.
// Requests may carry their own; the default is ClassifyResponse.
type ClassifyFunc func(service string, status int, body []byte) *errors.TritonError

// ClassifyResponse converts a non-2xx response into a TritonError. Returns
// nil for success statuses. 429 and all 5xx are retryable; every other
// status fails the call immediately.
func ClassifyResponse(service string, status int, body []byte) *errors.TritonError {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := errorMessage(service, status, body)

	switch {
	case status == http.StatusTooManyRequests:
		return errors.RateLimited(service)
	case status >= 500:
		e := errors.ServiceUnavailable(service, msg)
		e.HTTPStatus = status
		return e
	case status == http.StatusNotFound:
		e := errors.NotFound(msg)
		return e.WithDetail("service", service)
	case status == http.StatusConflict:
		e := errors.Conflict(msg)
		return e.WithDetail("service", service)
	case status == http.StatusBadRequest:
		e := errors.BadRequest(msg)
		return e.WithDetail("service", service)
	default:
		e := errors.InvalidRequest(msg)
		e.HTTPStatus = status
		return e.WithDetail("service", service)
	}
}
