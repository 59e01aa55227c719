package httpclient

import (
	"testing"

	"github.com/mhalicki/tritonkit/errors"
)

func TestClassifyResponse(t *testing.T) {
	cases := []struct {
		status    int
		wantCode  errors.ErrorCode
		retryable bool
	}{
		{200, "", false},
		{204, "", false},
		{400, errors.ErrCodeBadRequest, false},
		{401, errors.ErrCodeInvalidRequest, false},
		{404, errors.ErrCodeNotFound, false},
		{409, errors.ErrCodeConflict, false},
		{422, errors.ErrCodeInvalidRequest, false},
		{429, errors.ErrCodeRateLimited, true},
		{500, errors.ErrCodeServiceUnavailable, true},
		{502, errors.ErrCodeServiceUnavailable, true},
		{503, errors.ErrCodeServiceUnavailable, true},
		{504, errors.ErrCodeServiceUnavailable, true},
	}
	for _, tc := range cases {
		err := ClassifyResponse("vmapi", tc.status, nil)
		if tc.wantCode == "" {
			if err != nil {
				t.Errorf("status %d: expected nil, got %v", tc.status, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("status %d: expected error", tc.status)
			continue
		}
		if err.Code != tc.wantCode {
			t.Errorf("status %d: expected %s, got %s", tc.status, tc.wantCode, err.Code)
		}
		if err.Retryable != tc.retryable {
			t.Errorf("status %d: retryable = %v, want %v", tc.status, err.Retryable, tc.retryable)
		}
	}
}

func TestClassifyResponse_UsesRestifyBody(t *testing.T) {
	body := []byte(`{"code":"ValidationFailed","message":"alias must be unique"}`)
	err := ClassifyResponse("vmapi", 409, body)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Message; got != "vmapi: alias must be unique (ValidationFailed)" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestClassifyResponse_FallbackMessage(t *testing.T) {
	err := ClassifyResponse("napi", 500, []byte("not json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Message; got != "napi returned HTTP 500" {
		t.Errorf("unexpected message: %s", got)
	}
}
