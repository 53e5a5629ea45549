package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeSessionNotFound, http.StatusNotFound},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeEmptyCart, http.StatusUnprocessableEntity},
		{ErrCodeNoVariances, http.StatusUnprocessableEntity},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeSubmitInFlight, http.StatusConflict},
		{ErrCodeDuplicateSubmission, http.StatusConflict},
		{ErrCodeUpstreamUnavailable, http.StatusBadGateway},
		{ErrCodeUpstreamRejected, http.StatusBadGateway},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{"SOMETHING_NOBODY_MAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

func TestErrorResponseShape(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeEmptyCart, "nothing to submit", "req-123")
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeEmptyCart, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)

	ok := NewSuccessResponse(map[string]string{"hello": "world"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
}
