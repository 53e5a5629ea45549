package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Domain error codes surfaced to clients. These mirror the codes the
// domain layer attaches to its errors so terminals can branch on them.
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInvalidState        = "INVALID_STATE"
	ErrCodeSessionNotFound     = "SESSION_NOT_FOUND"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeNoVariances         = "NO_VARIANCES"
	ErrCodeSubmitInFlight      = "SUBMIT_IN_FLIGHT"
	ErrCodeDuplicateSubmission = "DUPLICATE_SUBMISSION"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamRejected    = "UPSTREAM_REJECTED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeSessionNotFound: http.StatusNotFound,

	// Business rule violations -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:    http.StatusUnprocessableEntity,
	ErrCodeNoVariances:  http.StatusUnprocessableEntity,

	// Concurrency conflicts -> 409 Conflict
	ErrCodeSubmitInFlight:      http.StatusConflict,
	ErrCodeDuplicateSubmission: http.StatusConflict,

	// Back-office failures -> 502 Bad Gateway
	ErrCodeUpstreamUnavailable: http.StatusBadGateway,
	ErrCodeUpstreamRejected:    http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
