package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrSessionNotFound     = NewDomainError("SESSION_NOT_FOUND", "Terminal session not found or expired")
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Cart has no lines to submit")
	ErrNoVariances         = NewDomainError("NO_VARIANCES", "Count sheet has no variances to submit")
	ErrSubmitInFlight      = NewDomainError("SUBMIT_IN_FLIGHT", "A submission is already in progress for this session")
	ErrDuplicateSubmission = NewDomainError("DUPLICATE_SUBMISSION", "This submission was already processed")
	ErrUpstreamUnavailable = NewDomainError("UPSTREAM_UNAVAILABLE", "Back-office service is unreachable")
	ErrUpstreamRejected    = NewDomainError("UPSTREAM_REJECTED", "Back-office service rejected the request")
)
