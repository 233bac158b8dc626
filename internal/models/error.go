package models

import "fmt"

// Error codes carried by DomainError and mapped to HTTP statuses by handlers.
const (
	ErrCodeValidation      = "VALIDATION"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInternal        = "INTERNAL"
)

// DomainError is a business error with a machine-readable code and the exact
// message exposed to API clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new DomainError.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// RequiredFieldError reports a missing or falsy required field. The message
// wording is part of the API contract ("Name is required" etc.).
func RequiredFieldError(label string) *DomainError {
	return NewDomainError(ErrCodeValidation, fmt.Sprintf("%s is required", label))
}

var (
	// ErrUnauthenticated means no identity could be resolved for the request.
	ErrUnauthenticated = NewDomainError(ErrCodeUnauthenticated, "Unauthenticated")
	// ErrUnauthorized means an identity was resolved but it does not own the
	// store named in the request path.
	ErrUnauthorized = NewDomainError(ErrCodeUnauthorized, "Unauthorized")
)
