// Package domain defines the core domain models for Rolodex.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "RX-BOOK-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
// Two DomainErrors compare equal when their codes match.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Book errors (BOOK).
var (
	// ErrBookNotFound indicates the requested address book does not exist.
	ErrBookNotFound = NewDomainError("RX-BOOK-4040", "address book not found")

	// ErrBookExists indicates an address book with the same name already exists.
	ErrBookExists = NewDomainError("RX-BOOK-4090", "address book already exists")

	// ErrBookNameInvalid indicates the address book name is empty or malformed.
	ErrBookNameInvalid = NewDomainError("RX-BOOK-4001", "invalid address book name")
)

// Contact errors (CONT).
var (
	// ErrContactNotFound indicates no contact matched the lookup key.
	ErrContactNotFound = NewDomainError("RX-CONT-4040", "contact not found")

	// ErrContactExists indicates a contact with the same name key already
	// exists in the target address book.
	ErrContactExists = NewDomainError("RX-CONT-4090", "contact already exists")

	// ErrContactValidation indicates one or more contact fields failed the
	// format rules.
	ErrContactValidation = NewDomainError("RX-CONT-4001", "contact validation failed")
)

// System errors (SYS).
var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("RX-SYS-5000", "internal server error")

	// ErrStorageUnavailable indicates the persistence layer failed
	// unexpectedly.
	ErrStorageUnavailable = NewDomainError("RX-SYS-5001", "storage unavailable")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("RX-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("RX-SYS-4290", "too many requests")
)

// Argument errors (ARG).
var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("RX-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("RX-ARG-1002", "missing required argument")
)
