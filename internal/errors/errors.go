// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMalformedRecord indicates an unparsable or incomplete raw service record
	TypeMalformedRecord Type = "MALFORMED_RECORD"

	// TypeInvalidDefinition indicates a service definition invariant violation
	TypeInvalidDefinition Type = "INVALID_SERVICE_DEFINITION"

	// TypeInvalidAmount indicates a negative usage amount
	TypeInvalidAmount Type = "INVALID_AMOUNT"

	// TypeUnknownService indicates a ledger entry referencing a service absent from the catalog
	TypeUnknownService Type = "UNKNOWN_SERVICE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// MalformedRecord creates a malformed record error
func MalformedRecord(message string, cause error) *Error {
	return Wrap(TypeMalformedRecord, message, cause)
}

// InvalidDefinition creates an invalid service definition error
func InvalidDefinition(message string) *Error {
	return New(TypeInvalidDefinition, message)
}

// InvalidAmount creates an invalid amount error
func InvalidAmount(amount float64) *Error {
	return Newf(TypeInvalidAmount, "amount must be non-negative, got %v", amount)
}

// UnknownService creates an unknown service error
func UnknownService(name string) *Error {
	return Newf(TypeUnknownService, "service not in catalog: %s", name)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
