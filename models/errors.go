package models

import (
	"errors"
)

// Error kinds returned by the services. Wrap them with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("not authorized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrAuthentication    = errors.New("authentication failed")
)

// API error type names used in APIError.Type
const (
	ErrorTypeValidation        = "ValidationError"
	ErrorTypeAuthorization     = "AuthorizationError"
	ErrorTypeInvalidTransition = "InvalidTransitionError"
	ErrorTypeNotFound          = "NotFoundError"
	ErrorTypeConflict          = "ConflictError"
	ErrorTypeAuthentication    = "AuthenticationError"
	ErrorTypeDatabase          = "DatabaseError"
)

// ErrorType classifies err into one of the API error type names.
// Anything unrecognised is reported as a DatabaseError.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return ErrorTypeValidation
	case errors.Is(err, ErrUnauthorized):
		return ErrorTypeAuthorization
	case errors.Is(err, ErrInvalidTransition):
		return ErrorTypeInvalidTransition
	case errors.Is(err, ErrNotFound):
		return ErrorTypeNotFound
	case errors.Is(err, ErrConflict):
		return ErrorTypeConflict
	case errors.Is(err, ErrAuthentication):
		return ErrorTypeAuthentication
	}
	return ErrorTypeDatabase
}
