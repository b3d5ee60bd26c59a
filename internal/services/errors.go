package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a genuinely missing document and one owned
	// by another partner; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrPaymentDeclined    = errors.New("payment was declined")
)

// ValidationError is a rejected input. It names the offending field so
// the caller can correct it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
