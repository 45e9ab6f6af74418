package services

import "errors"

// ValidationError reports input the caller can correct. Handlers answer these
// with 400 and the message verbatim; every other non-sentinel error is an
// infrastructure failure and must surface as a generic 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(msg string) error { return &ValidationError{Message: msg} }

// IsValidation reports whether err came from input validation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
