package promcfg

import (
	"errors"
	"fmt"
)

// ErrConflict reports an attempt to overwrite a populated nested structure
// with a scalar assignment.
var ErrConflict = errors.New("conflicting assignment")

// ValidationError reports malformed operator input: a bad network address, a
// variable name without the required prefix, or an unpairable declaration.
type ValidationError struct {
	Subject string // the variable name, address, or option entry at fault
	Reason  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Subject, e.Reason)
}

// Validation is a shorthand constructor for ValidationError.
func Validation(subject, format string, args ...any) *ValidationError {
	return &ValidationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
