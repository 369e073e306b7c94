package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every rejected input, before any calculation runs.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError names the offending field of a rejected input.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// InvalidParameter builds a ParameterError with a formatted reason.
func InvalidParameter(field, format string, args ...any) error {
	return &ParameterError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
