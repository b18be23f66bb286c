package joints

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInfeasible   = errors.New("no bolt configuration satisfies the load")
)

// ValidationError names the offending input. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field string
	Value float64
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %g: must be %s", e.Field, e.Value, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
