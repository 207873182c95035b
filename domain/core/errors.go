package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidArgument is the single failure kind of the library: an input
	// violated a precondition. Callers should treat it as a programming or
	// input error, never as a transient condition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error constructors with context

// NewRangeError reports a probability-typed input outside [0, 1].
func NewRangeError(name string, value float64) error {
	return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidArgument, name, value)
}

// NewLengthMismatchError reports paired sequences of unequal length.
func NewLengthMismatchError(aName string, aLen int, bName string, bLen int) error {
	return fmt.Errorf("%w: %s (%d) and %s (%d) must have same length",
		ErrInvalidArgument, aName, aLen, bName, bLen)
}

// NewInvalidArgumentError reports any other violated precondition. The
// message should name the offending value(s) and the constraint.
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Error checking helpers

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
