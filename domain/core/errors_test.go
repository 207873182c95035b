package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRangeError(t *testing.T) {
	err := NewRangeError("P(A)", 1.5)

	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Range error should wrap ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "P(A)") {
		t.Errorf("Range error should name the offending input, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "1.5") {
		t.Errorf("Range error should carry the offending value, got %q", err.Error())
	}
}

func TestNewLengthMismatchError(t *testing.T) {
	err := NewLengthMismatchError("outcomes", 3, "probabilities", 2)

	if !IsInvalidArgument(err) {
		t.Errorf("Length mismatch should be an invalid argument, got %v", err)
	}
	for _, want := range []string{"outcomes", "probabilities", "3", "2"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Length mismatch message missing %q: %q", want, err.Error())
		}
	}
}

func TestIsInvalidArgument(t *testing.T) {
	if IsInvalidArgument(errors.New("unrelated")) {
		t.Error("Unrelated errors should not match ErrInvalidArgument")
	}
	if IsInvalidArgument(nil) {
		t.Error("nil should not match ErrInvalidArgument")
	}
	if !IsInvalidArgument(NewInvalidArgumentError("partition sums to %g", 0.99)) {
		t.Error("Constructor output should match ErrInvalidArgument")
	}
}
