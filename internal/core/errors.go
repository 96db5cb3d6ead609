package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	ErrOverflow     = errors.New("integer overflow")
	ErrTypeMismatch = errors.New("type mismatch")
)

// OverflowError is the panic value of a Fail-policy conformer whose result leaves the int range.
type OverflowError struct {
	A, B int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: %d + %d", ErrOverflow, e.A, e.B)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
