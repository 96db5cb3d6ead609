// Package core holds the callable contract, the invokers that depend on it, and the addition conformer.
package core

import (
	"fmt"
	"reflect"
)

// Callable is the method-set view of the contract, for conformers that carry state or want a nominal home.
type Callable interface {
	Call(a, b int) int
}

// Func is the contract as a named function type. Any func(int, int) int converts to it.
type Func func(a, b int) int

// Call implements Callable.
func (f Func) Call(a, b int) int {
	return f(a, b)
}

// Shape is the contract as a type constraint. Conformance is structural: any type whose underlying type is
// func(int, int) int satisfies it, and anything else fails to compile.
type Shape interface {
	~func(int, int) int
}

// Conforms reports whether t has the contract's shape: a non-variadic func taking exactly two ints and returning
// exactly one int. The returned error wraps ErrTypeMismatch.
func Conforms(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("%w: want %s, got nil", ErrTypeMismatch, contractType)
	}

	if t.Kind() != reflect.Func {
		return fmt.Errorf("%w: want %s, got %s (%s)", ErrTypeMismatch, contractType, t, t.Kind())
	}

	if t.IsVariadic() || t.NumIn() != contractArity || t.NumOut() != 1 {
		return fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, contractType, t)
	}

	for i := range contractArity {
		if t.In(i) != intType {
			return fmt.Errorf("%w: want %s, got %s (parameter %d is %s)", ErrTypeMismatch, contractType, t, i, t.In(i))
		}
	}

	if t.Out(0) != intType {
		return fmt.Errorf("%w: want %s, got %s (result is %s)", ErrTypeMismatch, contractType, t, t.Out(0))
	}

	return nil
}

// unexported constants.
const (
	contractArity = 2
)

// unexported variables.
var (
	//nolint:gochecknoglobals // reflect types are fixed for the life of the program
	contractType = reflect.TypeFor[func(int, int) int]()
	//nolint:gochecknoglobals // reflect types are fixed for the life of the program
	intType = reflect.TypeFor[int]()
)
