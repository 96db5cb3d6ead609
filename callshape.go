// Package callshape provides a structural contract for callables that take two ints and return an int, a generic
// invoker that accepts anything with that shape, and an addition function that conforms to it.
//
// This is the public API entry point. Implementation lives in internal/core.
package callshape

import (
	"reflect"

	"github.com/toejough/callshape/internal/core"
)

// Callable is the method-set view of the contract.
type Callable = core.Callable

// Func is the contract as a named function type. It implements Callable.
type Func = core.Func

// OverflowError is the panic value of a Fail-policy conformer whose sum leaves the int range.
type OverflowError = core.OverflowError

// Policy selects what an addition conformer does on overflow.
type Policy = core.Policy

// Shape is the contract as a type constraint: any type whose underlying type is func(int, int) int.
type Shape = core.Shape

// Policy values re-exported from internal/core.
const (
	PolicyFail     = core.PolicyFail
	PolicyWrap     = core.PolicyWrap
	PolicySaturate = core.PolicySaturate
)

// Errors re-exported from internal/core.
var (
	ErrOverflow     = core.ErrOverflow
	ErrTypeMismatch = core.ErrTypeMismatch
)

// Add returns a + b, panicking with an *OverflowError when the sum leaves the int range.
func Add(a, b int) int {
	return core.Add(a, b)
}

// Addition returns the addition conformer for the given overflow policy.
func Addition(policy Policy) Func {
	return core.Addition(policy)
}

// Conforms reports whether t has the contract's shape, returning an error wrapping ErrTypeMismatch if not.
func Conforms(t reflect.Type) error {
	return core.Conforms(t)
}

// Invoke applies fn to a and b and returns the result verbatim.
func Invoke[F Shape](fn F, a, b int) int {
	return core.Invoke(fn, a, b)
}

// InvokeAny checks fn against the contract at runtime and applies it only if it conforms.
func InvokeAny(fn any, a, b int) (int, error) {
	return core.InvokeAny(fn, a, b)
}

// InvokeCallable applies c to a and b and returns the result verbatim.
func InvokeCallable(c Callable, a, b int) int {
	return core.InvokeCallable(c, a, b)
}

// InvokeChecked applies fn and returns an overflow from fn as an error wrapping ErrOverflow.
func InvokeChecked[F Shape](fn F, a, b int) (int, error) {
	return core.InvokeChecked(fn, a, b)
}

// ParsePolicy maps "fail", "wrap" or "saturate" to its Policy.
func ParsePolicy(name string) (Policy, error) {
	return core.ParsePolicy(name)
}
