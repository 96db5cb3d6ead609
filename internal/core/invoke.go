package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Invoke applies fn to a and b and returns the result verbatim. Panics from fn propagate unchanged.
func Invoke[F Shape](fn F, a, b int) int {
	return fn(a, b)
}

// InvokeAny is the dynamic invoker. fn is checked against the contract before it is applied; a value that does not
// conform, or a nil func, is rejected with an error wrapping ErrTypeMismatch and is never called. An overflow panic
// from fn is returned as an error wrapping ErrOverflow.
func InvokeAny(fn any, a, b int) (int, error) {
	fnType := reflect.TypeOf(fn)

	err := Conforms(fnType)
	if err != nil {
		return 0, err
	}

	fnVal := reflect.ValueOf(fn)
	if fnVal.IsNil() {
		return 0, errNilFunc
	}

	return capture(func() int {
		returns := fnVal.Call([]reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)})

		return int(returns[0].Int())
	})
}

// InvokeCallable applies c to a and b and returns the result verbatim.
func InvokeCallable(c Callable, a, b int) int {
	return c.Call(a, b)
}

// InvokeChecked applies fn like Invoke, but returns an overflow panic from fn as an error wrapping ErrOverflow.
// Any other panic is re-raised.
func InvokeChecked[F Shape](fn F, a, b int) (int, error) {
	return capture(func() int { return fn(a, b) })
}

// unexported variables.
var (
	errNilFunc = fmt.Errorf("%w: want %s, got nil func", ErrTypeMismatch, contractType)
)

// capture runs call, converting an overflow panic into an error.
func capture(call func() int) (result int, err error) {
	defer func() {
		panicVal := recover()
		if panicVal == nil {
			return
		}

		panicErr, ok := panicVal.(error)
		if !ok || !errors.Is(panicErr, ErrOverflow) {
			panic(panicVal)
		}

		result = 0
		err = panicErr
	}()

	return call(), nil
}
