package core_test

import (
	"reflect"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/callshape/internal/core"
)

func TestConforms(t *testing.T) {
	t.Parallel()

	type binary func(a, b int) int

	tests := []struct {
		name    string
		typ     reflect.Type
		wantErr string
	}{
		{name: "plain func", typ: reflect.TypeOf(core.Add)},
		{name: "Func", typ: reflect.TypeFor[core.Func]()},
		{name: "named func type", typ: reflect.TypeFor[binary]()},
		{name: "nil type", typ: nil, wantErr: "got nil"},
		{name: "not a func", typ: reflect.TypeFor[string](), wantErr: "got string (string)"},
		{name: "callable struct", typ: reflect.TypeFor[scaledAdder](), wantErr: "(struct)"},
		{name: "arity", typ: reflect.TypeFor[func(int) int](), wantErr: "got func(int) int"},
		{name: "param type", typ: reflect.TypeFor[func(int, uint) int](), wantErr: "parameter 1 is uint"},
		{name: "result type", typ: reflect.TypeFor[func(int, int) string](), wantErr: "result is string"},
		{name: "variadic", typ: reflect.TypeFor[func(int, ...int) int](), wantErr: "got func(int, ...int) int"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			err := core.Conforms(testCase.typ)
			if testCase.wantErr == "" {
				g.Expect(err).NotTo(HaveOccurred())

				return
			}

			g.Expect(err).To(MatchError(core.ErrTypeMismatch))
			g.Expect(err.Error()).To(ContainSubstring(testCase.wantErr))
		})
	}
}

func TestFuncIsCallable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var callable core.Callable = core.Func(func(a, b int) int { return a * b })

	g.Expect(callable.Call(6, 7)).To(Equal(42))
}
