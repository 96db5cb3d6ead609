package astutil_test

import (
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	astutil "github.com/toejough/callshape/shapecheck/run/0_util"
)

func TestStringifyExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "ident", expr: "int", want: "int"},
		{name: "selector", expr: "big.Int", want: "big.Int"},
		{name: "pointer", expr: "*big.Int", want: "*big.Int"},
		{name: "slice", expr: "[]int", want: "[]int"},
		{name: "array", expr: "[4]int", want: "[4]int"},
		{name: "map", expr: "map[string][]int", want: "map[string][]int"},
		{name: "send chan", expr: "chan<- int", want: "chan<- int"},
		{name: "recv chan", expr: "<-chan int", want: "<-chan int"},
		{name: "chan", expr: "chan int", want: "chan int"},
		{name: "named params dropped", expr: "func(a, b int) int", want: "func(int, int) int"},
		{name: "no results", expr: "func(string)", want: "func(string)"},
		{name: "multiple results", expr: "func() (int, error)", want: "func() (int, error)"},
		{name: "variadic", expr: "func(int, ...int) int", want: "func(int, ...int) int"},
		{name: "generic instance", expr: "Pair[int, string]", want: "Pair[int, string]"},
		{name: "single index", expr: "List[int]", want: "List[int]"},
		{name: "empty interface", expr: "interface{}", want: "interface{}"},
		{name: "interface", expr: "interface{ Call(a, b int) int }", want: "interface{...}"},
		{name: "struct", expr: "struct{ X int }", want: "struct{...}"},
		{name: "paren", expr: "(int)", want: "(int)"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := astutil.StringifyExpr(parseType(t, testCase.expr))
			if got != testCase.want {
				t.Errorf("StringifyExpr(%q) = %q, want %q", testCase.expr, got, testCase.want)
			}
		})
	}
}

func TestExpandFieldListTypes_Nil(t *testing.T) {
	t.Parallel()

	if got := astutil.ExpandFieldListTypes(nil); got != nil {
		t.Errorf("ExpandFieldListTypes(nil) = %v, want nil", got)
	}

	if got := astutil.FuncSignature(nil); got != "" {
		t.Errorf("FuncSignature(nil) = %q, want empty", got)
	}
}

// parseType parses expr as the type of a declaration and returns it.
func parseType(t *testing.T, expr string) dst.Expr {
	t.Helper()

	file, err := decorator.Parse("package p\n\ntype T " + expr + "\n")
	if err != nil {
		t.Fatalf("failed to parse %q: %v", expr, err)
	}

	genDecl, ok := file.Decls[0].(*dst.GenDecl)
	if !ok {
		t.Fatalf("expected a type declaration for %q", expr)
	}

	typeSpec, ok := genDecl.Specs[0].(*dst.TypeSpec)
	if !ok {
		t.Fatalf("expected a type spec for %q", expr)
	}

	return typeSpec.Type
}
