package detect_test

import (
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	. "github.com/onsi/gomega"
	"github.com/toejough/callshape/internal/core"
	detect "github.com/toejough/callshape/shapecheck/run/3_detect"
)

const source = `package sums

import "math/big"

type (
	BinaryOp  func(a, b int) int
	Alias     = func(int, int) int
	Unary     func(int) int
	Generic[T any] func(a, b int) int
	Point     struct{ X, Y int }
)

func Sub(x int, y int) int { return x - y }

func Add(a, b int) int { return a + b }

func add3(a, b, c int) int { return a + b + c }

func widen(a, b int) int64 { return int64(a + b) }

func big2(a, b *big.Int) int { return 0 }

func GenericAdd[T any](a, b int) int { return a + b }

func (p Point) Dot(a, b int) int { return p.X*a + p.Y*b }

func _(a, b int) int { return 0 }

func pair() (int, int) { return 0, 0 }
`

func TestFindConformers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	conformers := detect.FindConformers(parse(t, source))

	names := make([]string, 0, len(conformers))
	for _, conformer := range conformers {
		names = append(names, conformer.Kind.String()+" "+conformer.Name+": "+conformer.Signature)
	}

	g.Expect(names).To(Equal([]string{
		"func Add: func(int, int) int",
		"type Alias: func(int, int) int",
		"type BinaryOp: func(int, int) int",
		"func Sub: func(int, int) int",
	}))
}

func TestFindConformers_Empty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(detect.FindConformers(parse(t, "package empty\n"))).To(BeEmpty())
}

func TestCheckSymbol(t *testing.T) {
	t.Parallel()

	files := parse(t, source)

	tests := []struct {
		name    string
		symbol  string
		wantErr string
	}{
		{name: "conforming func", symbol: "Add"},
		{name: "conforming type", symbol: "BinaryOp"},
		{name: "arity", symbol: "add3", wantErr: "func add3 is func(int, int, int) int"},
		{name: "result type", symbol: "widen", wantErr: "func widen is func(int, int) int64"},
		{name: "param type", symbol: "big2", wantErr: "func big2 is func(*big.Int, *big.Int) int"},
		{name: "multiple results", symbol: "pair", wantErr: "func pair is func() (int, int)"},
		{name: "unary type", symbol: "Unary", wantErr: "type Unary is func(int) int"},
		{name: "generic type", symbol: "Generic", wantErr: "type Generic is generic"},
		{name: "generic func", symbol: "GenericAdd", wantErr: "func GenericAdd is generic"},
		{name: "struct type", symbol: "Point", wantErr: "type Point is struct{...}, not a func type"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			symbol, err := detect.CheckSymbol(files, testCase.symbol)
			g.Expect(symbol.Name).To(Equal(testCase.symbol))

			if testCase.wantErr == "" {
				g.Expect(err).NotTo(HaveOccurred())

				return
			}

			g.Expect(err).To(MatchError(core.ErrTypeMismatch))
			g.Expect(err).To(MatchError(ContainSubstring(testCase.wantErr)))
		})
	}
}

func TestCheckSymbol_NotFound(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	files := parse(t, source)

	for _, name := range []string{"Missing", "Dot", "_"} {
		_, err := detect.CheckSymbol(files, name)
		g.Expect(err).To(MatchError(detect.ErrSymbolNotFound), name)
	}
}

func parse(t *testing.T, src string) []*dst.File {
	t.Helper()

	file, err := decorator.Parse(src)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	return []*dst.File{file}
}
