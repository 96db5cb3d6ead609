// Package detect finds the declarations in a package whose signature matches the callable contract,
// func(int, int) int. Detection is syntax-based: parameter and result types are compared by name, with no type
// checking, so a package that shadows int is misreported.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/toejough/callshape/internal/core"
	astutil "github.com/toejough/callshape/shapecheck/run/0_util"
)

// SymbolKind identifies the kind of declaration found.
type SymbolKind int

// SymbolKind values.
const (
	SymbolFunction SymbolKind = iota
	SymbolFunctionType
)

func (k SymbolKind) String() string {
	if k == SymbolFunctionType {
		return "type"
	}

	return "func"
}

// Symbol is a top-level function or named function type.
type Symbol struct {
	Kind      SymbolKind
	Name      string
	Signature string

	funcType *dst.FuncType
	generic  bool
}

// CheckSymbol looks up a top-level function or named function type by name and reports whether it conforms.
// A declaration that exists but does not conform returns the symbol and an error wrapping core.ErrTypeMismatch.
func CheckSymbol(files []*dst.File, name string) (Symbol, error) {
	for _, symbol := range collectSymbols(files) {
		if symbol.Name != name {
			continue
		}

		return symbol, symbol.conforms()
	}

	return Symbol{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
}

// FindConformers returns every top-level function and named function type that conforms, sorted by name.
func FindConformers(files []*dst.File) []Symbol {
	var conformers []Symbol

	for _, symbol := range collectSymbols(files) {
		if symbol.conforms() == nil {
			conformers = append(conformers, symbol)
		}
	}

	slices.SortFunc(conformers, func(a, b Symbol) int {
		return strings.Compare(a.Name, b.Name)
	})

	return conformers
}

// ErrSymbolNotFound is returned by CheckSymbol when no function or type has the requested name.
var ErrSymbolNotFound = errors.New("symbol not found")

// unexported variables.
var (
	//nolint:gochecknoglobals // the contract's parameter list, compared by value
	contractParams = []string{"int", "int"}
	//nolint:gochecknoglobals // the contract's result list, compared by value
	contractResults = []string{"int"}
)

// collectSymbols returns every named top-level function (no receiver) and type declaration in declaration order.
// Types whose definition is not a func type get an empty funcType.
func collectSymbols(files []*dst.File) []Symbol {
	var symbols []Symbol

	for _, file := range files {
		for _, decl := range file.Decls {
			switch typedDecl := decl.(type) {
			case *dst.FuncDecl:
				if typedDecl.Recv != nil || typedDecl.Name.Name == "_" {
					continue
				}

				symbols = append(symbols, Symbol{
					Kind:      SymbolFunction,
					Name:      typedDecl.Name.Name,
					Signature: astutil.FuncSignature(typedDecl.Type),
					funcType:  typedDecl.Type,
					generic:   typedDecl.Type.TypeParams != nil && len(typedDecl.Type.TypeParams.List) > 0,
				})
			case *dst.GenDecl:
				symbols = append(symbols, typeSymbols(typedDecl)...)
			}
		}
	}

	return symbols
}

func typeSymbols(genDecl *dst.GenDecl) []Symbol {
	if genDecl.Tok != token.TYPE {
		return nil
	}

	symbols := make([]Symbol, 0, len(genDecl.Specs))

	for _, spec := range genDecl.Specs {
		typeSpec, ok := spec.(*dst.TypeSpec)
		if !ok || typeSpec.Name.Name == "_" {
			continue
		}

		funcType, _ := typeSpec.Type.(*dst.FuncType)

		symbols = append(symbols, Symbol{
			Kind:      SymbolFunctionType,
			Name:      typeSpec.Name.Name,
			Signature: astutil.StringifyExpr(typeSpec.Type),
			funcType:  funcType,
			generic:   typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0,
		})
	}

	return symbols
}

func (s Symbol) conforms() error {
	switch {
	case s.funcType == nil:
		return fmt.Errorf("%w: %s %s is %s, not a func type", core.ErrTypeMismatch, s.Kind, s.Name, s.Signature)
	case s.generic:
		return fmt.Errorf("%w: %s %s is generic", core.ErrTypeMismatch, s.Kind, s.Name)
	case !slices.Equal(astutil.ExpandFieldListTypes(s.funcType.Params), contractParams),
		!slices.Equal(astutil.ExpandFieldListTypes(s.funcType.Results), contractResults):
		return fmt.Errorf("%w: %s %s is %s, want func(int, int) int", core.ErrTypeMismatch, s.Kind, s.Name, s.Signature)
	default:
		return nil
	}
}
