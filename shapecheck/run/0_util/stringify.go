// Package astutil renders dst expressions back to Go source text.
package astutil

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// ExpandFieldListTypes returns one type string per declared name, so "a, b int" yields ["int", "int"].
// An unnamed field yields its type once.
func ExpandFieldListTypes(fields *dst.FieldList) []string {
	if fields == nil {
		return nil
	}

	var types []string

	for _, field := range fields.List {
		typeStr := StringifyExpr(field.Type)

		count := max(len(field.Names), 1)
		for range count {
			types = append(types, typeStr)
		}
	}

	return types
}

// FuncSignature renders a function type as "func(<params>) <results>", dropping parameter names.
func FuncSignature(funcType *dst.FuncType) string {
	if funcType == nil {
		return ""
	}

	var buf strings.Builder

	buf.WriteString("func(")
	buf.WriteString(strings.Join(ExpandFieldListTypes(funcType.Params), ", "))
	buf.WriteString(")")

	results := ExpandFieldListTypes(funcType.Results)

	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" " + results[0])
	default:
		buf.WriteString(" (" + strings.Join(results, ", ") + ")")
	}

	return buf.String()
}

// StringifyExpr renders a type expression to Go code.
//
//nolint:cyclop // Type-switch dispatcher over dst expression kinds
func StringifyExpr(expr dst.Expr) string {
	switch typedExpr := expr.(type) {
	case nil:
		return ""
	case *dst.Ident:
		return typedExpr.Name
	case *dst.BasicLit:
		return typedExpr.Value
	case *dst.SelectorExpr:
		return StringifyExpr(typedExpr.X) + "." + typedExpr.Sel.Name
	case *dst.StarExpr:
		return "*" + StringifyExpr(typedExpr.X)
	case *dst.ParenExpr:
		return "(" + StringifyExpr(typedExpr.X) + ")"
	case *dst.Ellipsis:
		return "..." + StringifyExpr(typedExpr.Elt)
	case *dst.ArrayType:
		return "[" + StringifyExpr(typedExpr.Len) + "]" + StringifyExpr(typedExpr.Elt)
	case *dst.MapType:
		return "map[" + StringifyExpr(typedExpr.Key) + "]" + StringifyExpr(typedExpr.Value)
	case *dst.ChanType:
		return stringifyChanType(typedExpr)
	case *dst.FuncType:
		return FuncSignature(typedExpr)
	case *dst.IndexExpr:
		return StringifyExpr(typedExpr.X) + "[" + StringifyExpr(typedExpr.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, 0, len(typedExpr.Indices))
		for _, index := range typedExpr.Indices {
			indices = append(indices, StringifyExpr(index))
		}

		return StringifyExpr(typedExpr.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.InterfaceType:
		if typedExpr.Methods == nil || len(typedExpr.Methods.List) == 0 {
			return "interface{}"
		}

		return "interface{...}"
	case *dst.StructType:
		if typedExpr.Fields == nil || len(typedExpr.Fields.List) == 0 {
			return "struct{}"
		}

		return "struct{...}"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func stringifyChanType(chanType *dst.ChanType) string {
	switch chanType.Dir {
	case dst.SEND:
		return "chan<- " + StringifyExpr(chanType.Value)
	case dst.RECV:
		return "<-chan " + StringifyExpr(chanType.Value)
	default:
		return "chan " + StringifyExpr(chanType.Value)
	}
}
