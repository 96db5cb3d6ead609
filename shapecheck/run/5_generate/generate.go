// Package generate renders compile-time conformance assertions for detected conformers.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	detect "github.com/toejough/callshape/shapecheck/run/3_detect"
)

// ConformanceAssertions returns the source of a file in package pkgName that assigns every conformer to
// callshape.Func, so that a conformer whose signature drifts breaks the build. Functions are assigned directly and
// func types are converted from a nil value.
func ConformanceAssertions(pkgName string, conformers []detect.Symbol) (string, error) {
	if len(conformers) == 0 {
		return "", fmt.Errorf("%w in package %s", ErrNoConformers, pkgName)
	}

	data := assertionsData{
		PkgName:   pkgName,
		Qualifier: "callshape.",
		Import:    true,
	}

	// The contract package cannot import itself.
	if pkgName == contractPkgName {
		data.Qualifier = ""
		data.Import = false
	}

	for _, conformer := range conformers {
		data.Assertions = append(data.Assertions, assertion{
			Name:   conformer.Name,
			IsType: conformer.Kind == detect.SymbolFunctionType,
		})
	}

	var buf bytes.Buffer

	err := assertionsTmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to render assertions: %w", err)
	}

	return buf.String(), nil
}

// ErrNoConformers is returned when there is nothing to assert.
var ErrNoConformers = errors.New("no conforming declarations")

// unexported constants.
const (
	assertionsTemplate = `// Code generated by shapecheck. DO NOT EDIT.
// Each assertion stops compiling when its declaration no longer matches func(int, int) int.

package {{.PkgName}}
{{if .Import}}
import "github.com/toejough/callshape"
{{end}}
// unexported variables.
var (
{{- range .Assertions}}
	_ {{$.Qualifier}}Func = {{if .IsType}}{{$.Qualifier}}Func({{.Name}}(nil)){{else}}{{.Name}}{{end}}
{{- end}}
)
`
	contractPkgName = "callshape"
)

// unexported variables.
var (
	//nolint:gochecknoglobals // parsed once from a constant
	assertionsTmpl = template.Must(template.New("assertions").Parse(assertionsTemplate))
)

type assertion struct {
	Name   string
	IsType bool
}

type assertionsData struct {
	PkgName    string
	Qualifier  string
	Import     bool
	Assertions []assertion
}
