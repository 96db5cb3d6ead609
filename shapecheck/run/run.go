// Package run implements the main logic for the shapecheck tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexflint/go-arg"
	load "github.com/toejough/callshape/shapecheck/run/2_load"
	detect "github.com/toejough/callshape/shapecheck/run/3_detect"
	generate "github.com/toejough/callshape/shapecheck/run/5_generate"
	output "github.com/toejough/callshape/shapecheck/run/6_output"
)

// FileSystem reads and writes generated files.
type FileSystem = output.ReadWriter

// PackageLoader loads a package by import path.
type PackageLoader interface {
	Load(importPath string) (load.Package, error)
}

// Run executes the shapecheck tool. It takes command-line arguments, an environment variable getter, a FileSystem
// for generated files, a PackageLoader, and a writer for the report.
//
// With --target it checks one declaration and fails with an error wrapping core.ErrTypeMismatch if it does not
// conform. Otherwise it lists every conforming declaration. --gen writes compile-time assertions for the conformers
// into the package; --check verifies those assertions are current instead of writing them.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args, out)
	if errors.Is(err, arg.ErrHelp) {
		return nil
	}

	if err != nil {
		return err
	}

	pkg, err := pkgLoader.Load(parsed.Package)
	if err != nil {
		return err
	}

	if parsed.Target != "" {
		return checkTarget(pkg, parsed.Target, out)
	}

	conformers := detect.FindConformers(pkg.Files)

	if !parsed.Gen && !parsed.Check {
		for _, conformer := range conformers {
			_, _ = fmt.Fprintf(out, "%s %s: %s\n", conformer.Kind, conformer.Name, conformer.Signature)
		}

		return nil
	}

	code, err := generate.ConformanceAssertions(packageName(pkg, getEnv), conformers)
	if err != nil {
		return err
	}

	if parsed.Check {
		return output.CheckGeneratedCode(code, pkg.Dir, fileSys, out)
	}

	return output.WriteGeneratedCode(code, pkg.Dir, fileSys, out)
}

// cliArgs defines the command-line arguments for shapecheck.
type cliArgs struct {
	Package string `arg:"positional"   default:"." help:"package to scan (import path or directory)"`
	Target  string `arg:"--target"                 help:"check a single function or func type by name"`
	Gen     bool   `arg:"--gen"                    help:"write compile-time conformance assertions into the package"`
	Check   bool   `arg:"--check"                  help:"fail if the generated assertions are missing or stale"`
}

func checkTarget(pkg load.Package, target string, out io.Writer) error {
	symbol, err := detect.CheckSymbol(pkg.Files, target)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s %s conforms: %s\n", symbol.Kind, symbol.Name, symbol.Signature)

	return nil
}

// packageName returns the package for generated code: GOPACKAGE when running under go generate, without any _test
// suffix so unexported conformers stay visible, otherwise the parsed package name.
func packageName(pkg load.Package, getEnv func(string) string) string {
	if name := strings.TrimSuffix(getEnv("GOPACKAGE"), "_test"); name != "" {
		return name
	}

	return pkg.Name
}

// parseArgs parses command-line arguments into cliArgs. On --help, the usage is written to out and arg.ErrHelp is
// returned.
func parseArgs(args []string, out io.Writer) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "shapecheck"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(out)

		return cliArgs{}, err
	}

	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if parsed.Target != "" && (parsed.Gen || parsed.Check) {
		return cliArgs{}, fmt.Errorf("%w: --target cannot be combined with --gen or --check", errConflictingArgs)
	}

	return parsed, nil
}

// unexported variables.
var (
	errConflictingArgs = errors.New("conflicting arguments")
)
