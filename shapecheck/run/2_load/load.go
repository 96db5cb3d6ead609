// Package load resolves a package and parses its source into dst, with no type checking.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Package is a parsed package: its directory, its name, and the files that belong to it.
type Package struct {
	Dir   string
	Name  string
	Files []*dst.File
	Fset  *token.FileSet
}

// PackageDST loads a package by import path. "." is the current directory and includes its test files; any other
// path is resolved with go/build and excludes test files. Files excluded by build constraints for the current
// GOOS/GOARCH and tags are skipped. Files of an external _test package are dropped, as are files that fail to parse.
func PackageDST(importPath string) (Package, error) {
	dir, err := resolveDir(importPath)
	if err != nil {
		return Package{}, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Package{}, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	includeTests := importPath == "."
	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)
	pkg := Package{Dir: dir, Fset: fset}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		match, err := build.Default.MatchFile(dir, name)
		if err != nil || !match {
			continue
		}

		file, err := dec.ParseFile(filepath.Join(dir, name), nil, 0)
		if err != nil {
			continue
		}

		if strings.HasSuffix(file.Name.Name, "_test") {
			continue
		}

		if pkg.Name == "" {
			pkg.Name = file.Name.Name
		}

		pkg.Files = append(pkg.Files, file)
	}

	if len(pkg.Files) == 0 {
		return Package{}, fmt.Errorf("%w: no parseable .go files in %s", ErrNoPackageFound, dir)
	}

	return pkg, nil
}

// ErrNoPackageFound is returned when a directory holds no usable Go source.
var ErrNoPackageFound = errors.New("no package found")

// resolveDir maps an import path to a directory. "." and filesystem paths are used as-is.
func resolveDir(importPath string) (string, error) {
	if importPath == "." || filepath.IsAbs(importPath) || strings.HasPrefix(importPath, "./") ||
		strings.HasPrefix(importPath, "../") {
		dir, err := filepath.Abs(importPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", importPath, err)
		}

		return dir, nil
	}

	srcDir, _ := os.Getwd()

	pkg, err := build.Import(importPath, srcDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}
