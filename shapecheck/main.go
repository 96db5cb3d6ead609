// shapecheck reports which functions and func types in a package conform to the callable contract,
// func(int, int) int, and can generate compile-time assertions that keep them conforming.
//
// Add `//go:generate shapecheck --gen` to a package to write generated_shape_conformance_test.go, and run
// `shapecheck --check` in CI to fail when that file is stale.
package main

import (
	"fmt"
	"os"

	"github.com/toejough/callshape/shapecheck/run"
	load "github.com/toejough/callshape/shapecheck/run/2_load"
)

// main is the entry point of the shapecheck tool.
func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements run.PackageLoader with direct dst parsing.
type realPackageLoader struct{}

// Load loads a package by import path.
func (pl *realPackageLoader) Load(importPath string) (load.Package, error) {
	pkg, err := load.PackageDST(importPath)
	if err != nil {
		return load.Package{}, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return pkg, nil
}
