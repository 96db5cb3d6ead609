//go:build targ

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/file"
	"github.com/toejough/targ/sh"
)

// Build builds the adder and shapecheck binaries into bin/.
func Build() error {
	fmt.Println("Building...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	if err := sh.Run("go", "build", "-o", "bin/adder", "./adder"); err != nil {
		return err
	}

	return sh.Run("go", "build", "-o", "bin/shapecheck", "./shapecheck")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,         // clean up the module dependencies
		Generate,     // conformance assertions must match the code they guard
		Test,         // does our code work?
		ReorderDecls, // linter will yell about declaration order if not correct
		Lint,
	)
}

// CheckForFail runs the checks that can fail, without fixing anything.
func CheckForFail() error {
	fmt.Println("Checking for failures...")

	return targ.Deps(
		CheckGenerated,
		TestForFail,
		ReorderDeclsCheck,
		Lint,
	)
}

// CheckGenerated fails if any generated conformance file is stale.
func CheckGenerated() error {
	fmt.Println("Checking generated conformance assertions...")

	dirs, err := generateDirs()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := sh.Run("go", "run", "./shapecheck", "--check", dir); err != nil {
			return err
		}
	}

	return nil
}

// Clean removes build and coverage output.
func Clean() {
	fmt.Println("Cleaning...")
	os.Remove("coverage.out")
	os.RemoveAll("bin")
}

// Generate runs go generate on all packages.
func Generate() error {
	fmt.Println("Generating...")
	return sh.Run("go", "generate", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run(
		"go",
		"test",
		"-timeout=600s",
		"-tags=mutation",
		"-ooze.v",
		".",
		"-run=TestMutation",
	)
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	reorderedCount := 0

	for _, path := range files {
		content, reordered, err := reorderFile(path)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)

			continue
		}

		if content == reordered {
			continue
		}

		if err := os.WriteFile(path, []byte(reordered), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("  Reordered: %s\n", path)
		reorderedCount++
	}

	fmt.Printf("Reordered %d file(s).\n", reorderedCount)

	return nil
}

// ReorderDeclsCheck reports files that need reordering, with a diff, without modifying them.
func ReorderDeclsCheck() error {
	fmt.Println("Checking declaration order...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	outOfOrderFiles := 0

	for _, path := range files {
		content, reordered, err := reorderFile(path)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)

			continue
		}

		if content == reordered {
			continue
		}

		outOfOrderFiles++

		fmt.Printf("\n%s\n", textdiff.Unified(path+" (current)", path+" (reordered)", content, reordered))
	}

	if outOfOrderFiles > 0 {
		fmt.Printf("\n%d file(s) need reordering. Run 'targ reorder-decls' to fix.\n", outOfOrderFiles)

		return fmt.Errorf("%w: %d file(s)", errOutOfOrder, outOfOrderFiles)
	}

	fmt.Printf("All files are correctly ordered (%d files processed).\n", len(files))

	return nil
}

// Test runs the unit tests with coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	return sh.Run(
		"go",
		"test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./...",
		"./...",
	)
}

// TestForFail runs the unit tests purely to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for overall pass/fail...")

	return sh.Run("go", "test", "-timeout=30s", "./...", "-failfast")
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// Watch re-runs Check whenever files change.
func Watch(ctx context.Context) error {
	fmt.Println("Watching...")

	return file.Watch(ctx, []string{"**/*.go"}, file.WatchOptions{}, func(changes file.ChangeSet) error {
		if !hasRelevantChanges(changes) {
			return nil
		}

		fmt.Println("Change detected...")

		targ.ResetDeps()

		if err := Check(); err != nil {
			fmt.Println("continuing to watch after check failure (see errors above)")
		} else {
			fmt.Println("continuing to watch after all checks passed!")
		}

		return nil
	})
}

// unexported variables.
var (
	errOutOfOrder = errors.New("declarations out of order")
)

// generateDirs returns the directories holding a generated conformance file.
func generateDirs() ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() && (path == "_examples" || strings.HasPrefix(entry.Name(), ".")) && path != "." {
			return filepath.SkipDir
		}

		if entry.Name() == "generated_shape_conformance_test.go" {
			dirs = append(dirs, "./"+filepath.Dir(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find generated files: %w", err)
	}

	return dirs, nil
}

// hasRelevantChanges returns true if the changeset contains files we care about.
func hasRelevantChanges(changes file.ChangeSet) bool {
	allFiles := append(append(changes.Added, changes.Removed...), changes.Modified...)

	for _, f := range allFiles {
		if strings.Contains(f, "generated_") || strings.HasSuffix(f, "coverage.out") {
			continue
		}

		return true
	}

	return false
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 200)

	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.Contains(string(buf[:n]), "Code generated"), nil
}

// reorderFile returns the current and reordered content of path.
func reorderFile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	reordered, err := reorder.Source(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to reorder %s: %w", path, err)
	}

	return string(content), reordered, nil
}

// sourceFiles returns the hand-written Go files in the module.
func sourceFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != "." && (path == "_examples" || strings.HasPrefix(entry.Name(), ".")) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || strings.Contains(path, "generated_") {
			return nil
		}

		generated, err := isGeneratedFile(path)
		if err != nil {
			return err
		}

		if !generated {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find Go files: %w", err)
	}

	return files, nil
}
