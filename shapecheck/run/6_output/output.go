// Package output writes generated conformance files, or checks that the file on disk is current.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
)

// FileName is the name of the generated conformance file.
const FileName = "generated_shape_conformance_test.go"

// ReadWriter reads and writes generated files.
type ReadWriter interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// ErrStale is returned by CheckGeneratedCode when the file on disk differs from what would be generated.
var ErrStale = errors.New("generated file is stale")

// CheckGeneratedCode compares the generated code for dir against the file on disk. On a difference it writes a
// unified diff to out and returns ErrStale. A missing file counts as empty.
func CheckGeneratedCode(code string, dir string, fileSys ReadWriter, out io.Writer) error {
	path := filepath.Join(dir, FileName)
	want := arrange(code, path, out)

	current, err := fileSys.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if string(current) == want {
		_, _ = fmt.Fprintf(out, "%s is up to date.\n", path)

		return nil
	}

	diff := textdiff.Unified(path+" (current)", path+" (generated)", string(current), want)
	_, _ = fmt.Fprintf(out, "%s\n", diff)

	return fmt.Errorf("%w: %s (run shapecheck --gen)", ErrStale, path)
}

// WriteGeneratedCode writes the generated code to FileName in dir.
func WriteGeneratedCode(code string, dir string, fileSys ReadWriter, out io.Writer) error {
	const generatedFilePermissions = 0o600

	path := filepath.Join(dir, FileName)

	err := fileSys.WriteFile(path, []byte(arrange(code, path, out)), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", path)

	return nil
}

// arrange reorders declarations per project conventions, falling back to the original code on failure.
func arrange(code string, path string, out io.Writer) string {
	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", path, err)

		return code
	}

	return reordered
}
