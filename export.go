package textable

import (
	"fmt"
	"os"
	"strings"
)

// Extension is appended by [Export] to paths that lack it.
const Extension = ".tex"

// Export writes the lines, newline-joined, to path with [Extension]
// appended if missing, overwriting any existing file. It returns the path
// written. Failures wrap [ErrIO].
func Export(lines Lines, path string) (written string, err error) {
	if !strings.HasSuffix(path, Extension) {
		path += Extension
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			written, err = "", fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()
	if _, err := f.WriteString(lines.String()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return path, nil
}
