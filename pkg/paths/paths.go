package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// EnsureDir creates dir along with any missing parents. An existing
// directory is left untouched.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return nil
}

// ShortName returns the part of the file name before its first '.'.
func ShortName(name string) string {
	name = filepath.Base(name)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
