// Package scanner discovers assembly sources in a single directory.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"contgen/pkg/paths"

	"github.com/pkg/errors"
)

// Unit is one assembly source file found by Scan.
type Unit struct {
	Path      string // full path to the source file
	Name      string // file name within the scanned directory
	ShortName string // name before the first '.', used for every artifact
}

// Scan lists dir without recursing and returns the files whose extension
// equals ext. The comparison is case sensitive. Directories, including
// symlinks that resolve to one, are skipped.
func Scan(dir, ext string) ([]Unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if isDir(dir, e) {
			name += "/"
		}
		names = append(names, name)
	}

	var units []Unit
	for _, name := range Filter(names, ext) {
		units = append(units, Unit{
			Path:      filepath.Join(dir, name),
			Name:      name,
			ShortName: paths.ShortName(name),
		})
	}
	return units, nil
}

func isDir(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	// dangling links are left for the assembler to reject
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.IsDir()
}

// Filter applies the Scan rule to a plain list of names. Names ending in
// '/' are directories and never match.
func Filter(names []string, ext string) []string {
	var out []string
	for _, name := range names {
		if strings.HasSuffix(name, "/") || !matches(name, ext) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func matches(name, ext string) bool {
	return filepath.Ext(name) == ext
}
