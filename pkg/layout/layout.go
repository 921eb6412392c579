// Package layout maps a source directory onto the generated output trees.
//
// For a source directory <root>/src/<component> the generator writes raw
// binaries under <root>/build/<component>_bin and include files under
// <root>/include/<namespace>/<component>.
package layout

import (
	"path/filepath"
)

const (
	DefaultNamespace = "rua"

	BinExt     = ".bin"
	IncludeExt = ".inc"
)

type Layout struct {
	SourceDir string // directory scanned for assembly sources
	Root      string // project root holding build/ and include/
	Namespace string // include namespace, e.g. rua
	Component string // component name, e.g. cont
}

// New derives a Layout from the source directory alone.
func New(sourceDir string) Layout {
	sourceDir = filepath.Clean(sourceDir)
	return Layout{
		SourceDir: sourceDir,
		Root:      filepath.Join(sourceDir, "..", ".."),
		Namespace: DefaultNamespace,
		Component: filepath.Base(sourceDir),
	}
}

// BinaryRoot is the directory holding intermediate binaries.
func (l Layout) BinaryRoot() string {
	return filepath.Join(l.Root, "build", l.Component+"_bin")
}

// IncludeRoot is the directory holding generated include files.
func (l Layout) IncludeRoot() string {
	return filepath.Join(l.Root, "include", l.Namespace, l.Component)
}

func (l Layout) BinaryPath(shortName string) string {
	return filepath.Join(l.BinaryRoot(), shortName+BinExt)
}

func (l Layout) IncludePath(shortName string) string {
	return filepath.Join(l.IncludeRoot(), shortName+IncludeExt)
}
