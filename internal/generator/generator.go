package generator

import (
	"os"
	"strings"

	"contgen/pkg/assembler"
	"contgen/pkg/hexlit"
	"contgen/pkg/layout"
	"contgen/pkg/paths"
	"contgen/pkg/scanner"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// DefaultExt is the extension of the assembly sources picked up by a run.
const DefaultExt = ".s"

type Generator struct {
	Layout    layout.Layout       // where sources are read and artifacts written
	Assembler assembler.Assembler // tool turning one source into a raw binary
	Ext       string              // source extension, DefaultExt when empty
	Log       *log.Logger         // progress and warnings
}

// Artifact records the files produced for one source.
type Artifact struct {
	Unit        scanner.Unit
	BinaryPath  string
	IncludePath string
}

// New returns a Generator for sourceDir using fasm. Progress goes to l,
// whose level decides whether it is shown.
func New(sourceDir string, l *log.Logger) *Generator {
	return &Generator{
		Layout:    layout.New(sourceDir),
		Assembler: assembler.NewFasm(assembler.DefaultTool),
		Ext:       DefaultExt,
		Log:       l,
	}
}

// Generate assembles every source in the layout's source directory and
// writes the encoded include files. The first error stops the run.
func (g *Generator) Generate() error {
	_, err := g.GenerateUnits()
	return err
}

// GenerateUnits is Generate returning the artifacts written. On error the
// artifacts completed before the failure are returned alongside it.
func (g *Generator) GenerateUnits() ([]Artifact, error) {
	binRoot := g.Layout.BinaryRoot()
	incRoot := g.Layout.IncludeRoot()
	for _, dir := range []string{binRoot, incRoot} {
		if err := paths.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	units, err := scanner.Scan(g.Layout.SourceDir, g.ext())
	if err != nil {
		return nil, err
	}

	var artifacts []Artifact
	seen := make(map[string]string, len(units))
	for _, unit := range units {
		if prev, ok := seen[unit.ShortName]; ok {
			g.logger().Warn("short name collision, output will be overwritten",
				"name", unit.ShortName, "first", prev, "second", unit.Name)
		}
		seen[unit.ShortName] = unit.Name

		artifact, err := g.generateUnit(unit)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (g *Generator) generateUnit(unit scanner.Unit) (Artifact, error) {
	l := g.logger()
	artifact := Artifact{
		Unit:        unit,
		BinaryPath:  g.Layout.BinaryPath(unit.ShortName),
		IncludePath: g.Layout.IncludePath(unit.ShortName),
	}

	l.Info("build", "src", unit.Path)

	output, err := g.Assembler.Assemble(unit.Path, artifact.BinaryPath)
	if err != nil {
		return artifact, errors.Wrapf(err, "failed to assemble %s", unit.Path)
	}
	if out := strings.TrimSpace(output); out != "" {
		l.Info(g.Assembler.Tool(), "output", out)
	}

	data, err := os.ReadFile(artifact.BinaryPath)
	if err != nil {
		return artifact, errors.Wrapf(err, "failed to read binary for %s", unit.Path)
	}

	if err := writeInclude(artifact.IncludePath, data); err != nil {
		return artifact, errors.Wrapf(err, "failed to write include file for %s", unit.Path)
	}

	l.Info("output", "inc", artifact.IncludePath, "bytes", len(data))
	return artifact, nil
}

// writeInclude truncates any existing file at path.
func writeInclude(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := hexlit.Write(f, data); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

func (g *Generator) ext() string {
	if g.Ext == "" {
		return DefaultExt
	}
	return g.Ext
}

func (g *Generator) logger() *log.Logger {
	if g.Log == nil {
		return log.Default()
	}
	return g.Log
}
