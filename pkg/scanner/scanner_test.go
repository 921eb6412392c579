package scanner_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"contgen/pkg/scanner"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	names := []string{"a.s", "b.txt", "c.S", "dir/"}
	require.Equal(t, []string{"a.s"}, scanner.Filter(names, ".s"))
}

func TestFilterDirectoryWithExtension(t *testing.T) {
	require.Empty(t, scanner.Filter([]string{"weird.s/", "build.js"}, ".s"))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.s", "b.txt", "c.S", "make.ctx.s", "build.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("ret\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.s"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dir", "inner.s"), nil, 0644))

	units, err := scanner.Scan(dir, ".s")
	require.NoError(t, err)
	require.Equal(t, []scanner.Unit{
		{Path: filepath.Join(dir, "a.s"), Name: "a.s", ShortName: "a"},
		{Path: filepath.Join(dir, "make.ctx.s"), Name: "make.ctx.s", ShortName: "make"},
	}, units)
}

func TestScanSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "swap.s"), []byte("ret\n"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link.s")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real", "swap.s"), filepath.Join(dir, "swap.s")))

	units, err := scanner.Scan(dir, ".s")
	require.NoError(t, err)
	require.Equal(t, []scanner.Unit{
		{Path: filepath.Join(dir, "swap.s"), Name: "swap.s", ShortName: "swap"},
	}, units)
}

func TestScanEmpty(t *testing.T) {
	units, err := scanner.Scan(t.TempDir(), ".s")
	require.NoError(t, err)
	require.Empty(t, units)
}

func TestScanMissingDir(t *testing.T) {
	_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"), ".s")
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
