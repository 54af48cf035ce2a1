package testdata

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// YueTables returns a file system rooted at the directory of the sample
// Cantonese rule tables.
func YueTables() fs.FS {
	return os.DirFS(TablePath(""))
}

// TableReader returns a reader for the given sample table for testing.
func TableReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(TablePath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// TablePath returns the path for the given sample table, relative to the
// table directory.
func TablePath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "yue", filepath.FromSlash(file))
}
