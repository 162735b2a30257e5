// Package archive exposes zip archive as read-only fs.FS, so documents
// can be assembled from archived sources the same way as from directories.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// FS is opened zip archive. It must be closed when no longer needed.
type FS struct {
	*zip.ReadCloser
	name string
}

// Open opens archive for reading. Archives with entries which could escape
// extraction directory (absolute paths or ".." components) are rejected as a
// whole.
func Open(name string) (*FS, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			r.Close()
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}
	return &FS{ReadCloser: r, name: name}, nil
}

// Name returns path of the archive.
func (a *FS) Name() string {
	return a.name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
