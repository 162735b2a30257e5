package assemble

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"docasm/archive"
)

// openSource splits absolute src into file system and name of TOC file in it.
// src could be TOC file itself, directory holding TOC file, zip archive or
// path inside zip archive (either TOC file or directory holding it). Returned
// close function must be called when file system is no longer needed.
func openSource(src, tocFile string) (fs.FS, string, func() error, error) {
	nop := func() error { return nil }
	tocFile = path.Clean(filepath.ToSlash(tocFile))

	for head := src; len(head) != 0; head, _ = filepath.Split(head) {
		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}
		inner := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))

		if fi.IsDir() {
			if len(inner) != 0 {
				break
			}
			return os.DirFS(head), tocFile, nop, nil
		}
		if !fi.Mode().IsRegular() {
			return nil, "", nil, fmt.Errorf("unexpected path mode for (%s)", head)
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return nil, "", nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		if !isArchive {
			if len(inner) != 0 {
				// regular file cannot have tail
				break
			}
			return os.DirFS(filepath.Dir(head)), filepath.Base(head), nop, nil
		}

		a, err := archive.Open(head)
		if err != nil {
			return nil, "", nil, fmt.Errorf("unable to open archive: %w", err)
		}
		name := filepath.ToSlash(inner)
		if len(name) == 0 {
			name = tocFile
		} else if fi, err := fs.Stat(a, name); err == nil && fi.IsDir() {
			name = path.Join(name, tocFile)
		}
		return a, name, a.Close, nil
	}
	return nil, "", nil, fmt.Errorf("input source was not found (%s): %w", src, fs.ErrNotExist)
}

// chapterName resolves chapter path from TOC relative to TOC location. Result
// has to stay inside of the source file system.
func chapterName(tocName, p string) (string, error) {
	p = strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return "", fmt.Errorf("absolute chapter path (%s): %w", p, fs.ErrInvalid)
	}
	name := path.Join(path.Dir(tocName), p)
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("chapter path is outside of source (%s): %w", p, fs.ErrInvalid)
	}
	return name, nil
}
