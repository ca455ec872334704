package extract

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ListFiles returns the paths (joined to root) of every file under root that
// survives SkipFile, without descending into SkipDir directories or symlinked
// directories. Unreadable subdirectories are skipped; only a failure to read
// root itself is returned.
func ListFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && SkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			// a link to a directory is treated like a directory that is not followed
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}

		if SkipFile(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
