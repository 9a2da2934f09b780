package assets

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-pagegen/internal/fileutil"
)

// Scaffold writes every starter file into dir and returns the written paths.
// Existing files are left alone and reported as ErrFileExists unless force
// is set; the check runs for all files before any is written.
func Scaffold(dir string, force bool) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	loader := NewEmbeddedLoader()
	names := StarterFiles()

	if !force {
		for _, name := range names {
			target := filepath.Join(dir, name)
			if fileutil.FileExists(target) || fileutil.DirExists(target) {
				return nil, fmt.Errorf("%w: %s", ErrFileExists, target)
			}
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return written, err
		}
		target := filepath.Join(dir, name)
		if err := fileutil.WriteFile(target, content); err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}
