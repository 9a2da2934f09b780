package pagegen

import (
	"fmt"
	"os"

	"github.com/alnah/go-pagegen/internal/fileutil"
)

// Sink persists generated pages.
type Sink interface {
	Write(path, content string) error
}

// dirEnsurer is implemented by sinks that can create an output directory
// ahead of the first write, so an empty data set still yields its directory.
type dirEnsurer interface {
	EnsureDir(dir string) error
}

// FileSink writes pages to the local filesystem. Parent directories are
// created on demand and each file is replaced atomically.
type FileSink struct{}

// Write stores content at path.
func (FileSink) Write(path, content string) error {
	return fileutil.WriteFile(path, content)
}

// EnsureDir creates dir and any missing parents.
func (FileSink) EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", fileutil.ErrCreateDir, dir, err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Sink       = FileSink{}
	_ dirEnsurer = FileSink{}
)
