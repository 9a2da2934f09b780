package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads templates from disk.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	basePath string // empty = working directory
}

// NewFilesystemLoader creates a FilesystemLoader resolving relative template
// names against basePath. An empty basePath means the working directory.
// Returns ErrInvalidBasePath if basePath is set but is not a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return &FilesystemLoader{}, nil
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Path returns the file a template name resolves to.
func (f *FilesystemLoader) Path(name string) string {
	if filepath.IsAbs(name) || f.basePath == "" {
		return name
	}
	return filepath.Join(f.basePath, name)
}

// LoadTemplate reads the template file at name.
// Unlike data records, templates may live anywhere the user points to,
// including parent directories, so no containment check is applied.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	path := f.Path(name)

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidAssetName, path)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, path, err)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, path, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
