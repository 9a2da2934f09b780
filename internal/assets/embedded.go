package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed starter/*
var starter embed.FS

const starterDir = "starter"

// EmbeddedLoader loads the starter templates compiled into the binary.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a starter file by its base name (e.g. "template_city.html").
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !fs.ValidPath(name) || path.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}

	content, err := starter.ReadFile(starterDir + "/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrTemplateNotFound, name, fs.ErrNotExist)
	}

	return string(content), nil
}

// StarterFiles returns the names of the embedded starter files, sorted.
func StarterFiles() []string {
	entries, err := starter.ReadDir(starterDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
