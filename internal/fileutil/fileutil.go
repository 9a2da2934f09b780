// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// DirPerm is the permission used for directories created on demand.
const DirPerm = 0o755

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrPathIsDir     = errors.New("path is a directory")
	ErrCreateDir     = errors.New("failed to create directory")
	ErrAtomicReplace = errors.New("failed to replace file")
)

// WriteFile writes content to path, creating parent directories as needed.
// The write goes through a temp file in the same directory and is renamed
// into place, so readers never observe a half-written page.
func WriteFile(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCreateDir, dir, err)
		}
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAtomicReplace, path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/pagegen/site.yaml" -> true (absolute)
//   - "C:\sites\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExt reports whether path ends with one of the given extensions,
// compared case-insensitively. Extensions include the leading dot.
func HasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
