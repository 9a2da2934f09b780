// Package datasource reads page records from JSON or YAML data files.
//
// A data file holds a top-level array of objects, one per page. Records are
// returned undecoded, in file order; field checks belong to the caller.
package datasource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-pagegen/internal/fileutil"
	"github.com/alnah/go-pagegen/internal/yamlutil"
)

// Sentinel errors for data source operations.
var (
	ErrNotFound  = errors.New("data file not found")
	ErrRead      = errors.New("failed to read data file")
	ErrParse     = errors.New("failed to parse data file")
	ErrEmptyName = errors.New("data file name cannot be empty")
)

// yamlExts are decoded as YAML; every other extension is decoded as JSON.
var yamlExts = []string{".yaml", ".yml"}

// FileSource loads records from files relative to a base directory.
type FileSource struct {
	baseDir string
}

// NewFileSource creates a FileSource. An empty baseDir resolves names
// against the working directory.
func NewFileSource(baseDir string) *FileSource {
	return &FileSource{baseDir: baseDir}
}

// Path returns the file a name resolves to. Absolute names are used as is.
func (s *FileSource) Path(name string) string {
	if filepath.IsAbs(name) || s.baseDir == "" {
		return name
	}
	return filepath.Join(s.baseDir, name)
}

// Records reads and parses the data file stored under name.
// A missing file yields an error matching both ErrNotFound and fs.ErrNotExist.
func (s *FileSource) Records(name string) ([]map[string]any, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	path := s.Path(name)

	data, err := os.ReadFile(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var records []map[string]any
	if fileutil.HasExt(path, yamlExts...) {
		err = decodeYAML(data, &records)
	} else {
		err = decodeJSON(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return records, nil
}

// decodeJSON keeps numbers as their literal text so a value like 1.50 in a
// spec row is rendered exactly as written.
func decodeJSON(data []byte, v *[]map[string]any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected content after top-level array")
	}
	if *v == nil {
		return errors.New("top-level value must be an array of objects")
	}
	return nil
}

// decodeYAML mirrors decodeJSON: numbers keep their literal text and a null
// item stays a nil record.
func decodeYAML(data []byte, v *[]map[string]any) error {
	doc, err := yamlutil.DecodeLiteral(data)
	if err != nil {
		return err
	}
	items, ok := doc.([]any)
	if !ok {
		return errors.New("top-level value must be a sequence of mappings")
	}
	records := make([]map[string]any, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		m, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("item %d: want mapping, got %T", i, item)
		}
		records[i] = m
	}
	*v = records
	return nil
}
