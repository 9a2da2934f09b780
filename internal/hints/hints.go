// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-pagegen/internal/fileutil"
)

// IsInProject reports whether dir already holds a generator project, detected
// by the presence of a pagegen config file.
var IsInProject = func(dir string) bool {
	return fileutil.FileExists(filepath.Join(dir, "pagegen.yaml")) ||
		fileutil.FileExists(filepath.Join(dir, "pagegen.yml"))
}

// ForMissingInput returns hints for a data file or template that does not exist.
// Suggests scaffolding when the working directory is not a project yet.
func ForMissingInput(dir string) string {
	var hints []string
	if !IsInProject(dir) {
		hints = append(hints, "run 'pagegen init' to create starter data and templates")
	}
	hints = append(hints, "use --config to point at another project")
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-pagegen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-pagegen/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMalformedRecord returns a hint for records missing required fields.
func ForMalformedRecord() string {
	return format("every record needs all page fields as strings; compare with 'pagegen init' starter data")
}

// ForWriteFailure returns hints for output write errors.
func ForWriteFailure() string {
	return format("check the output directory is writable and not occupied by a file")
}

// ForUnresolved returns a hint for pages that still hold known tokens.
func ForUnresolved() string {
	return format("a field value contains a {token}; drop --strict if that is intended")
}

// ForFileExists returns a hint for init refusing to overwrite files.
func ForFileExists() string {
	return format("use --force to overwrite existing files")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
