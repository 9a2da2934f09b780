package main

import (
	"errors"
	"os"

	pagegen "github.com/alnah/go-pagegen"
	"github.com/alnah/go-pagegen/internal/assets"
	"github.com/alnah/go-pagegen/internal/config"
	"github.com/alnah/go-pagegen/internal/fileutil"
)

// Exit codes for pagegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All requested pages written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or data records
	ExitIO      = 3 // Input not found, read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, pagegen.ErrMissingInputFile) ||
		errors.Is(err, pagegen.ErrReadInput) ||
		errors.Is(err, pagegen.ErrWriteFailure) ||
		errors.Is(err, fileutil.ErrCreateDir) ||
		errors.Is(err, fileutil.ErrAtomicReplace) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, pagegen.ErrMalformedRecord) ||
		errors.Is(err, pagegen.ErrUnresolvedPlaceholder) ||
		errors.Is(err, pagegen.ErrUnknownField) ||
		errors.Is(err, pagegen.ErrInvalidPass) ||
		errors.Is(err, pagegen.ErrInvalidLayout) ||
		errors.Is(err, assets.ErrFileExists) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
