package pagegen

import "errors"

// Sentinel errors for generation.
var (
	ErrMissingInputFile = errors.New("input file not found")
	ErrReadInput        = errors.New("failed to read input")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrWriteFailure     = errors.New("failed to write page")

	// Strict mode: a replacement value reintroduced a known token.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder in output")

	// Markdown field errors.
	ErrUnknownField   = errors.New("unknown page field")
	ErrMarkdownRender = errors.New("markdown rendering failed")

	ErrInvalidPass   = errors.New("invalid generation pass")
	ErrInvalidLayout = errors.New("invalid layout")
)
