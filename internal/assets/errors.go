package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	// Errors carrying it also match fs.ErrNotExist when the cause was a missing file.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates an empty name or one that resolves to a directory.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrFileExists indicates Scaffold would overwrite an existing file.
	ErrFileExists = errors.New("file already exists")
)
