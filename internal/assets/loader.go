package assets

// AssetLoader defines the contract for loading page templates.
type AssetLoader interface {
	// LoadTemplate loads a template by name.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name is empty.
	LoadTemplate(name string) (string, error)
}
