package assets

// AssetLoader defines the contract for loading starter assets.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadContent loads a content file by name (without .md extension).
	// Returns ErrContentNotFound if the content file doesn't exist.
	LoadContent(name string) (string, error)
}
