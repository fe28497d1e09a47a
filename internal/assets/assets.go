package assets

// DefaultStarterName is the name of the built-in starter template and content.
const DefaultStarterName = "flyer"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a starter template by name using the embedded loader.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// LoadContent loads a starter content file by name using the embedded loader.
func LoadContent(name string) (string, error) {
	return defaultLoader.LoadContent(name)
}
