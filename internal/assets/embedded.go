package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

//go:embed content/*
var contents embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(data), nil
}

// LoadContent loads a starter content file from embedded assets by name.
func (e *EmbeddedLoader) LoadContent(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := contents.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrContentNotFound, name)
	}

	return string(data), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
