package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (64KB).
var MaxInputSize = 64 << 10

var (
	errEmptyYAML      = errors.New("empty config file")
	errYAMLTooLarge   = errors.New("config file exceeds maximum size")
	errNilDestination = errors.New("nil destination")
)

// unmarshalStrict decodes YAML into v, rejecting unknown fields.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errEmptyYAML
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errYAMLTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return errNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}
