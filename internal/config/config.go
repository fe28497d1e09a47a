package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2flyer/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxPageSizeLength = 10   // "letter", "a4", "tabloid"
	MaxDurationLength = 20   // "1m30s"
	MaxTrailerLength  = 16   // A few emoji or a short word
)

// Defaults mirror the layout of a flyer project directory.
const (
	DefaultContentPath  = "content.md"
	DefaultTemplatePath = "index.template.html"
	DefaultOutputPath   = "index.html"
	DefaultPageSize     = "letter"
	DefaultPDFTimeout   = 30 * time.Second
	DefaultDebounce     = 200 * time.Millisecond
	DefaultTrailer      = "🤎"
)

// configDirName is the directory searched under the user config directory.
const configDirName = "md2flyer"

// Config holds all configuration for flyer generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	PDF    PDFConfig    `yaml:"pdf"`
	Watch  WatchConfig  `yaml:"watch"`
	Orange OrangeConfig `yaml:"orange"`
}

// InputConfig defines the content and template files.
type InputConfig struct {
	Content  string `yaml:"content"`  // Markdown-like content file
	Template string `yaml:"template"` // HTML template with placeholders
}

// OutputConfig defines where the generated page is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// PDFConfig defines optional PDF export of the generated page.
type PDFConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`     // Empty = output path with .pdf extension
	PageSize string `yaml:"pageSize"` // "letter", "a4", "a5", "legal", "tabloid"
	Timeout  string `yaml:"timeout"`  // Go duration, e.g. "30s"
}

// WatchConfig defines watch mode behavior.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // Go duration, e.g. "200ms"
}

// OrangeConfig tunes the orange box.
type OrangeConfig struct {
	Trailer string `yaml:"trailer"` // Symbol closing the main paragraph
}

// pageSizes lists accepted PDF page sizes.
var pageSizes = map[string]bool{
	"letter":  true,
	"a4":      true,
	"a5":      true,
	"legal":   true,
	"tabloid": true,
}

// Validate checks field lengths and value formats.
// Called automatically by LoadConfig, but available for callers that build
// a Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.content", c.Input.Content, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.template", c.Input.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.path", c.PDF.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.pageSize", c.PDF.PageSize, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("orange.trailer", c.Orange.Trailer, MaxTrailerLength); err != nil {
		return err
	}

	if c.PDF.PageSize != "" && !pageSizes[strings.ToLower(c.PDF.PageSize)] {
		return fmt.Errorf("%w: pdf.pageSize %q (must be letter, a4, a5, legal, or tabloid)", ErrInvalidValue, c.PDF.PageSize)
	}
	if _, err := parseDuration("pdf.timeout", c.PDF.Timeout); err != nil {
		return err
	}
	if _, err := parseDuration("watch.debounce", c.Watch.Debounce); err != nil {
		return err
	}

	return nil
}

// PDFTimeout returns the configured PDF timeout, or the default when unset.
func (c *Config) PDFTimeout() time.Duration {
	d, err := parseDuration("pdf.timeout", c.PDF.Timeout)
	if err != nil || d == 0 {
		return DefaultPDFTimeout
	}
	return d
}

// WatchDebounce returns the configured debounce delay, or the default when unset.
func (c *Config) WatchDebounce() time.Duration {
	d, err := parseDuration("watch.debounce", c.Watch.Debounce)
	if err != nil || d == 0 {
		return DefaultDebounce
	}
	return d
}

// parseDuration parses an optional positive duration field.
// An empty value yields zero and no error.
func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	if err := validateFieldLength(field, value, MaxDurationLength); err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, field, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidValue, field, value)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Content:  DefaultContentPath,
			Template: DefaultTemplatePath,
		},
		Output: OutputConfig{Path: DefaultOutputPath},
		PDF:    PDFConfig{Enabled: false, PageSize: DefaultPageSize},
		Orange: OrangeConfig{Trailer: DefaultTrailer},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory first, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
