package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-md2flyer/internal/assets"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
	// NewExporter creates the PDF exporter; replaced in tests to avoid Chrome.
	NewExporter func(timeout time.Duration) Exporter
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		NewExporter: newRodExporter,
	}
}
