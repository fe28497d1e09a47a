package main

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-md2flyer/internal/assets"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/fileutil"
)

// starterFile is one file written by init.
type starterFile struct {
	name string
	data string
}

// runInit writes the starter content and template into a directory.
// Existing files are never overwritten.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}

	tmpl, err := env.AssetLoader.LoadTemplate(assets.DefaultStarterName)
	if err != nil {
		return fmt.Errorf("loading starter template: %w", err)
	}
	text, err := env.AssetLoader.LoadContent(assets.DefaultStarterName)
	if err != nil {
		return fmt.Errorf("loading starter content: %w", err)
	}

	files := []starterFile{
		{name: config.DefaultContentPath, data: text},
		{name: config.DefaultTemplatePath, data: tmpl},
	}

	// Check all targets first so a partial init never happens
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if fileutil.FileExists(path) {
			return fmt.Errorf("%w: %s", fileutil.ErrFileExists, path)
		}
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := fileutil.WriteFileExclusive(path, []byte(f.data), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", path)
		}
	}

	if !flags.quiet {
		fmt.Fprintln(env.Stdout, "\nEdit content.md, then run 'md2flyer' to build index.html.")
	}
	return nil
}
