package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/content"
	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/preview"
)

// previewSuffix replaces the content file extension in the default preview path.
const previewSuffix = ".preview.html"

// runPreview renders the content file as a standalone HTML page showing how
// it splits into sections. Works with any section count.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}

	path := config.DefaultContentPath
	if len(positional) > 0 {
		path = positional[0]
	} else if flags.common.config != "" {
		cfg, err := loadConfig(flags.common.config)
		if err != nil {
			return err
		}
		path = cfg.Input.Content
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", md2flyer.ErrContentNotFound, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := content.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding content: %w", err)
	}

	start := env.Now()
	page, err := preview.NewRenderer().Render(ctx, filepath.Base(path), text)
	if err != nil {
		return err
	}

	out := flags.output
	if out == "" {
		out = previewPath(path)
	}
	if filepath.Clean(out) == filepath.Clean(path) {
		return fmt.Errorf("%w: output %s would overwrite the content file", md2flyer.ErrWriteOutput, out)
	}
	if err := fileutil.WriteFileAtomic(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", md2flyer.ErrWriteOutput, out, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote preview %s\n", out)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Render: %v\n", env.Now().Sub(start))
	}
	return nil
}

// previewPath derives the default preview path from the content path.
func previewPath(contentPath string) string {
	return strings.TrimSuffix(contentPath, filepath.Ext(contentPath)) + previewSuffix
}
