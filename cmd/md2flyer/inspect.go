package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/boxes"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/placeholder"
)

// runInspect lists every placeholder in a template with its enclosing
// element, then checks that each box placeholder appears exactly once.
func runInspect(args []string, env *Environment) error {
	positional, err := parseInspectFlags(args)
	if err != nil {
		return err
	}

	path := config.DefaultTemplatePath
	if len(positional) > 0 {
		path = positional[0]
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", md2flyer.ErrTemplateNotFound, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	found, err := placeholder.Inspect(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	fmt.Fprintf(env.Stdout, "%s: %d placeholder(s)\n", path, len(found))
	for _, o := range found {
		fmt.Fprintf(env.Stdout, "  %s\n", o)
	}

	keys := make([]string, 0, len(boxes.All))
	for _, b := range boxes.All {
		keys = append(keys, b.Key())
	}
	if err := placeholder.Verify(string(data), placeholder.Names(keys)); err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "OK: all box placeholders present exactly once")
	return nil
}
