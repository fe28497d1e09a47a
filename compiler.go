package md2flyer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2flyer/internal/boxes"
	"github.com/alnah/go-md2flyer/internal/content"
	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/placeholder"
)

// outputPerm is the permission of generated pages.
const outputPerm = 0o644

// Compiler turns content and a template into a flyer page.
// A Compiler holds no mutable state and is safe for concurrent use.
type Compiler struct {
	cfg compilerConfig
}

// NewCompiler creates a Compiler with default configuration.
// Use options to customize behavior (e.g., WithOrangeTrailer).
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		cfg: compilerConfig{orangeTrailer: DefaultOrangeTrailer},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompileFiles compiles with a default Compiler.
func CompileFiles(ctx context.Context, contentPath, templatePath, outputPath string) (*Result, error) {
	return NewCompiler().CompileFiles(ctx, Paths{
		Content:  contentPath,
		Template: templatePath,
		Output:   outputPath,
	})
}

// Compile runs the pipeline in memory: split, parse, format, substitute.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Compiler) Compile(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := content.Decode([]byte(input.Content))
	if err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	tmpl, err := content.Decode([]byte(input.Template))
	if err != nil {
		return nil, fmt.Errorf("decoding template: %w", err)
	}

	parsed := content.ParseAll(text)
	if len(parsed) != SectionCount {
		return nil, &SectionCountError{Found: len(parsed), Want: SectionCount}
	}

	formatted := boxes.FormatAll(parsed, boxes.Options{OrangeTrailer: c.cfg.orangeTrailer})

	values := make(map[string]string, SectionCount*2)
	keys := make([]string, 0, SectionCount)
	for _, f := range formatted {
		key := f.Box.Key()
		keys = append(keys, key)
		values[key+"_TITLE"] = f.Title
		values[key+"_CONTENT"] = f.Content()
	}

	page, err := placeholder.Substitute(tmpl, values)
	if err != nil {
		return nil, err
	}

	return &Result{
		HTML:       []byte(page),
		Sections:   toSections(parsed),
		Unresolved: unknownTokens(tmpl, placeholder.Names(keys)),
	}, nil
}

// CompileFiles reads the content and template files, compiles them, and
// writes the page to paths.Output. The output file is replaced only when
// every stage succeeded.
func (c *Compiler) CompileFiles(ctx context.Context, paths Paths) (*Result, error) {
	if err := checkOutputPath(paths); err != nil {
		return nil, err
	}

	contentData, err := readInput(paths.Content, ErrContentNotFound)
	if err != nil {
		return nil, err
	}
	templateData, err := readInput(paths.Template, ErrTemplateNotFound)
	if err != nil {
		return nil, err
	}

	res, err := c.Compile(ctx, Input{
		Content:  string(contentData),
		Template: string(templateData),
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fileutil.WriteFileAtomic(paths.Output, res.HTML, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteOutput, paths.Output, err)
	}
	return res, nil
}

// Placeholders returns the ten template tokens in box order.
func Placeholders() []string {
	keys := make([]string, 0, SectionCount)
	for _, b := range boxes.All {
		keys = append(keys, b.Key())
	}
	names := placeholder.Names(keys)
	tokens := make([]string, len(names))
	for i, n := range names {
		tokens[i] = placeholder.Token(n)
	}
	return tokens
}

// readInput reads a required input file, mapping absence to notFound.
func readInput(path string, notFound error) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", notFound)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", notFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// checkOutputPath rejects an output path that would overwrite an input.
func checkOutputPath(paths Paths) error {
	if paths.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrWriteOutput)
	}
	out := filepath.Clean(paths.Output)
	for _, in := range []string{paths.Content, paths.Template} {
		if in != "" && filepath.Clean(in) == out {
			return fmt.Errorf("%w: output %s would overwrite an input file", ErrWriteOutput, paths.Output)
		}
	}
	return nil
}

// toSections converts parsed sections to their public form.
func toSections(parsed []content.ParsedSection) []Section {
	out := make([]Section, len(parsed))
	for i, p := range parsed {
		out[i] = Section{
			Index:        i,
			Box:          boxes.All[i].String(),
			Title:        p.Title(),
			DisplayTitle: strings.ReplaceAll(p.Title(), content.TitleBreak, content.DisplayBreak),
			Lines:        append([]string(nil), p.Lines...),
		}
	}
	return out
}

// unknownTokens lists template tokens that are not box placeholders.
func unknownTokens(tmpl string, names []string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[placeholder.Token(n)] = true
	}

	var unknown []string
	for _, tok := range placeholder.Residual(tmpl) {
		if !known[tok] {
			unknown = append(unknown, tok)
		}
	}
	return unknown
}
