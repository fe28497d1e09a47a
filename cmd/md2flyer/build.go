package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/hints"
	"github.com/alnah/go-md2flyer/internal/watch"
)

// Exporter renders a generated page to PDF.
type Exporter interface {
	ExportFile(ctx context.Context, htmlPath, pdfPath string, opts md2flyer.PDFOptions) error
	Close() error
}

// Compile-time interface implementation check.
var _ Exporter = (*md2flyer.PDFExporter)(nil)

// newRodExporter creates the headless Chrome exporter.
func newRodExporter(timeout time.Duration) Exporter {
	return md2flyer.NewPDFExporter(timeout)
}

// buildPlan is the resolved configuration of one build run.
type buildPlan struct {
	paths    md2flyer.Paths
	pdfPath  string // "" = no PDF export
	pdfOpts  md2flyer.PDFOptions
	timeout  time.Duration
	debounce time.Duration
	watch    bool
	quiet    bool
	verbose  bool
}

// runBuild generates the flyer page, optionally exports a PDF, and in
// watch mode keeps rebuilding until ctx is cancelled.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins), then re-check merged values
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	plan := resolvePlan(flags, cfg, positional)
	compiler := md2flyer.NewCompiler(md2flyer.WithOrangeTrailer(cfg.Orange.Trailer))

	var exporter Exporter
	if plan.pdfPath != "" {
		exporter = env.NewExporter(plan.timeout)
		defer exporter.Close()
	}

	err = buildOnce(ctx, compiler, exporter, plan, env)
	if !plan.watch {
		return err
	}
	if err != nil {
		reportError(env.Stderr, err)
	}

	return runWatch(ctx, plan, env, func(ctx context.Context) {
		if err := buildOnce(ctx, compiler, exporter, plan, env); err != nil {
			reportError(env.Stderr, err)
		}
	})
}

// runWatch rebuilds on every change to the content or template file.
func runWatch(ctx context.Context, plan buildPlan, env *Environment, rebuild func(context.Context)) error {
	w, err := watch.New([]string{plan.paths.Content, plan.paths.Template}, plan.debounce)
	if err != nil {
		return err
	}

	if !plan.quiet {
		fmt.Fprintf(env.Stdout, "\nWatching %s and %s for changes (Ctrl+C to stop)...\n", plan.paths.Content, plan.paths.Template)
	}

	return w.Run(ctx, func(ctx context.Context) {
		if !plan.quiet {
			fmt.Fprintf(env.Stdout, "\n[%s] change detected, rebuilding\n", env.Now().Format("15:04:05"))
		}
		rebuild(ctx)
	}, func(err error) {
		fmt.Fprintf(env.Stderr, "watch: %v\n", err)
	})
}

// buildOnce compiles the page, prints the summary, and exports the PDF.
func buildOnce(ctx context.Context, compiler *md2flyer.Compiler, exporter Exporter, plan buildPlan, env *Environment) error {
	start := env.Now()

	res, err := compiler.CompileFiles(ctx, plan.paths)
	if err != nil {
		return err
	}

	if !plan.quiet {
		printSummary(env.Stdout, plan.paths, res)
		for _, tok := range res.Unresolved {
			fmt.Fprintf(env.Stderr, "warning: template token %s is not a box placeholder and was left as is\n", tok)
		}
	}

	if exporter != nil {
		pdfStart := env.Now()
		if err := exporter.ExportFile(ctx, plan.paths.Output, plan.pdfPath, plan.pdfOpts); err != nil {
			return fmt.Errorf("exporting PDF: %w", err)
		}
		if !plan.quiet {
			fmt.Fprintf(env.Stdout, "Exported %s\n", plan.pdfPath)
		}
		if plan.verbose {
			fmt.Fprintf(env.Stderr, "PDF export: %v\n", env.Now().Sub(pdfStart).Round(time.Millisecond))
		}
	}

	if plan.verbose {
		fmt.Fprintf(env.Stderr, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// printSummary prints the parsed sections and the box mapping. Every title,
// in both blocks, is shown in display form with "<br>" as " / ".
func printSummary(w io.Writer, paths md2flyer.Paths, res *md2flyer.Result) {
	fmt.Fprintf(w, "Parsing %s...\n", paths.Content)
	fmt.Fprintf(w, "  Found %d sections\n", len(res.Sections))
	for _, s := range res.Sections {
		fmt.Fprintf(w, "  Section %d: %s\n", s.Index, s.DisplayTitle)
	}

	fmt.Fprintf(w, "\nGenerating %s from template...\n", paths.Output)
	fmt.Fprintf(w, "Done! Generated %s\n", paths.Output)

	fmt.Fprintf(w, "\nContent mapping (%d sections -> %d boxes):\n", len(res.Sections), md2flyer.SectionCount)
	for _, s := range res.Sections {
		fmt.Fprintf(w, "  %-12sSection %d - %s\n", s.Box+":", s.Index, s.DisplayTitle)
	}
}

// reportError prints err with its hint, used where the command keeps running.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
}

// loadConfig loads the named config, or defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	// Path flags
	if flags.paths.content != "" {
		cfg.Input.Content = flags.paths.content
	}
	if flags.paths.template != "" {
		cfg.Input.Template = flags.paths.template
	}
	if flags.paths.output != "" {
		cfg.Output.Path = flags.paths.output
	}

	// PDF flags
	switch flags.pdf.path {
	case "":
	case pdfAutoPath:
		cfg.PDF.Enabled = true
	default:
		cfg.PDF.Enabled = true
		cfg.PDF.Path = flags.pdf.path
	}
	if flags.pdf.pageSize != "" {
		cfg.PDF.PageSize = flags.pdf.pageSize
	}
	if flags.pdf.timeout != "" {
		cfg.PDF.Timeout = flags.pdf.timeout
	}

	// Watch flags
	if flags.watch.debounce != "" {
		cfg.Watch.Debounce = flags.watch.debounce
	}

	// Orange flags
	if flags.orange.trailer != "" {
		cfg.Orange.Trailer = flags.orange.trailer
	}
	if flags.orange.disabled {
		cfg.Orange.Trailer = ""
	}
}

// resolvePlan resolves paths against the optional project directory.
func resolvePlan(flags *buildFlags, cfg *config.Config, positional []string) buildPlan {
	dir := ""
	if len(positional) > 0 {
		dir = positional[0]
	}

	plan := buildPlan{
		paths: md2flyer.Paths{
			Content:  resolvePath(dir, cfg.Input.Content),
			Template: resolvePath(dir, cfg.Input.Template),
			Output:   resolvePath(dir, cfg.Output.Path),
		},
		pdfOpts:  md2flyer.PDFOptions{PageSize: cfg.PDF.PageSize},
		timeout:  cfg.PDFTimeout(),
		debounce: cfg.WatchDebounce(),
		watch:    flags.watch.enabled,
		quiet:    flags.common.quiet,
		verbose:  flags.common.verbose,
	}

	if cfg.PDF.Enabled {
		if cfg.PDF.Path != "" {
			plan.pdfPath = resolvePath(dir, cfg.PDF.Path)
		} else {
			plan.pdfPath = md2flyer.PDFPath(plan.paths.Output)
		}
	}

	return plan
}

// resolvePath joins a relative path onto dir. Absolute paths and an empty
// dir leave path unchanged.
func resolvePath(dir, path string) string {
	if dir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
