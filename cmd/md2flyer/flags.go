package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing and argument errors.
var ErrUsage = errors.New("invalid usage")

// pdfAutoPath is the --pdf value meaning "next to the HTML output".
const pdfAutoPath = "auto"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds input and output file flags.
type pathFlags struct {
	content  string
	template string
	output   string
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	path     string // "" = disabled, "auto" = output path with .pdf
	pageSize string
	timeout  string
}

// watchFlags holds watch mode flags.
type watchFlags struct {
	enabled  bool
	debounce string
}

// orangeFlags holds orange box flags.
type orangeFlags struct {
	trailer  string
	disabled bool // --no-trailer
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	paths  pathFlags
	pdf    pdfFlags
	watch  watchFlags
	orange orangeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPathFlags adds input/output flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVar(&f.content, "content", "", "content file (default content.md)")
	fs.StringVar(&f.template, "template", "", "template file (default index.template.html)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default index.html)")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.path, "pdf", "", "also export PDF (--pdf or --pdf=path)")
	fs.Lookup("pdf").NoOptDefVal = pdfAutoPath
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "PDF page size: letter, a4, a5, legal, tabloid")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")
}

// addWatchFlags adds watch mode flags to a FlagSet.
func addWatchFlags(fs *flag.FlagSet, f *watchFlags) {
	fs.BoolVarP(&f.enabled, "watch", "w", false, "rebuild when content or template changes")
	fs.StringVar(&f.debounce, "debounce", "", "delay before rebuilding (e.g., 200ms)")
}

// addOrangeFlags adds orange box flags to a FlagSet.
func addOrangeFlags(fs *flag.FlagSet, f *orangeFlags) {
	fs.StringVar(&f.trailer, "trailer", "", "symbol closing the orange box text")
	fs.BoolVar(&f.disabled, "no-trailer", false, "omit the orange box trailer")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addPDFFlags(fs, &f.pdf)
	addWatchFlags(fs, &f.watch)
	addOrangeFlags(fs, &f.orange)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: build accepts at most one directory, got %d arguments", ErrUsage, fs.NArg())
	}

	return f, fs.Args(), nil
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default <content>.preview.html)")

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: preview accepts one content file", ErrUsage)
	}

	return f, fs.Args(), nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	quiet bool
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")

	fs.Usage = func() { printInitUsage(os.Stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: init accepts at most one directory", ErrUsage)
	}

	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string) ([]string, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)

	fs.Usage = func() { printInspectUsage(os.Stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w: inspect accepts one template file", ErrUsage)
	}

	return fs.Args(), nil
}

// parseFlagSet parses args, wrapping errors with ErrUsage.
// flag.ErrHelp is returned unwrapped so callers can exit successfully.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}
