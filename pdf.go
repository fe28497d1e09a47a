package md2flyer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/process"
)

// Page size names accepted by PDFOptions.
const (
	PageSizeLetter  = "letter"
	PageSizeA4      = "a4"
	PageSizeA5      = "a5"
	PageSizeLegal   = "legal"
	PageSizeTabloid = "tabloid"
)

// DefaultPDFTimeout bounds page load when the context has no deadline.
const DefaultPDFTimeout = 30 * time.Second

// paperSize is a page size in inches, portrait.
type paperSize struct {
	width, height float64
}

var paperSizes = map[string]paperSize{
	PageSizeLetter:  {8.5, 11},
	PageSizeA4:      {8.27, 11.69},
	PageSizeA5:      {5.83, 8.27},
	PageSizeLegal:   {8.5, 14},
	PageSizeTabloid: {11, 17},
}

// PDFOptions configures PDF export.
type PDFOptions struct {
	PageSize string // "letter", "a4", "a5", "legal", "tabloid" (default: letter)
}

// Validate checks that the page size is known (case-insensitive).
func (o PDFOptions) Validate() error {
	if o.PageSize == "" {
		return nil
	}
	if _, ok := paperSizes[strings.ToLower(o.PageSize)]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4, a5, legal, or tabloid)", ErrInvalidPageSize, o.PageSize)
	}
	return nil
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts PDFOptions) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)

// PDFExporter renders generated pages to PDF through headless Chrome.
// The browser starts on first use; call Close when done.
type PDFExporter struct {
	renderer pdfRenderer
}

// NewPDFExporter creates an exporter whose page loads are bounded by timeout.
// A non-positive timeout uses DefaultPDFTimeout.
func NewPDFExporter(timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &PDFExporter{renderer: newRodRenderer(timeout)}
}

// Export renders the HTML file at htmlPath and returns the PDF bytes.
// The page is loaded from disk so relative stylesheet and image links resolve.
func (e *PDFExporter) Export(ctx context.Context, htmlPath string, opts PDFOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", htmlPath, err)
	}
	if !fileutil.FileExists(abs) {
		return nil, fmt.Errorf("%w: %s", os.ErrNotExist, htmlPath)
	}
	return e.renderer.RenderFromFile(ctx, abs, opts)
}

// ExportFile renders htmlPath and writes the PDF to pdfPath.
func (e *PDFExporter) ExportFile(ctx context.Context, htmlPath, pdfPath string, opts PDFOptions) error {
	data, err := e.Export(ctx, htmlPath, opts)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(pdfPath, data, outputPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, pdfPath, err)
	}
	return nil
}

// Close releases browser resources.
func (e *PDFExporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}

// PDFPath derives the default PDF path from an HTML output path.
func PDFPath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources and stops the browser process tree.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

// killLauncher stops Chrome and its helper processes.
func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	if pid := r.launcher.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts PDFOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF for a single-page flyer.
// Margins are zero; the template's own CSS controls spacing and an @page
// rule in the template overrides the paper size.
func buildPDFOptions(opts PDFOptions) *proto.PagePrintToPDF {
	size, ok := paperSizes[strings.ToLower(opts.PageSize)]
	if !ok {
		size = paperSizes[PageSizeLetter]
	}

	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(size.width),
		PaperHeight:       floatPtr(size.height),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// fileURL converts an absolute path to a file:// URL.
func fileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	return "file://" + p
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
