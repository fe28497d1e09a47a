// Package preview renders a content file as a plain proofreading page: one
// heading per section naming the box it fills, its lines, and its source.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2flyer/internal/boxes"
	"github.com/alnah/go-md2flyer/internal/content"
)

// ErrRender indicates the preview could not be rendered.
var ErrRender = errors.New("preview rendering failed")

// highlightStyle is the chroma style used for section sources.
const highlightStyle = "github"

// documentTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: .25rem; }
%s
</style>
</head>
<body>
%s
</body>
</html>`

// Renderer converts content text to a preview page.
type Renderer struct {
	md  goldmark.Markdown
	css string
}

// NewRenderer creates a Renderer with GFM extensions and highlighted sources.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not set: raw HTML in content is shown escaped.
		),
	)

	var css bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(highlightStyle)); err != nil {
		css.Reset()
	}

	return &Renderer{md: md, css: css.String()}
}

// Render builds the preview page for content text. A section count other
// than boxes.Count is reported in the page, not as an error.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, title, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := Markdown(text)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(documentTemplate, boxes.Escape(title), r.css, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// Markdown returns the markdown source of the preview page.
func Markdown(text string) string {
	sections := content.SplitSections(text)

	var b strings.Builder
	fmt.Fprintf(&b, "# %d sections\n\n", len(sections))
	if len(sections) != boxes.Count {
		fmt.Fprintf(&b, "**Warning:** expected %d sections, found %d.\n\n", boxes.Count, len(sections))
	}

	for i, raw := range sections {
		s := content.ParseSection(raw)

		box := "Unused"
		if i < boxes.Count {
			box = boxes.All[i].String()
		}
		title := strings.ReplaceAll(s.DisplayTitle(), content.TitleBreak, content.DisplayBreak)
		fmt.Fprintf(&b, "## %d. %s: %s\n\n", i, box, boxes.Escape(title))

		if len(s.Lines) == 0 {
			b.WriteString("*No content lines.*\n\n")
		}
		for _, line := range s.Lines {
			b.WriteString(boxes.Escape(line))
			b.WriteString("\n\n")
		}

		fence := codeFence(raw)
		fmt.Fprintf(&b, "%smarkdown\n%s\n%s\n\n", fence, raw, fence)
	}

	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}
