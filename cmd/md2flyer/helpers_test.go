package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fixtures, environment, and mock exporter
// ---------------------------------------------------------------------------

// fixtureTemplate carries every placeholder once.
const fixtureTemplate = `<html><body>
<h1>{{HEADER_TITLE}}</h1>
{{HEADER_CONTENT}}
<h2>{{GOLD_TITLE}}</h2>
{{GOLD_CONTENT}}
<h2>{{DARK_TEAL_TITLE}}</h2>
{{DARK_TEAL_CONTENT}}
<h2>{{ORANGE_TITLE}}</h2>
{{ORANGE_CONTENT}}
<h2>{{TEAL_TITLE}}</h2>
{{TEAL_CONTENT}}
</body></html>
`

// fixtureContent holds five well-formed sections.
const fixtureContent = `Big<br>Event
=====
Doors open at noon.
---
Menu
=====
Fish and chips
---
Schedule
=====
Talks all day.
---
Goal
=====
Raise funds.
$100 goal
---
Facts
=====
- Fact one.
`

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// syncBuffer is a bytes.Buffer safe for concurrent writes (watch mode).
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// mockExporter records exports and writes a fake PDF.
type mockExporter struct {
	mu      sync.Mutex
	timeout time.Duration
	calls   []exportCall
	err     error
	closed  bool
}

type exportCall struct {
	htmlPath string
	pdfPath  string
	opts     md2flyer.PDFOptions
}

func (m *mockExporter) ExportFile(_ context.Context, htmlPath, pdfPath string, opts md2flyer.PDFOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, exportCall{htmlPath: htmlPath, pdfPath: pdfPath, opts: opts})
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(pdfPath, []byte("%PDF-1.4 mock"), 0o644)
}

func (m *mockExporter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// testEnv bundles an Environment with its captured output and exporter.
type testEnv struct {
	*Environment
	stdout   *syncBuffer
	stderr   *syncBuffer
	exporter *mockExporter
}

// newTestEnv returns an Environment writing to buffers, using a fixed clock,
// embedded assets, and a mock exporter.
func newTestEnv() *testEnv {
	te := &testEnv{
		stdout:   &syncBuffer{},
		stderr:   &syncBuffer{},
		exporter: &mockExporter{},
	}
	te.Environment = &Environment{
		Now:         func() time.Time { return fixedNow },
		Stdout:      te.stdout,
		Stderr:      te.stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		NewExporter: func(timeout time.Duration) Exporter {
			te.exporter.timeout = timeout
			return te.exporter
		},
	}
	return te
}

// writeFile writes data to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// writeProject writes the fixture content and template into a new temp dir.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "content.md", fixtureContent)
	writeFile(t, dir, "index.template.html", fixtureTemplate)
	return dir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
