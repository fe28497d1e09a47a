package md2flyer

import (
	"github.com/alnah/go-md2flyer/internal/boxes"
)

// SectionCount is the number of sections a content file must contain.
const SectionCount = boxes.Count

// DefaultOrangeTrailer closes the main paragraph of the orange box.
const DefaultOrangeTrailer = boxes.DefaultOrangeTrailer

// Input contains compile parameters.
type Input struct {
	Content  string // Content text with five "---"-separated sections (required)
	Template string // HTML template carrying the ten placeholders (required)
}

// Paths names the files read and written by CompileFiles.
type Paths struct {
	Content  string
	Template string
	Output   string
}

// Result is the outcome of a successful compile.
type Result struct {
	HTML       []byte    // Generated page
	Sections   []Section // Parsed sections in box order
	Unresolved []string  // Unknown "{{NAME}}" tokens left in the template
}

// Section describes one parsed section and the box it fills.
type Section struct {
	Index        int
	Box          string   // "Header", "Gold", "Dark Teal", "Orange", "Teal"
	Title        string   // Title lines joined with "<br>"
	DisplayTitle string   // Title with every "<br>" shown as " / "
	Lines        []string // Content lines, trimmed, blanks dropped
}

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	orangeTrailer string
}

// WithOrangeTrailer sets the symbol closing the orange box main paragraph.
// An empty trailer omits it.
func WithOrangeTrailer(trailer string) Option {
	return func(c *Compiler) {
		c.cfg.orangeTrailer = trailer
	}
}
