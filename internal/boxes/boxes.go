// Package boxes formats parsed sections into HTML fragments, one policy per
// flyer box.
package boxes

import (
	"strings"

	"github.com/alnah/go-md2flyer/internal/content"
)

// Box identifies a display region of the flyer by its section position.
type Box int

// Boxes in section order (top-to-bottom, left-to-right).
const (
	Header Box = iota
	Gold
	DarkTeal
	Orange
	Teal
)

// Count is the number of sections a content file must contain.
const Count = 5

// All lists every box in section order.
var All = [Count]Box{Header, Gold, DarkTeal, Orange, Teal}

// String returns the human-readable box name used in summaries.
func (b Box) String() string {
	switch b {
	case Header:
		return "Header"
	case Gold:
		return "Gold"
	case DarkTeal:
		return "Dark Teal"
	case Orange:
		return "Orange"
	case Teal:
		return "Teal"
	default:
		return "Unknown"
	}
}

// Key returns the placeholder key prefix for the box (e.g. "DARK_TEAL").
func (b Box) Key() string {
	return strings.ToUpper(strings.ReplaceAll(b.String(), " ", "_"))
}

// Formatted is the rendered title and content fragments of one box.
type Formatted struct {
	Box       Box
	Title     string
	Fragments []string
}

// Content joins the fragments with newlines.
func (f Formatted) Content() string {
	return strings.Join(f.Fragments, "\n")
}

// Formatter renders a parsed section into a box.
type Formatter interface {
	Format(section content.ParsedSection) Formatted
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(section content.ParsedSection) Formatted

// Format calls f(section).
func (f FormatterFunc) Format(section content.ParsedSection) Formatted {
	return f(section)
}

// Options tunes formatter output.
type Options struct {
	// OrangeTrailer is appended to the orange box main paragraph.
	OrangeTrailer string
}

// DefaultOrangeTrailer is the decorative symbol closing the orange box text.
const DefaultOrangeTrailer = "🤎"

// DefaultOptions returns the standard formatter options.
func DefaultOptions() Options {
	return Options{OrangeTrailer: DefaultOrangeTrailer}
}

// Formatters returns the formatter for each box in section order.
func Formatters(opts Options) [Count]Formatter {
	return [Count]Formatter{
		FormatterFunc(FormatHeader),
		FormatterFunc(FormatGold),
		FormatterFunc(FormatDarkTeal),
		FormatterFunc(func(s content.ParsedSection) Formatted {
			return FormatOrange(s, opts.OrangeTrailer)
		}),
		FormatterFunc(FormatTeal),
	}
}
