package boxes

import (
	"strings"

	"github.com/alnah/go-md2flyer/internal/content"
)

// tldrPrefix marks the header line rendered in bold.
const tldrPrefix = "TL;DR"

// factPrefix starts a new fact in the teal box.
const factPrefix = "-"

// FormatHeader renders the header banner.
// The title keeps its <br> markers and is not escaped. Lines starting with
// "TL;DR" get the bold header class.
func FormatHeader(s content.ParsedSection) Formatted {
	fragments := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		class := classHeaderLine
		if strings.HasPrefix(line, tldrPrefix) {
			class = classHeaderBold
		}
		fragments = append(fragments, paragraph(line, class))
	}
	return Formatted{Box: Header, Title: s.Title(), Fragments: fragments}
}

// FormatGold renders the gold box: one standard paragraph per line.
func FormatGold(s content.ParsedSection) Formatted {
	fragments := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		fragments = append(fragments, paragraph(line, classText))
	}
	return Formatted{Box: Gold, Title: Escape(s.Title()), Fragments: fragments}
}

// FormatDarkTeal renders the dark teal box with small paragraphs.
// The title is used as-is.
func FormatDarkTeal(s content.ParsedSection) Formatted {
	fragments := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		fragments = append(fragments, paragraph(line, classSmall))
	}
	return Formatted{Box: DarkTeal, Title: s.Title(), Fragments: fragments}
}

// FormatOrange renders the orange box.
// Every line but the last is joined into one paragraph closed by trailer;
// the last line becomes a separate bold paragraph. With a single line the
// main paragraph holds only the space-prefixed trailer.
func FormatOrange(s content.ParsedSection, trailer string) Formatted {
	f := Formatted{Box: Orange, Title: Escape(s.Title())}
	if len(s.Lines) == 0 {
		return f
	}

	last := len(s.Lines) - 1
	main := strings.Join(s.Lines[:last], " ")
	if trailer != "" {
		main += " " + trailer
	}

	if main != "" {
		f.Fragments = append(f.Fragments, paragraph(main, classText))
	}
	f.Fragments = append(f.Fragments, paragraph(s.Lines[last], classBold))
	return f
}

// FormatTeal renders the teal box as a list of facts.
// A line starting with "-" opens a new fact; any other line continues the
// current one, separated by a space. Lines before the first "-" form a fact
// of their own.
func FormatTeal(s content.ParsedSection) Formatted {
	f := Formatted{Box: Teal, Title: Escape(s.Title())}

	var current string
	for _, line := range s.Lines {
		switch {
		case strings.HasPrefix(line, factPrefix):
			if current != "" {
				f.Fragments = append(f.Fragments, paragraph(current, classSmall))
			}
			current = line
		case current == "":
			current = line
		default:
			current += " " + line
		}
	}
	if current != "" {
		f.Fragments = append(f.Fragments, paragraph(current, classSmall))
	}

	return f
}

// FormatAll formats sections in box order. It panics if sections does not
// hold exactly Count entries; callers validate the count first.
func FormatAll(sections []content.ParsedSection, opts Options) [Count]Formatted {
	if len(sections) != Count {
		panic("boxes: FormatAll requires exactly 5 sections")
	}

	var out [Count]Formatted
	for i, formatter := range Formatters(opts) {
		out[i] = formatter.Format(sections[i])
	}
	return out
}
