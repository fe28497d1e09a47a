package content

import "strings"

// sectionSeparator delimits sections when alone on a line.
const sectionSeparator = "---"

// SplitSections splits content into trimmed, non-empty section texts.
// A line is a separator when it equals "---" after trimming surrounding
// whitespace. The number of sections is not validated here.
func SplitSections(text string) []string {
	text = normalizeNewlines(text)

	var sections []string
	var current []string

	flush := func() {
		section := strings.TrimSpace(strings.Join(current, "\n"))
		if section != "" {
			sections = append(sections, section)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == sectionSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return sections
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
