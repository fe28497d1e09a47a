package content

import (
	"regexp"
	"strings"
)

// titleSeparatorPattern matches a title/content separator line after trimming.
var titleSeparatorPattern = regexp.MustCompile(`^=+$`)

// ParseSection parses one section into title lines and content lines.
//
// Non-empty lines before the first "=" separator form the title, non-empty
// lines after it form the content. Separator lines are consumed. When the
// section has no separator, its first non-empty line is the title and the
// remaining non-empty lines are the content.
func ParseSection(text string) ParsedSection {
	var titleLines, lines []string
	foundSeparator := false

	for _, raw := range strings.Split(normalizeNewlines(text), "\n") {
		line := strings.TrimSpace(raw)
		if titleSeparatorPattern.MatchString(line) {
			foundSeparator = true
			continue
		}
		if line == "" {
			continue
		}
		if foundSeparator {
			lines = append(lines, line)
		} else {
			titleLines = append(titleLines, line)
		}
	}

	if !foundSeparator && len(titleLines) > 0 {
		lines = titleLines[1:]
		titleLines = titleLines[:1:1]
	}

	return ParsedSection{TitleLines: titleLines, Lines: lines}
}

// ParseAll splits text into sections and parses each one in order.
func ParseAll(text string) []ParsedSection {
	sections := SplitSections(text)
	parsed := make([]ParsedSection, 0, len(sections))
	for _, s := range sections {
		parsed = append(parsed, ParseSection(s))
	}
	return parsed
}
