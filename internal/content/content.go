// Package content splits a flyer content file into sections and parses each
// section into a title and its content lines.
//
// A content file looks like:
//
//	Big Title
//	Second Title Line
//	=================
//	TL;DR: first line
//	another line
//
//	---
//
//	Gold Box Title
//	==============
//	...
//
// Sections are separated by lines containing only "---". Inside a section,
// a line made only of "=" characters separates the title from the content.
package content

import "strings"

// Line-break markers used to render multi-line titles.
const (
	// TitleBreak joins title lines for HTML output.
	TitleBreak = "<br>"

	// DisplayBreak joins title lines for terminal output.
	DisplayBreak = " / "
)

// ParsedSection is the title and content lines of one section.
// Values are created once per run and never modified.
type ParsedSection struct {
	TitleLines []string // Non-empty trimmed lines before the separator
	Lines      []string // Non-empty trimmed lines after the separator
}

// Title returns the title lines joined with TitleBreak.
func (s ParsedSection) Title() string {
	return strings.Join(s.TitleLines, TitleBreak)
}

// DisplayTitle returns the title lines joined with DisplayBreak.
func (s ParsedSection) DisplayTitle() string {
	return strings.Join(s.TitleLines, DisplayBreak)
}
