package placeholder

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Occurrence locates one placeholder token inside a template.
type Occurrence struct {
	Token     string // e.g. "{{GOLD_TITLE}}"
	Element   string // Enclosing element name ("" at document level)
	Attribute string // Attribute name when the token sits in an attribute value
	Line      int    // 1-based line of the token
}

// String formats the occurrence for terminal output.
func (o Occurrence) String() string {
	where := "<" + o.Element + ">"
	if o.Element == "" {
		where = "document"
	}
	if o.Attribute != "" {
		where += " @" + o.Attribute
	}
	return fmt.Sprintf("line %d: %s in %s", o.Line, o.Token, where)
}

// Inspect tokenizes the template as HTML and reports every placeholder
// token with its enclosing element, in document order.
func Inspect(r io.Reader) ([]Occurrence, error) {
	z := html.NewTokenizer(r)
	var (
		found []Occurrence
		stack []string
		line  = 1
	)

	current := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return found, nil
			}
			return nil, fmt.Errorf("tokenizing template: %w", z.Err())
		}

		raw := string(z.Raw())
		tok := z.Token()

		switch tt {
		case html.TextToken, html.CommentToken:
			for _, m := range matches(raw) {
				found = append(found, Occurrence{
					Token:   m.token,
					Element: current(),
					Line:    line + strings.Count(raw[:m.offset], "\n"),
				})
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			for _, attr := range tok.Attr {
				for _, m := range matches(attr.Val) {
					found = append(found, Occurrence{
						Token:     m.token,
						Element:   tok.Data,
						Attribute: attr.Key,
						Line:      line,
					})
				}
			}
			if tt == html.StartTagToken && !isVoidElement(tok.Data) {
				stack = append(stack, tok.Data)
			}
		case html.EndTagToken:
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == tok.Data {
					stack = stack[:i]
					break
				}
			}
		}

		line += strings.Count(raw, "\n")
	}
}

// voidElements never have an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func isVoidElement(name string) bool {
	return voidElements[name]
}
