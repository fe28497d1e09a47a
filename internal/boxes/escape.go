package boxes

import (
	"fmt"
	"strings"
)

// CSS classes applied to fragments.
const (
	classHeaderLine = "header-text-line"
	classHeaderBold = "header-text-line header-bold"
	classText       = "box-text"
	classSmall      = "box-text box-text-small"
	classBold       = "box-text box-text-bold"
)

// fragmentIndent aligns fragments with the template's box markup.
const fragmentIndent = "                "

// htmlEscaper escapes text and attribute-sensitive characters.
// Quotes use the same entities as Python's html.escape so regenerated pages
// stay byte-identical to previously published ones.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape escapes s for embedding in HTML text.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// paragraph renders one escaped, indented <p> fragment.
func paragraph(text, class string) string {
	return fmt.Sprintf(`%s<p class="%s">%s</p>`, fragmentIndent, class, Escape(text))
}
