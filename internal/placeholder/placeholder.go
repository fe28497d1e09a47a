// Package placeholder verifies and substitutes the named tokens of a flyer
// HTML template.
//
// Substitution is a literal find-and-replace: no conditionals, loops, or
// escaping. Callers escape values before passing them in. Unlike a chain of
// strings.Replace calls, every token is replaced in a single pass, so text
// that happens to look like a token inside a substituted value is left alone.
package placeholder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for template verification.
var (
	ErrPlaceholderMissing   = errors.New("template placeholder missing")
	ErrPlaceholderDuplicate = errors.New("template placeholder repeated")
	ErrUnknownValue         = errors.New("no placeholder for value")
)

// Token delimiters.
const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Token returns the template token for a placeholder name, e.g. "{{GOLD_TITLE}}".
func Token(name string) string {
	return openDelim + name + closeDelim
}

// Names returns the ten placeholder names for the given box keys,
// "<KEY>_TITLE" then "<KEY>_CONTENT" for each key in order.
func Names(keys []string) []string {
	names := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		names = append(names, k+"_TITLE", k+"_CONTENT")
	}
	return names
}

// Verify checks that every name appears exactly once in the template.
// All problems are reported together, missing names first.
func Verify(template string, names []string) error {
	var missing, repeated []string
	for _, name := range names {
		switch n := strings.Count(template, Token(name)); {
		case n == 0:
			missing = append(missing, Token(name))
		case n > 1:
			repeated = append(repeated, fmt.Sprintf("%s (%d times)", Token(name), n))
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrPlaceholderMissing, strings.Join(missing, ", ")))
	}
	if len(repeated) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrPlaceholderDuplicate, strings.Join(repeated, ", ")))
	}
	return errors.Join(errs...)
}

// Substitute replaces each placeholder named in values with its value.
// The template is verified against the value names first; a verification
// failure returns the error and no document.
func Substitute(template string, values map[string]string) (string, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		if name == "" || strings.Contains(name, closeDelim) {
			return "", fmt.Errorf("%w: invalid name %q", ErrUnknownValue, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if err := Verify(template, names); err != nil {
		return "", err
	}

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, Token(name), values[name])
	}
	return strings.NewReplacer(pairs...).Replace(template), nil
}

// Residual returns the distinct "{{NAME}}" tokens still present in text,
// in order of first appearance.
func Residual(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, m := range matches(text) {
		if !seen[m.token] {
			seen[m.token] = true
			found = append(found, m.token)
		}
	}
	return found
}

// match is one token occurrence at a byte offset.
type match struct {
	token  string
	offset int
}

// matches returns every "{{NAME}}" token in text, repeats included.
func matches(text string) []match {
	var found []match

	for pos := 0; ; {
		start := strings.Index(text[pos:], openDelim)
		if start < 0 {
			break
		}
		start += pos
		end := strings.Index(text[start+len(openDelim):], closeDelim)
		if end < 0 {
			break
		}
		name := text[start+len(openDelim) : start+len(openDelim)+end]
		if isTokenName(name) {
			found = append(found, match{token: Token(name), offset: start})
			pos = start + len(openDelim) + end + len(closeDelim)
			continue
		}
		pos = start + 1
	}

	return found
}

// isTokenName reports whether s is an upper-case placeholder name.
func isTokenName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
