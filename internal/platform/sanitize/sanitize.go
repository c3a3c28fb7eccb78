// Package sanitize cleans user supplied text before it is validated or
// stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// bluemonday policies are safe for concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripXSS removes all markup, including script and style bodies, and
// returns plain text.
func StripXSS(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// Escape HTML-escapes <, >, &, ' and ".
func Escape(s string) string {
	return html.EscapeString(s)
}

// Text runs the full chain: trim, strip markup, escape.
func Text(s string) string {
	return Escape(strings.TrimSpace(StripXSS(Trim(s))))
}

// TextPtr is Text for optional fields; nil stays nil.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Text(*s)
	return &out
}

// TrimPtr trims an optional field in place.
func TrimPtr(s *string) {
	if s == nil {
		return
	}
	*s = Trim(*s)
}

// NilIfEmpty treats an empty optional field as absent.
func NilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
