// Package htmlsanitize cleans text that ends up in dashboard markup.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MaxNoticeRunes caps the length of a failure notice.
const MaxNoticeRunes = 200

var strict = bluemonday.StrictPolicy()

// Text strips all markup from s and collapses whitespace. The result is
// HTML-escaped.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(strict.Sanitize(s)), " ")
}

// Notice turns an error message into a short, markup-free fragment safe to
// place in a page.
func Notice(msg string) template.HTML {
	r := []rune(msg)
	if len(r) > MaxNoticeRunes {
		msg = string(r[:MaxNoticeRunes]) + "…"
	}
	return template.HTML(Text(msg))
}
