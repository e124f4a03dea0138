// Package render turns metrics bundles and analysis results into HTML
// fragment strings. Every function here is pure: fragments depend only
// on their inputs, and all user-supplied text is escaped exactly once
// on its way into markup.
package render

import "strings"

// htmlEscaper replaces ampersand before the other entities so that
// already-produced entities are never double-escaped. A single
// Replacer pass guarantees replacements are not rescanned.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-significant characters. It is
// idempotent on text that contains none of them.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
