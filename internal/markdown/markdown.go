// Package markdown renders whole documents (notes, job descriptions,
// research packets) to HTML for bulk display. Structured field
// extraction does not live here; see internal/analysis.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts a markdown document to HTML. The empty string
// renders to the empty string so callers can distinguish "no document"
// from rendered content.
func Render(doc string) (string, error) {
	if doc == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(doc), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
