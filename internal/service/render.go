package service

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips dangerous markup from rendered post bodies. UGCPolicy
// allows the safe tag set for user-generated content while removing scripts
// and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderPostBody converts a post's markdown text to sanitized HTML. On a
// rendering failure the raw text is returned escaped through the sanitizer
// so the detail page never breaks on malformed input.
func RenderPostBody(text string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return htmlSanitizer.Sanitize(text)
	}
	return htmlSanitizer.Sanitize(buf.String())
}
