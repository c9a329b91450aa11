// Package xhtml provides a poster.Sanitizer built on the golang.org/x/net/html
// tokenizer.
package xhtml

import (
	"strings"

	"github.com/fwojciec/poster"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements poster.Sanitizer at compile time.
var _ poster.Sanitizer = (*Sanitizer)(nil)

// removed lists the elements dropped together with their content.
var removed = map[string]bool{
	"script": true,
	"style":  true,
	"svg":    true,
}

// rawText lists removed elements whose content the tokenizer reads as raw
// text even after a self-closing start tag.
var rawText = map[string]bool{
	"script": true,
	"style":  true,
}

// Sanitizer removes script, style and svg elements and HTML comments.
// All other tokens are copied from the input unchanged.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize returns src without non-content markup.
func (s *Sanitizer) Sanitize(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var sb strings.Builder
	sb.Grow(len(src))

	// skip is the element currently being dropped; depth counts nested
	// elements of the same name so <svg><svg></svg></svg> closes correctly.
	var skip string
	var depth int

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return sb.String()
		}

		// TagName lower-cases the token buffer in place, so copy first.
		raw := string(z.Raw())

		switch tt {
		case html.CommentToken:
			continue
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skip != "" {
				if tag == skip {
					depth++
				}
				continue
			}
			if removed[tag] {
				skip, depth = tag, 1
				continue
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skip != "" {
				if string(name) == skip {
					depth--
					if depth == 0 {
						skip = ""
					}
				}
				continue
			}
			if removed[string(name)] {
				continue
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skip != "" {
				continue
			}
			// <script/> and <style/> still open raw text, so their content
			// runs to the matching end tag.
			if rawText[tag] {
				skip, depth = tag, 1
				continue
			}
			if removed[tag] {
				continue
			}
		default:
			if skip != "" {
				continue
			}
		}

		sb.WriteString(raw)
	}
}
