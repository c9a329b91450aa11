// Package readability implements poster.ContentExtractor on go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/poster"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements poster.ContentExtractor at compile time.
var _ poster.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Relative links and
// image sources are resolved against pageURL when it parses.
func (e *Extractor) Extract(rawHTML, pageURL string) (*poster.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, poster.Errorf(poster.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &poster.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Image:       article.Image,
	}, nil
}
