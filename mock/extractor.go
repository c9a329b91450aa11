package mock

import "github.com/fwojciec/poster"

var _ poster.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of poster.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html, pageURL string) (*poster.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html, pageURL string) (*poster.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
