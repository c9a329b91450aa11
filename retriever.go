package poster

import "context"

// Strategy is one way of obtaining a page's textual content.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Retrieve returns bounded page content or an error when this strategy
	// could not produce any.
	Retrieve(ctx context.Context, url string) (string, error)
}

// Retriever obtains page content for extraction.
type Retriever interface {
	// Retrieve returns the content of the page at url. It never fails:
	// when no content can be obtained it returns the empty string so
	// extraction can still proceed with degraded context.
	Retrieve(ctx context.Context, url string) string
}

// Sanitizer strips non-content markup from raw HTML.
type Sanitizer interface {
	Sanitize(html string) string
}
