package poster

import (
	"context"
	"net/url"
	"strings"
)

// FetchResult is the response of a single fetch. A non-2xx status is not an
// error at this level; callers inspect OK to decide what to do next.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       string
}

// OK reports whether the response carried a 2xx status.
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	// Fetch requests the URL and returns the response body and status.
	// Transport failures are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ProxyURL builds a proxied request URL from a template. {url} is replaced
// with the target verbatim and {escaped_url} with the query-escaped target.
// A template without a placeholder gets the target appended.
func ProxyURL(template, target string) string {
	switch {
	case strings.Contains(template, "{escaped_url}"):
		return strings.ReplaceAll(template, "{escaped_url}", url.QueryEscape(target))
	case strings.Contains(template, "{url}"):
		return strings.ReplaceAll(template, "{url}", target)
	}
	return template + target
}
