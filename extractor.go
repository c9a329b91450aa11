package poster

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Image is the page's lead image as an absolute URL, if one was found.
	Image string
}

// ContentExtractor extracts main content from HTML pages, removing boilerplate.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content. pageURL is
	// used to resolve relative links and image sources; it may be empty.
	Extract(html, pageURL string) (*ExtractResult, error)
}
