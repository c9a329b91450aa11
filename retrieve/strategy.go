package retrieve

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/poster"
)

// Default proxy templates. See poster.ProxyURL for placeholder syntax.
const (
	DefaultRawProxy    = "https://api.allorigins.win/raw?url={escaped_url}"
	DefaultReaderProxy = "https://r.jina.ai/{url}"
)

// Compile-time interface verification.
var (
	_ poster.Strategy = (*RawHTMLStrategy)(nil)
	_ poster.Strategy = (*ReaderStrategy)(nil)
	_ poster.Strategy = (*LocalReaderStrategy)(nil)
)

// RawHTMLStrategy fetches the page's HTML through a proxy that preserves it,
// sanitizes it and truncates it to Budget characters.
type RawHTMLStrategy struct {
	Label     string
	Fetcher   poster.Fetcher
	Template  string
	Sanitizer poster.Sanitizer

	// Meta, if set, scans the unsanitized page and prepends a metadata
	// header. The header counts against Budget.
	Meta poster.MetaScanner

	// Budget defaults to RawBudget.
	Budget int
}

// Name implements poster.Strategy.
func (s *RawHTMLStrategy) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "raw-html"
}

// Retrieve implements poster.Strategy.
func (s *RawHTMLStrategy) Retrieve(ctx context.Context, url string) (string, error) {
	template := s.Template
	if template == "" {
		template = DefaultRawProxy
	}
	body, err := fetchOK(ctx, s.Fetcher, poster.ProxyURL(template, url))
	if err != nil {
		return "", err
	}

	var header string
	if s.Meta != nil {
		header = s.Meta.Scan(body).Header()
	}
	if s.Sanitizer != nil {
		body = s.Sanitizer.Sanitize(body)
	}

	budget := s.Budget
	if budget <= 0 {
		budget = RawBudget
	}
	if n := utf8.RuneCountInString(header); n >= budget {
		header = ""
	} else {
		budget -= n
	}
	return header + Truncate(body, budget), nil
}

// ReaderStrategy fetches a readability/markdown rendering of the page from
// a reader proxy. The representation is denser, so the budget is smaller.
type ReaderStrategy struct {
	Fetcher  poster.Fetcher
	Template string

	// Budget defaults to ReaderBudget.
	Budget int
}

// Name implements poster.Strategy.
func (s *ReaderStrategy) Name() string {
	return "reader"
}

// Retrieve implements poster.Strategy.
func (s *ReaderStrategy) Retrieve(ctx context.Context, url string) (string, error) {
	template := s.Template
	if template == "" {
		template = DefaultReaderProxy
	}
	body, err := fetchOK(ctx, s.Fetcher, poster.ProxyURL(template, url))
	if err != nil {
		return "", err
	}

	budget := s.Budget
	if budget <= 0 {
		budget = ReaderBudget
	}
	return Truncate(body, budget), nil
}

// LocalReaderStrategy fetches the page directly and produces the reader
// rendering locally: main-content extraction followed by markdown conversion.
// It stands in for the reader proxy where that service is unavailable.
type LocalReaderStrategy struct {
	Fetcher   poster.Fetcher
	Extractor poster.ContentExtractor
	Converter poster.Converter

	// Budget defaults to ReaderBudget.
	Budget int
}

// Name implements poster.Strategy.
func (s *LocalReaderStrategy) Name() string {
	return "local-reader"
}

// Retrieve implements poster.Strategy.
func (s *LocalReaderStrategy) Retrieve(ctx context.Context, url string) (string, error) {
	body, err := fetchOK(ctx, s.Fetcher, url)
	if err != nil {
		return "", err
	}

	result, err := s.Extractor.Extract(body, url)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", url, err)
	}

	md, err := s.Converter.Convert(result.ContentHTML)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", url, err)
	}

	// Readers drop the lead image from the article body more often than not.
	if result.Image != "" {
		md = "![](" + result.Image + ")\n\n" + md
	}
	if title := strings.TrimSpace(result.Title); title != "" {
		md = "# " + title + "\n\n" + md
	}

	budget := s.Budget
	if budget <= 0 {
		budget = ReaderBudget
	}
	return Truncate(md, budget), nil
}

// fetchOK fetches target and returns its body, treating a non-2xx status
// as a failure.
func fetchOK(ctx context.Context, f poster.Fetcher, target string) (string, error) {
	res, err := f.Fetch(ctx, target)
	if err != nil {
		return "", err
	}
	if !res.OK() {
		return "", fmt.Errorf("HTTP %d for %s", res.StatusCode, target)
	}
	return res.Body, nil
}
