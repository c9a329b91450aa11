// Package analyze runs the page-to-record pipeline: retrieve the page,
// ask the extraction model for a record, validate it, and optionally keep
// it in the history store.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/poster"
)

// Ensure Pipeline implements poster.Analyzer at compile time.
var _ poster.Analyzer = (*Pipeline)(nil)

// Pipeline analyzes one URL at a time. Retriever and Extractor are required;
// the rest are optional.
type Pipeline struct {
	Retriever poster.Retriever
	Extractor poster.ExtractionClient

	// History, if set, receives every successful analysis.
	History poster.AnalysisService

	// TokenCounter, if set, records how many tokens the content cost.
	TokenCounter poster.TokenCounter

	Logger *slog.Logger
}

// Analyze retrieves the page at rawURL and extracts a validated Record.
// Retrieval never fails the pipeline; extraction and validation errors do.
func (p *Pipeline) Analyze(ctx context.Context, rawURL string) (*poster.Record, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	content := p.Retriever.Retrieve(ctx, rawURL)

	raw, err := p.Extractor.Extract(ctx, rawURL, content)
	if err != nil {
		return nil, err
	}

	rec, err := poster.ParseRecord(raw)
	if err != nil {
		return nil, err
	}

	if p.History != nil {
		p.save(ctx, rawURL, content, rec)
	}

	return rec, nil
}

// save stores the analysis. A failure is logged and otherwise ignored since
// the record itself is already valid.
func (p *Pipeline) save(ctx context.Context, rawURL, content string, rec *poster.Record) {
	a := &poster.Analysis{
		URL:           rawURL,
		Record:        rec,
		ContentHash:   computeHash(content),
		ContentLength: utf8.RuneCountInString(content),
	}
	if p.TokenCounter != nil {
		if tokens, err := p.TokenCounter.CountTokens(ctx, content); err == nil {
			a.ContentTokens = tokens
		} else {
			p.logger().Warn("count tokens", "url", rawURL, "err", err)
		}
	}
	if err := p.History.CreateAnalysis(ctx, a); err != nil {
		p.logger().Error("save analysis", "url", rawURL, "err", err)
		return
	}
	p.logger().Debug("saved analysis", "id", a.ID, "url", rawURL)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// ValidateURL checks that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return poster.Errorf(poster.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return poster.Errorf(poster.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return poster.Errorf(poster.EINVALID, "URL must use http or https: %q", rawURL)
	}
	if u.Host == "" {
		return poster.Errorf(poster.EINVALID, "URL has no host: %q", rawURL)
	}
	return nil
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
