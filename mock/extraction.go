package mock

import (
	"context"

	"github.com/fwojciec/poster"
)

var (
	_ poster.ExtractionClient = (*ExtractionClient)(nil)
	_ poster.Analyzer         = (*Analyzer)(nil)
)

// ExtractionClient is a mock implementation of poster.ExtractionClient.
type ExtractionClient struct {
	ExtractFn func(ctx context.Context, url, content string) (string, error)
}

func (c *ExtractionClient) Extract(ctx context.Context, url, content string) (string, error) {
	return c.ExtractFn(ctx, url, content)
}

// Analyzer is a mock implementation of poster.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*poster.Record, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*poster.Record, error) {
	return a.AnalyzeFn(ctx, url)
}
