package mock

import (
	"context"

	"github.com/fwojciec/poster"
)

var (
	_ poster.Strategy  = (*Strategy)(nil)
	_ poster.Retriever = (*Retriever)(nil)
	_ poster.Sanitizer = (*Sanitizer)(nil)
)

// Strategy is a mock implementation of poster.Strategy.
type Strategy struct {
	NameFn     func() string
	RetrieveFn func(ctx context.Context, url string) (string, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Retrieve(ctx context.Context, url string) (string, error) {
	return s.RetrieveFn(ctx, url)
}

// Retriever is a mock implementation of poster.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, url string) string
}

func (r *Retriever) Retrieve(ctx context.Context, url string) string {
	return r.RetrieveFn(ctx, url)
}

// Sanitizer is a mock implementation of poster.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
