package mock

import (
	"context"

	"github.com/fwojciec/poster"
)

var _ poster.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of poster.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*poster.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*poster.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
