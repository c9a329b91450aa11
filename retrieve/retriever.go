// Package retrieve obtains page content for extraction through an ordered
// chain of strategies: a raw-HTML proxy first, then a reader proxy that
// returns markdown. The raw page is preferred because sidebars, where price
// and metadata often live, are stripped by readability-style extraction.
package retrieve

import (
	"context"
	"fmt"

	"github.com/fwojciec/poster"
)

// Content budgets in characters.
const (
	RawBudget    = 150_000
	ReaderBudget = 50_000
)

// Ensure Retriever implements poster.Retriever at compile time.
var _ poster.Retriever = (*Retriever)(nil)

// Retriever tries its strategies strictly in order and returns the content
// of the first one that succeeds. It never fails.
type Retriever struct {
	strategies []poster.Strategy
}

// NewRetriever creates a Retriever over the given strategies, highest
// priority first.
func NewRetriever(strategies ...poster.Strategy) *Retriever {
	return &Retriever{strategies: strategies}
}

// Retrieve returns the first successful strategy's content, or "" when every
// strategy failed.
func (r *Retriever) Retrieve(ctx context.Context, url string) string {
	for _, s := range r.strategies {
		content, err := attempt(ctx, s, url)
		if err == nil {
			return content
		}
	}
	return ""
}

// attempt runs one strategy, converting a panic into an error so a broken
// strategy degrades like any other failure.
func attempt(ctx context.Context, s poster.Strategy, url string) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Retrieve(ctx, url)
}

// Truncate returns at most n characters of s, cutting on a rune boundary.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
