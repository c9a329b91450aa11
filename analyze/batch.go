package analyze

import (
	"context"

	"github.com/fwojciec/poster"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pipelines a Batch runs at once.
const DefaultConcurrency = 4

// Batch analyzes several URLs concurrently. A URL listed more than once is
// analyzed once, so no two extractions for the same page are in flight.
type Batch struct {
	Analyzer    poster.Analyzer
	Concurrency int
}

// Result is the outcome for one input URL.
type Result struct {
	URL    string
	Record *poster.Record
	Err    error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is called from
// a single goroutine.
type ProgressFunc func(event ProgressEvent)

// Run analyzes urls and returns one Result per input, in input order.
// Per-URL failures are reported in the Result, not as an error.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	unique := dedupe(urls)
	total := len(unique)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan Result, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range unique {
			g.Go(func() error {
				rec, err := b.Analyzer.Analyze(gctx, url)
				resultCh <- Result{URL: url, Record: rec, Err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed int
	byURL := make(map[string]Result, total)
	for res := range resultCh {
		byURL[res.URL] = res
		completed++
		if progress == nil {
			continue
		}
		if res.Err != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: res.URL, Error: res.Err})
		} else {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.URL})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	results := make([]Result, len(urls))
	for i, url := range urls {
		results[i] = byURL[url]
	}
	return results
}

// dedupe returns urls without repeats, keeping first occurrences in order.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
