package main

import (
	"fmt"

	"github.com/fwojciec/poster"
	"github.com/fwojciec/poster/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	batch := &analyze.Batch{
		Analyzer:    deps.Analyzer,
		Concurrency: c.Concurrency,
	}

	var progress analyze.ProgressFunc
	if len(c.URLs) > 1 {
		progress = func(e analyze.ProgressEvent) {
			switch e.Type {
			case analyze.ProgressCompleted:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
			case analyze.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.URL, poster.ErrorMessage(e.Error))
			}
		}
	}

	results := batch.Run(deps.Ctx, c.URLs, progress)

	var failed int
	var lastErr error
	for _, res := range results {
		view := newPosterView(res.URL, res.Record, deps.Images)
		if res.Err != nil {
			failed++
			lastErr = res.Err
			view = newErrorView(res.URL, res.Err)
		}
		if err := writeJSON(deps.Stdout, view); err != nil {
			return err
		}
	}

	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return lastErr
	default:
		return fmt.Errorf("%d of %d analyses failed", failed, len(results))
	}
}
