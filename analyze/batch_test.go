package analyze_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/poster"
	"github.com/fwojciec/poster/analyze"
	"github.com/fwojciec/poster/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns results in input order", func(t *testing.T) {
		t.Parallel()

		b := &analyze.Batch{
			Analyzer: &mock.Analyzer{AnalyzeFn: func(_ context.Context, url string) (*poster.Record, error) {
				return &poster.Record{Name: url}, nil
			}},
			Concurrency: 2,
		}
		urls := []string{"https://a.test", "https://b.test", "https://c.test"}

		results := b.Run(context.Background(), urls, nil)

		require.Len(t, results, 3)
		for i, u := range urls {
			assert.Equal(t, u, results[i].URL)
			require.NoError(t, results[i].Err)
			assert.Equal(t, u, results[i].Record.Name)
		}
	})

	t.Run("analyzes duplicate URLs once", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		calls := map[string]int{}
		b := &analyze.Batch{
			Analyzer: &mock.Analyzer{AnalyzeFn: func(_ context.Context, url string) (*poster.Record, error) {
				mu.Lock()
				calls[url]++
				mu.Unlock()
				return &poster.Record{Name: url}, nil
			}},
		}

		results := b.Run(context.Background(), []string{"https://a.test", "https://b.test", "https://a.test"}, nil)

		require.Len(t, results, 3)
		assert.Equal(t, 1, calls["https://a.test"])
		assert.Equal(t, 1, calls["https://b.test"])
		assert.Same(t, results[0].Record, results[2].Record)
	})

	t.Run("keeps per-URL failures", func(t *testing.T) {
		t.Parallel()

		b := &analyze.Batch{
			Analyzer: &mock.Analyzer{AnalyzeFn: func(_ context.Context, url string) (*poster.Record, error) {
				if url == "https://bad.test" {
					return nil, poster.Errorf(poster.ESCHEMA, "missing name")
				}
				return &poster.Record{Name: url}, nil
			}},
		}

		results := b.Run(context.Background(), []string{"https://bad.test", "https://ok.test"}, nil)

		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(results[0].Err))
		assert.Nil(t, results[0].Record)
		assert.NoError(t, results[1].Err)
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		release := make(chan struct{})
		b := &analyze.Batch{
			Analyzer: &mock.Analyzer{AnalyzeFn: func(_ context.Context, url string) (*poster.Record, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-release
				inFlight.Add(-1)
				return &poster.Record{}, nil
			}},
			Concurrency: 2,
		}

		done := make(chan []analyze.Result)
		go func() {
			done <- b.Run(context.Background(), []string{"https://1.test", "https://2.test", "https://3.test", "https://4.test"}, nil)
		}()
		close(release)
		results := <-done

		assert.Len(t, results, 4)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		b := &analyze.Batch{
			Analyzer: &mock.Analyzer{AnalyzeFn: func(_ context.Context, url string) (*poster.Record, error) {
				if url == "https://bad.test" {
					return nil, poster.Errorf(poster.ETRANSPORT, "down")
				}
				return &poster.Record{}, nil
			}},
		}

		var events []analyze.ProgressEvent
		b.Run(context.Background(), []string{"https://ok.test", "https://bad.test", "https://ok.test"}, func(e analyze.ProgressEvent) {
			events = append(events, e)
		})

		require.Len(t, events, 4)
		assert.Equal(t, analyze.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, analyze.ProgressFinished, events[3].Type)

		var failed, completed int
		for _, e := range events[1:3] {
			switch e.Type {
			case analyze.ProgressFailed:
				failed++
				assert.Equal(t, "https://bad.test", e.URL)
				assert.Error(t, e.Error)
			case analyze.ProgressCompleted:
				completed++
			}
		}
		assert.Equal(t, 1, failed)
		assert.Equal(t, 1, completed)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		b := &analyze.Batch{Analyzer: &mock.Analyzer{}}

		results := b.Run(context.Background(), nil, nil)

		assert.Empty(t, results)
	})
}
