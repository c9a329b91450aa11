package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/poster"
)

// Ensure LoggingAnalyzer implements poster.Analyzer at compile time.
var _ poster.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   poster.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next poster.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (rec *poster.Record, err error) {
	defer func(begin time.Time) {
		var name string
		if rec != nil {
			name = rec.Name
		}
		a.logger.Info("analyze",
			"url", url,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, url)
}
