package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/poster"
)

var (
	_ poster.Strategy  = (*LoggingStrategy)(nil)
	_ poster.Retriever = (*LoggingRetriever)(nil)
)

// LoggingStrategy wraps a Strategy, logging every attempt.
type LoggingStrategy struct {
	next   poster.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next poster.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Retrieve delegates to the wrapped strategy and logs the attempt.
func (s *LoggingStrategy) Retrieve(ctx context.Context, url string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("retrieve attempt",
			"strategy", s.next.Name(),
			"url", url,
			"success", err == nil,
			"rawLength", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Retrieve(ctx, url)
}

// LoggingRetriever wraps a Retriever, logging the outcome of the whole chain.
type LoggingRetriever struct {
	next   poster.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next poster.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever. An empty result is logged as
// a warning since extraction will run on the URL alone.
func (r *LoggingRetriever) Retrieve(ctx context.Context, url string) string {
	begin := time.Now()
	content := r.next.Retrieve(ctx, url)
	if content == "" {
		r.logger.Warn("retrieve exhausted",
			"url", url,
			"duration", time.Since(begin),
		)
		return content
	}
	r.logger.Info("retrieve",
		"url", url,
		"bytes", len(content),
		"duration", time.Since(begin),
	)
	return content
}
