package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/poster"
)

// Ensure LoggingExtractor implements poster.ExtractionClient at compile time.
var _ poster.ExtractionClient = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ExtractionClient with logging.
type LoggingExtractor struct {
	next   poster.ExtractionClient
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next poster.ExtractionClient, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped client and logs the call.
func (e *LoggingExtractor) Extract(ctx context.Context, url, content string) (raw string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"url", url,
			"contentBytes", len(content),
			"responseBytes", len(raw),
			"duration", time.Since(begin),
			"code", poster.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url, content)
}
