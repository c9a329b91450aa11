package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/poster"
)

// Ensure LoggingMetaScanner implements poster.MetaScanner at compile time.
var _ poster.MetaScanner = (*LoggingMetaScanner)(nil)

// LoggingMetaScanner wraps a MetaScanner, logging which metadata was found.
type LoggingMetaScanner struct {
	next   poster.MetaScanner
	logger *slog.Logger
}

// NewLoggingMetaScanner creates a new LoggingMetaScanner.
func NewLoggingMetaScanner(next poster.MetaScanner, logger *slog.Logger) *LoggingMetaScanner {
	return &LoggingMetaScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the result.
func (s *LoggingMetaScanner) Scan(html string) poster.PageMeta {
	begin := time.Now()
	meta := s.next.Scan(html)
	s.logger.Debug("meta scan",
		"title", meta.Title != "",
		"image", meta.Image != "",
		"price", meta.Price,
		"currency", meta.Currency,
		"duration", time.Since(begin),
	)
	return meta
}
