// Package slog provides logging decorators for pubdate interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pubdate"
)

// Ensure LoggingExtractor implements pubdate.DateExtractor.
var _ pubdate.DateExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DateExtractor with logging of each extraction
// run's outcome and duration.
type LoggingExtractor struct {
	next   pubdate.DateExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pubdate.DateExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(articleURL string, doc pubdate.Document) *pubdate.Result {
	begin := time.Now()
	result := e.next.Extract(articleURL, doc)
	e.logger.Info("date extraction",
		"url", articleURL,
		"updated", formatDate(result.Updated),
		"published", formatDate(result.Published),
		"duration", time.Since(begin),
	)
	return result
}

// formatDate renders an optional timestamp for logging.
func formatDate(t *time.Time) string {
	if t == nil {
		return "(absent)"
	}
	return t.Format(time.RFC3339)
}
