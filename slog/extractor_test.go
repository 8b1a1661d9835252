package slog_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/pubdate"
	"github.com/fwojciec/pubdate/mock"
	pubslog "github.com/fwojciec/pubdate/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs found dates with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		expected := &pubdate.Result{Updated: &updated}
		inner := &mock.DateExtractor{
			ExtractFn: func(articleURL string, doc pubdate.Document) *pubdate.Result {
				return expected
			},
		}

		extractor := pubslog.NewLoggingExtractor(inner, logger)
		result := extractor.Extract("https://example.com/article", &mock.Document{})

		assert.Equal(t, expected, result)
		output := buf.String()
		assert.Contains(t, output, "date extraction")
		assert.Contains(t, output, "url=https://example.com/article")
		assert.Contains(t, output, "updated=2024-01-02T00:00:00Z")
		assert.Contains(t, output, "published=(absent)")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs absent dates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DateExtractor{
			ExtractFn: func(articleURL string, doc pubdate.Document) *pubdate.Result {
				return &pubdate.Result{}
			},
		}

		extractor := pubslog.NewLoggingExtractor(inner, logger)
		extractor.Extract("https://example.com/article", &mock.Document{})

		output := buf.String()
		assert.Contains(t, output, "updated=(absent)")
		assert.Contains(t, output, "published=(absent)")
	})
}
