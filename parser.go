package pubdate

import "time"

// DateParser converts a free-form date string into a timestamp.
type DateParser interface {
	// Parse returns the parsed time and true, or the zero time and false
	// when the input is not a recognizable date. It never panics,
	// whatever the input.
	Parse(s string) (time.Time, bool)
}

// URLMatcher extracts a date-looking substring from a URL.
type URLMatcher interface {
	// Match returns the matched date substring and true, or "" and false
	// when the URL contains no recognizable date.
	Match(url string) (string, bool)
}

// DateExtractor determines the published and updated dates for an article.
type DateExtractor interface {
	// Extract harvests date evidence from the URL and document and picks
	// the best candidate per axis. It is best-effort and never fails:
	// absent evidence yields absent results.
	Extract(articleURL string, doc Document) *Result
}
