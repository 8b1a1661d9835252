package mock

import (
	"time"

	"github.com/fwojciec/pubdate"
)

var _ pubdate.DateParser = (*DateParser)(nil)

// DateParser is a mock implementation of pubdate.DateParser.
type DateParser struct {
	ParseFn func(s string) (time.Time, bool)
}

func (p *DateParser) Parse(s string) (time.Time, bool) {
	return p.ParseFn(s)
}

var _ pubdate.URLMatcher = (*URLMatcher)(nil)

// URLMatcher is a mock implementation of pubdate.URLMatcher.
type URLMatcher struct {
	MatchFn func(url string) (string, bool)
}

func (m *URLMatcher) Match(url string) (string, bool) {
	return m.MatchFn(url)
}
