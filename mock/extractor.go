package mock

import "github.com/fwojciec/pubdate"

var _ pubdate.DateExtractor = (*DateExtractor)(nil)

// DateExtractor is a mock implementation of pubdate.DateExtractor.
type DateExtractor struct {
	ExtractFn func(articleURL string, doc pubdate.Document) *pubdate.Result
}

func (e *DateExtractor) Extract(articleURL string, doc pubdate.Document) *pubdate.Result {
	return e.ExtractFn(articleURL, doc)
}
