// Package dateparse adapts github.com/araddon/dateparse to the pubdate
// DateParser interface.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/pubdate"
)

// Ensure Parser implements pubdate.DateParser at compile time.
var _ pubdate.DateParser = (*Parser)(nil)

// Parser parses free-form date strings in the many formats seen in article
// metadata.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the parsed time and true, or the zero time and false when
// the input is not a recognizable date. dateparse panics on some malformed
// inputs, so the recover guard is part of the never-fails contract.
func (p *Parser) Parse(s string) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()

	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
