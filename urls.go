package pubdate

import (
	"regexp"
	"strings"
)

// Ensure StrictDateMatcher implements URLMatcher at compile time.
var _ URLMatcher = StrictDateMatcher{}

// strictDateRe matches a date embedded in a URL path: a four-digit year
// (1900-2099), an optional separator, a numeric month or a short month
// word, and an optional day. The leading non-capturing group stands in for
// a lookbehind: the date must sit at the start of the string or after a
// non-alphanumeric rune, so digits inside longer tokens don't match.
var strictDateRe = regexp.MustCompile(`(?:^|[^0-9A-Za-z])((?:19|20)\d{2}[./\-_]?(?:[0-3]?\d[./\-_]|[A-Za-z]{3,5}[./\-_])(?:[0-3]?\d)?)`)

// StrictDateMatcher extracts a strictly formatted date substring from a
// URL. URL-embedded dates are set once at publication and rarely altered,
// which is why the extractor treats them as its strongest signal.
type StrictDateMatcher struct{}

// Match returns the matched date substring with surrounding separators
// trimmed, or "" and false when the URL contains no recognizable date.
func (StrictDateMatcher) Match(url string) (string, bool) {
	sub := strictDateRe.FindStringSubmatch(url)
	if sub == nil {
		return "", false
	}
	match := strings.Trim(sub[1], "./-_")
	if match == "" {
		return "", false
	}
	return match, true
}
