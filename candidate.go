package pubdate

import (
	"sort"
	"time"
)

// Kind identifies the semantic axis a date candidate belongs to.
type Kind string

// Candidate kinds.
const (
	KindUpdated   Kind = "updated"
	KindPublished Kind = "published"
	KindUnknown   Kind = "unknown"
)

// Candidate is a single parsed date with a heuristic confidence score.
// Candidates are only ever constructed from strings that parsed
// successfully; failed parses never become candidates.
type Candidate struct {
	Time  time.Time
	Score int
	Kind  Kind
}

// SortCandidates orders candidates best-first: descending by score, and
// among equal scores an Updated candidate outranks a non-Updated one. The
// comparator is explicit rather than relying on any default ordering, and
// the sort is stable so complete ties keep harvest order.
func SortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Kind == KindUpdated && candidates[j].Kind != KindUpdated
	})
}

// Result holds the outcome of one extraction run. The two axes are
// independent and either may be absent.
type Result struct {
	Updated   *time.Time
	Published *time.Time
}

// Best returns the single best-available timestamp: the updated date if
// present, otherwise the published date, otherwise nil.
func (r *Result) Best() *time.Time {
	if r.Updated != nil {
		return r.Updated
	}
	return r.Published
}

// Select ranks an accumulated candidate list and picks the best candidate
// per kind. Unknown candidates participate in ordering but are never
// selected for either axis. The input slice is not modified.
func Select(candidates []Candidate) *Result {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	SortCandidates(sorted)

	result := &Result{}
	for _, c := range sorted {
		switch {
		case c.Kind == KindUpdated && result.Updated == nil:
			t := c.Time
			result.Updated = &t
		case c.Kind == KindPublished && result.Published == nil:
			t := c.Time
			result.Published = &t
		}
	}
	return result
}
