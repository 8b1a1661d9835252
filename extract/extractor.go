// Package extract implements the date extraction pipeline. Four harvesting
// stages (URL, structured data, <time> elements, meta/attribute tables)
// append candidates to one shared list, which a final scoring pass ranks
// and resolves into per-axis results.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/pubdate"
)

// Ensure Extractor implements pubdate.DateExtractor at compile time.
var _ pubdate.DateExtractor = (*Extractor)(nil)

// Fixed confidence scores per harvesting stage. URL dates rank highest
// because they are set once at publication and rarely altered; flat
// structured data sits one point below graph form, reflecting its slightly
// higher ambiguity.
const (
	scoreURL           = 10
	scoreGraph         = 10
	scoreFlat          = 9
	scoreTimeUpdated   = 8
	scoreTimePublished = 7
	scoreTimeUnknown   = 5
	scoreMetaBase      = 6
)

// maxAgeDays is the age beyond which a meta-harvested date is down-weighted
// as likely boilerplate rather than real publication evidence.
const maxAgeDays = 25 * 365

var (
	updatedTextRe   = regexp.MustCompile(`(?i)updated|modified`)
	publishedTextRe = regexp.MustCompile(`(?i)published|\bon:`)
)

// Extractor harvests date evidence from an article and selects the best
// updated and published timestamps. It holds no per-document state, so a
// single Extractor may serve concurrent calls on different documents.
type Extractor struct {
	Parser  pubdate.DateParser
	Matcher pubdate.URLMatcher
	Config  pubdate.Config

	// Now supplies the reference time for the future-date and old-date
	// score adjustments. Nil means time.Now.
	Now func() time.Time
}

// NewExtractor creates an Extractor with the given collaborators and
// lookup tables.
func NewExtractor(parser pubdate.DateParser, matcher pubdate.URLMatcher, cfg pubdate.Config) *Extractor {
	return &Extractor{Parser: parser, Matcher: matcher, Config: cfg}
}

// Extract harvests date evidence from the URL and document and picks the
// best candidate per axis. It is best-effort and never fails: malformed
// input anywhere contributes no candidate and absent evidence yields
// absent results.
func (e *Extractor) Extract(articleURL string, doc pubdate.Document) *pubdate.Result {
	return pubdate.Select(e.Harvest(articleURL, doc))
}

// Harvest runs all harvesting stages and returns the accumulated candidate
// list in harvest order. Duplicate timestamps found via independent
// heuristics are intentionally kept; repetition across signals is itself
// evidence, and the higher-scored copy wins at selection.
func (e *Extractor) Harvest(articleURL string, doc pubdate.Document) []pubdate.Candidate {
	var candidates []pubdate.Candidate
	candidates = e.harvestURL(candidates, articleURL)
	candidates = e.harvestStructuredData(candidates, doc)
	candidates = e.harvestTimeElements(candidates, doc)
	candidates = e.harvestMeta(candidates, doc)
	return candidates
}

// harvestURL emits one Published candidate when the URL carries a strict
// date pattern that parses.
func (e *Extractor) harvestURL(candidates []pubdate.Candidate, articleURL string) []pubdate.Candidate {
	match, ok := e.Matcher.Match(articleURL)
	if !ok {
		return candidates
	}
	t, ok := e.Parser.Parse(match)
	if !ok {
		return candidates
	}
	return append(candidates, pubdate.Candidate{Time: t, Score: scoreURL, Kind: pubdate.KindPublished})
}

// harvestStructuredData scans embedded structured-data objects. Graph
// entries score higher than flat objects; entries that aren't mappings and
// values that aren't parseable date strings are skipped.
func (e *Extractor) harvestStructuredData(candidates []pubdate.Candidate, doc pubdate.Document) []pubdate.Candidate {
	for _, obj := range doc.StructuredData() {
		if raw, ok := obj["@graph"]; ok {
			graph, _ := raw.([]any)
			for _, entry := range graph {
				item, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				candidates = e.appendStructured(candidates, item, "dateModified", pubdate.KindUpdated, scoreGraph)
				candidates = e.appendStructured(candidates, item, "datePublished", pubdate.KindPublished, scoreGraph)
			}
			continue
		}
		candidates = e.appendStructured(candidates, obj, "dateModified", pubdate.KindUpdated, scoreFlat)
		candidates = e.appendStructured(candidates, obj, "datePublished", pubdate.KindPublished, scoreFlat)
		candidates = e.appendStructured(candidates, obj, "dateCreated", pubdate.KindPublished, scoreFlat)
	}
	return candidates
}

func (e *Extractor) appendStructured(candidates []pubdate.Candidate, obj map[string]any, key string, kind pubdate.Kind, score int) []pubdate.Candidate {
	raw, ok := obj[key].(string)
	if !ok {
		return candidates
	}
	t, ok := e.Parser.Parse(raw)
	if !ok {
		return candidates
	}
	return append(candidates, pubdate.Candidate{Time: t, Score: score, Kind: kind})
}

// harvestTimeElements scans <time> elements carrying a machine-readable
// datetime attribute and classifies each by its visible text.
func (e *Extractor) harvestTimeElements(candidates []pubdate.Candidate, doc pubdate.Document) []pubdate.Candidate {
	for _, el := range doc.Elements("time") {
		raw, ok := el.Attr("datetime")
		if !ok || raw == "" {
			continue
		}
		t, ok := e.Parser.Parse(raw)
		if !ok {
			continue
		}
		kind, score := classifyTimeText(el.Text())
		candidates = append(candidates, pubdate.Candidate{Time: t, Score: score, Kind: kind})
	}
	return candidates
}

// classifyTimeText classifies a <time> element by substring-matching its
// visible text. The matching is locale- and phrasing-fragile; it lives in
// one place so it can be replaced independently.
func classifyTimeText(text string) (pubdate.Kind, int) {
	switch {
	case updatedTextRe.MatchString(text):
		return pubdate.KindUpdated, scoreTimeUpdated
	case publishedTextRe.MatchString(text):
		return pubdate.KindPublished, scoreTimePublished
	default:
		return pubdate.KindUnknown, scoreTimeUnknown
	}
}

// metaCandidate pairs a matched element with the attribute holding its
// date string and the kind its lookup table implies.
type metaCandidate struct {
	el          pubdate.Element
	contentAttr string
	kind        pubdate.Kind
}

// harvestMeta builds a pool of elements matched by the static lookup
// tables, then parses and scores each one.
func (e *Extractor) harvestMeta(candidates []pubdate.Candidate, doc pubdate.Document) []pubdate.Candidate {
	var pool []metaCandidate
	for _, name := range e.Config.UpdatedMetaNames {
		for _, el := range doc.MetaElements(name) {
			pool = append(pool, metaCandidate{el: el, contentAttr: "content", kind: pubdate.KindUpdated})
		}
	}
	for _, name := range e.Config.PublishedMetaNames {
		for _, el := range doc.MetaElements(name) {
			pool = append(pool, metaCandidate{el: el, contentAttr: "content", kind: pubdate.KindPublished})
		}
	}
	for _, pattern := range e.Config.AttributePatterns {
		for _, el := range doc.ElementsByAttribute(pattern.Attribute, pattern.Value) {
			pool = append(pool, metaCandidate{el: el, contentAttr: pattern.ContentAttr, kind: pubdate.KindUnknown})
		}
	}

	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	for _, mc := range pool {
		raw, ok := mc.el.Attr(mc.contentAttr)
		if !ok || raw == "" {
			continue
		}
		t, ok := e.Parser.Parse(raw)
		if !ok {
			continue
		}
		candidates = append(candidates, pubdate.Candidate{Time: t, Score: scoreMeta(mc, t, now), Kind: mc.kind})
	}
	return candidates
}

// scoreMeta computes a meta/attribute candidate's score: base 6, +1 for
// the standardized <meta> tag form, +2 for explicit update markers (rarer
// and more deliberate than generic publish markers), -2 for future dates
// (scheduling/template artifacts), -1 for dates more than 25 years old
// (likely boilerplate defaults). Adjustments compose additively.
func scoreMeta(mc metaCandidate, t, now time.Time) int {
	score := scoreMetaBase
	if strings.EqualFold(mc.el.Tag(), "meta") {
		score++
	}
	if mc.kind == pubdate.KindUpdated {
		score += 2
	}
	days := daysBetween(t, now)
	if days < 0 {
		score -= 2
	} else if days > maxAgeDays {
		score--
	}
	return score
}

// daysBetween returns the whole calendar days from t's date to now's date,
// negative when t is in the future. Only the date components matter, so a
// timestamp later today never counts as a future date.
func daysBetween(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	from := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
