package extract_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pubdate"
	"github.com/fwojciec/pubdate/dateparse"
	"github.com/fwojciec/pubdate/extract"
	"github.com/fwojciec/pubdate/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pubdate.DateExtractor at compile time.
var _ pubdate.DateExtractor = (*extract.Extractor)(nil)

// newExtractor wires the real parser, matcher and default tables; tests
// that need different collaborators override the fields directly.
func newExtractor() *extract.Extractor {
	return extract.NewExtractor(dateparse.NewParser(), pubdate.StrictDateMatcher{}, pubdate.DefaultConfig())
}

// elem builds a mock element from plain values.
func elem(tag string, attrs map[string]string, text string) *mock.Element {
	return &mock.Element{
		TagFn: func() string { return tag },
		AttrFn: func(name string) (string, bool) {
			v, ok := attrs[name]
			return v, ok
		},
		TextFn: func() string { return text },
	}
}

func assertDate(t *testing.T, ts *time.Time, year int, month time.Month, day int) {
	t.Helper()
	require.NotNil(t, ts)
	y, m, d := ts.Date()
	assert.Equal(t, year, y)
	assert.Equal(t, month, m)
	assert.Equal(t, day, d)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("no evidence yields absent results", func(t *testing.T) {
		t.Parallel()

		result := newExtractor().Extract("https://example.com/about", &mock.Document{})

		assert.Nil(t, result.Updated)
		assert.Nil(t, result.Published)
		assert.Nil(t, result.Best())
	})

	t.Run("URL date alone yields published only", func(t *testing.T) {
		t.Parallel()

		result := newExtractor().Extract("https://example.com/2023/04/15/headline", &mock.Document{})

		assert.Nil(t, result.Updated)
		assertDate(t, result.Published, 2023, time.April, 15)
	})

	t.Run("flat structured data yields both axes", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{
					"dateModified":  "2024-01-02",
					"datePublished": "2023-12-01",
				}}
			},
		}

		result := newExtractor().Extract("https://example.com/article", doc)

		assertDate(t, result.Updated, 2024, time.January, 2)
		assertDate(t, result.Published, 2023, time.December, 1)
	})

	t.Run("dateCreated counts as published", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{"dateCreated": "2022-06-10"}}
			},
		}

		result := newExtractor().Extract("https://example.com/article", doc)

		assert.Nil(t, result.Updated)
		assertDate(t, result.Published, 2022, time.June, 10)
	})

	t.Run("meta updated and time published are independent axes", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			MetaElementsFn: func(name string) []pubdate.Element {
				if name != "article:modified_time" {
					return nil
				}
				return []pubdate.Element{
					elem("meta", map[string]string{"content": "2024-02-20"}, ""),
				}
			},
			ElementsFn: func(tag string) []pubdate.Element {
				return []pubdate.Element{
					elem("time", map[string]string{"datetime": "2024-02-01"}, "Published on: Feb 1"),
				}
			},
		}

		result := newExtractor().Extract("https://example.com/article", doc)

		assertDate(t, result.Updated, 2024, time.February, 20)
		assertDate(t, result.Published, 2024, time.February, 1)
	})

	t.Run("attribute pattern matches are never selected", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			ElementsByAttributeFn: func(attr, value string) []pubdate.Element {
				if attr != "itemprop" || value != "datePublished" {
					return nil
				}
				return []pubdate.Element{
					elem("span", map[string]string{"datetime": "2023-05-01"}, ""),
				}
			},
		}

		ex := newExtractor()
		candidates := ex.Harvest("https://example.com/article", doc)
		result := ex.Extract("https://example.com/article", doc)

		require.Len(t, candidates, 1)
		assert.Equal(t, pubdate.KindUnknown, candidates[0].Kind)
		assert.Nil(t, result.Updated)
		assert.Nil(t, result.Published)
	})

	t.Run("malformed dates everywhere contribute nothing", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{
					"dateModified":  "not a date",
					"datePublished": 12345,
				}}
			},
			ElementsFn: func(tag string) []pubdate.Element {
				return []pubdate.Element{
					elem("time", map[string]string{"datetime": "soon"}, "Updated"),
				}
			},
			MetaElementsFn: func(name string) []pubdate.Element {
				return []pubdate.Element{
					elem("meta", map[string]string{"content": "???"}, ""),
				}
			},
		}
		ex := newExtractor()
		ex.Matcher = &mock.URLMatcher{
			MatchFn: func(url string) (string, bool) { return "garbage", true },
		}

		result := ex.Extract("https://example.com/2nowhere", doc)

		assert.Nil(t, result.Updated)
		assert.Nil(t, result.Published)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{
					"dateModified":  "2024-01-02",
					"datePublished": "2023-12-01",
				}}
			},
		}
		ex := newExtractor()

		first := ex.Extract("https://example.com/2023/04/15/headline", doc)
		second := ex.Extract("https://example.com/2023/04/15/headline", doc)

		assert.Equal(t, first, second)
	})
}

func TestExtractor_Harvest(t *testing.T) {
	t.Parallel()

	t.Run("URL date scores 10 published", func(t *testing.T) {
		t.Parallel()

		candidates := newExtractor().Harvest("https://example.com/2023/04/15/headline", &mock.Document{})

		require.Len(t, candidates, 1)
		assert.Equal(t, 10, candidates[0].Score)
		assert.Equal(t, pubdate.KindPublished, candidates[0].Kind)
	})

	t.Run("graph entries score 10 and flat objects 9", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{
					{"@graph": []any{
						map[string]any{"dateModified": "2024-01-02"},
						"not a mapping",
					}},
					{"datePublished": "2023-12-01"},
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 2)
		assert.Equal(t, 10, candidates[0].Score)
		assert.Equal(t, pubdate.KindUpdated, candidates[0].Kind)
		assert.Equal(t, 9, candidates[1].Score)
		assert.Equal(t, pubdate.KindPublished, candidates[1].Kind)
	})

	t.Run("graph key suppresses flat key scanning", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{
					"@graph":        []any{},
					"datePublished": "2023-12-01",
				}}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		assert.Empty(t, candidates)
	})

	t.Run("time elements classify by visible text", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			ElementsFn: func(tag string) []pubdate.Element {
				return []pubdate.Element{
					elem("time", map[string]string{"datetime": "2024-02-01"}, "Last Modified: Feb 1"),
					elem("time", map[string]string{"datetime": "2024-02-02"}, "Published Feb 2"),
					elem("time", map[string]string{"datetime": "2024-02-03"}, "Feb 3"),
					elem("time", map[string]string{}, "no machine-readable attribute"),
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 3)
		assert.Equal(t, pubdate.Candidate{Time: candidates[0].Time, Score: 8, Kind: pubdate.KindUpdated}, candidates[0])
		assert.Equal(t, pubdate.Candidate{Time: candidates[1].Time, Score: 7, Kind: pubdate.KindPublished}, candidates[1])
		assert.Equal(t, pubdate.Candidate{Time: candidates[2].Time, Score: 5, Kind: pubdate.KindUnknown}, candidates[2])
	})

	t.Run("meta tag updated scores base plus meta plus updated", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			MetaElementsFn: func(name string) []pubdate.Element {
				if name != "article:modified_time" {
					return nil
				}
				return []pubdate.Element{
					elem("meta", map[string]string{"content": "2024-02-20"}, ""),
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 1)
		assert.Equal(t, 9, candidates[0].Score) // 6 base + 1 meta + 2 updated
		assert.Equal(t, pubdate.KindUpdated, candidates[0].Kind)
	})

	t.Run("non-meta attribute match loses the meta boost", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			ElementsByAttributeFn: func(attr, value string) []pubdate.Element {
				if attr != "itemprop" || value != "datePublished" {
					return nil
				}
				return []pubdate.Element{
					elem("span", map[string]string{"datetime": "2023-05-01"}, ""),
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 1)
		assert.Equal(t, 6, candidates[0].Score) // 6 base, no boosts
	})

	t.Run("future date is down-weighted by exactly 2", func(t *testing.T) {
		t.Parallel()

		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		past := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
		doc := &mock.Document{
			MetaElementsFn: func(name string) []pubdate.Element {
				if name != "date" {
					return nil
				}
				return []pubdate.Element{
					elem("meta", map[string]string{"content": past}, ""),
					elem("meta", map[string]string{"content": future}, ""),
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 2)
		assert.Equal(t, candidates[0].Score-2, candidates[1].Score)
	})

	t.Run("very old date is down-weighted by 1", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			MetaElementsFn: func(name string) []pubdate.Element {
				if name != "date" {
					return nil
				}
				return []pubdate.Element{
					elem("meta", map[string]string{"content": "1990-01-01"}, ""),
				}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 1)
		assert.Equal(t, 6, candidates[0].Score) // 6 base + 1 meta - 1 old
	})

	t.Run("reference time is injectable", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			MetaElementsFn: func(name string) []pubdate.Element {
				if name != "date" {
					return nil
				}
				return []pubdate.Element{
					elem("meta", map[string]string{"content": "2030-06-01"}, ""),
				}
			},
		}
		ex := newExtractor()
		ex.Now = func() time.Time { return time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC) }

		candidates := ex.Harvest("https://example.com/article", doc)

		require.Len(t, candidates, 1)
		assert.Equal(t, 7, candidates[0].Score) // 6 base + 1 meta, not future
	})

	t.Run("duplicate timestamps from independent signals are all kept", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			StructuredDataFn: func() []map[string]any {
				return []map[string]any{{"datePublished": "2023-04-15"}}
			},
		}

		candidates := newExtractor().Harvest("https://example.com/2023/04/15/headline", doc)

		require.Len(t, candidates, 2)
		assert.Equal(t, 10, candidates[0].Score)
		assert.Equal(t, 9, candidates[1].Score)
	})
}
