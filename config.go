package pubdate

// AttributePattern marks an element as date-bearing by an attribute/value
// pair and names the attribute holding the actual date string.
type AttributePattern struct {
	Attribute   string
	Value       string
	ContentAttr string
}

// Config holds the static lookup tables driving the meta/attribute
// harvester. Construct it once at startup and treat it as immutable; tests
// can substitute custom tables.
type Config struct {
	// UpdatedMetaNames are metadata names that denote a modification
	// timestamp.
	UpdatedMetaNames []string

	// PublishedMetaNames are metadata names that denote a publication
	// timestamp. Disjoint from UpdatedMetaNames by construction.
	PublishedMetaNames []string

	// AttributePatterns mark publish-date-bearing elements that don't
	// follow the metadata name conventions.
	AttributePatterns []AttributePattern
}

// updatedMetaNames lists metadata names known to denote an updated
// timestamp, in all the capitalizations seen in the wild.
var updatedMetaNames = []string{
	"updated_time",
	"og:updated_time",
	"datemodified",
	"last-modified",
	"Last-Modified",
	"DC.date.modified",
	"article:modified_time",
	"modified_time",
	"modifiedDateTime",
	"dc.dcterms.modified",
	"lastmod",
	"eomportal-lastUpdate",
}

// dateMetaNames is the combined list of metadata names known to carry any
// kind of date. The published list is derived by excluding the updated
// names from this superset.
var dateMetaNames = []string{
	"article:published_time",
	"published_time",
	"og:published_time",
	"rnews:datePublished",
	"datePublished",
	"date",
	"pubdate",
	"publishdate",
	"PublishDate",
	"publish_date",
	"publish-date",
	"publication_date",
	"OriginalPublicationDate",
	"article_date_original",
	"sailthru.date",
	"parsely-pub-date",
	"date_published",
	"dc.date",
	"dc.date.issued",
	"DC.date.issued",
	"dcterms.created",
	"article.published",
	"article.created",
	"cXenseParse:recs:publishtime",
	"updated_time",
	"og:updated_time",
	"datemodified",
	"last-modified",
	"Last-Modified",
	"DC.date.modified",
	"article:modified_time",
	"modified_time",
	"modifiedDateTime",
	"dc.dcterms.modified",
	"lastmod",
	"eomportal-lastUpdate",
}

// attributePatterns lists attribute/value pairs that mark an element as
// carrying a publish date, with the attribute holding the date itself.
var attributePatterns = []AttributePattern{
	{Attribute: "property", Value: "rnews:datePublished", ContentAttr: "content"},
	{Attribute: "property", Value: "article:published_time", ContentAttr: "content"},
	{Attribute: "property", Value: "og:published_time", ContentAttr: "content"},
	{Attribute: "name", Value: "OriginalPublicationDate", ContentAttr: "content"},
	{Attribute: "name", Value: "article_date_original", ContentAttr: "content"},
	{Attribute: "name", Value: "publication_date", ContentAttr: "content"},
	{Attribute: "name", Value: "sailthru.date", ContentAttr: "content"},
	{Attribute: "name", Value: "PublishDate", ContentAttr: "content"},
	{Attribute: "name", Value: "DC.date.issued", ContentAttr: "content"},
	{Attribute: "itemprop", Value: "datePublished", ContentAttr: "datetime"},
	{Attribute: "pubdate", Value: "pubdate", ContentAttr: "datetime"},
}

// DefaultConfig returns the built-in lookup tables. The published list is
// the combined date-name superset minus the updated names, which keeps the
// two lists disjoint by construction.
func DefaultConfig() Config {
	updated := make(map[string]struct{}, len(updatedMetaNames))
	for _, name := range updatedMetaNames {
		updated[name] = struct{}{}
	}

	published := make([]string, 0, len(dateMetaNames))
	for _, name := range dateMetaNames {
		if _, ok := updated[name]; ok {
			continue
		}
		published = append(published, name)
	}

	return Config{
		UpdatedMetaNames:   append([]string(nil), updatedMetaNames...),
		PublishedMetaNames: published,
		AttributePatterns:  append([]AttributePattern(nil), attributePatterns...),
	}
}
