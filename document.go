package pubdate

// Element is a single node in a parsed markup tree.
type Element interface {
	// Tag returns the lowercase tag name (e.g. "meta", "time").
	Tag() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the element's visible text content.
	Text() string
}

// Document is the narrow query surface the extractor needs from a parsed
// markup tree. Implementations must be safe for concurrent reads.
type Document interface {
	// StructuredData returns the document's embedded structured-data
	// objects (typically JSON-LD), each either graph-shaped
	// ("@graph": sequence of mappings) or flat. Malformed blocks are
	// skipped, never reported.
	StructuredData() []map[string]any

	// Elements returns all elements with the given tag name.
	Elements(tag string) []Element

	// MetaElements returns metadata elements whose name, property or
	// itemprop attribute equals name.
	MetaElements(name string) []Element

	// ElementsByAttribute returns elements whose attribute attr has the
	// exact value.
	ElementsByAttribute(attr, value string) []Element
}
