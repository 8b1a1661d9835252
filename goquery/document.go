// Package goquery implements the pubdate document query surface on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pubdate"
)

// Ensure Document implements pubdate.Document at compile time.
var _ pubdate.Document = (*Document)(nil)

// Document wraps a parsed goquery document. It is read-only after
// construction and safe for concurrent queries.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML into a Document.
func NewDocument(html string) (*Document, error) {
	if html == "" {
		return nil, pubdate.Errorf(pubdate.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pubdate.Errorf(pubdate.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// StructuredData returns every object decoded from
// <script type="application/ld+json"> blocks, flattening top-level arrays.
// Blocks that fail to decode are skipped.
func (d *Document) StructuredData() []map[string]any {
	var objects []map[string]any
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		var raw any
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return
		}
		switch v := raw.(type) {
		case map[string]any:
			objects = append(objects, v)
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					objects = append(objects, obj)
				}
			}
		}
	})
	return objects
}

// Elements returns all elements with the given tag name.
func (d *Document) Elements(tag string) []pubdate.Element {
	return collect(d.doc.Find(tag))
}

// MetaElements returns metadata elements whose name, property or itemprop
// attribute equals name.
func (d *Document) MetaElements(name string) []pubdate.Element {
	selector := fmt.Sprintf(`meta[name=%q], meta[property=%q], meta[itemprop=%q]`, name, name, name)
	return collect(d.doc.Find(selector))
}

// ElementsByAttribute returns elements whose attribute attr has the exact
// value.
func (d *Document) ElementsByAttribute(attr, value string) []pubdate.Element {
	selector := fmt.Sprintf(`[%s=%q]`, attr, value)
	return collect(d.doc.Find(selector))
}

func collect(sel *goquery.Selection) []pubdate.Element {
	elements := make([]pubdate.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements
}

// Ensure Element implements pubdate.Element at compile time.
var _ pubdate.Element = (*Element)(nil)

// Element wraps a single selected node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the element's visible text content.
func (e *Element) Text() string {
	return e.sel.Text()
}
