package mock

import "github.com/fwojciec/pubdate"

var _ pubdate.Document = (*Document)(nil)

// Document is a mock implementation of pubdate.Document. Unset functions
// report no matches rather than panicking, so tests only wire the query
// surface they exercise.
type Document struct {
	StructuredDataFn      func() []map[string]any
	ElementsFn            func(tag string) []pubdate.Element
	MetaElementsFn        func(name string) []pubdate.Element
	ElementsByAttributeFn func(attr, value string) []pubdate.Element
}

func (d *Document) StructuredData() []map[string]any {
	if d.StructuredDataFn == nil {
		return nil
	}
	return d.StructuredDataFn()
}

func (d *Document) Elements(tag string) []pubdate.Element {
	if d.ElementsFn == nil {
		return nil
	}
	return d.ElementsFn(tag)
}

func (d *Document) MetaElements(name string) []pubdate.Element {
	if d.MetaElementsFn == nil {
		return nil
	}
	return d.MetaElementsFn(name)
}

func (d *Document) ElementsByAttribute(attr, value string) []pubdate.Element {
	if d.ElementsByAttributeFn == nil {
		return nil
	}
	return d.ElementsByAttributeFn(attr, value)
}

var _ pubdate.Element = (*Element)(nil)

// Element is a mock implementation of pubdate.Element.
type Element struct {
	TagFn  func() string
	AttrFn func(name string) (string, bool)
	TextFn func() string
}

func (e *Element) Tag() string {
	return e.TagFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}
