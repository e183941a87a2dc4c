// Package htmlnode adapts parsed HTML documents to the selector matching
// interfaces and applies stylesheets to their elements.
package htmlnode

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	css "github.com/benbjohnson/cssengine"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/parser"
	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
)

// Element wraps an HTML element node.
type Element struct {
	n *html.Node
}

var _ selector.Element = (*Element)(nil)

// Wrap returns n as an Element. Returns nil if n is not an element.
func Wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{n: n}
}

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node { return e.n }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.n.Data }

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Classes returns the whitespace separated names of the class attribute.
func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// Namespace returns "svg" or "math" for foreign elements and "" for HTML.
func (e *Element) Namespace() string { return e.n.Namespace }

// Attr returns the value of the named attribute. Attribute names are
// matched without regard to case.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// ParentElement returns the nearest ancestor element, or nil.
func (e *Element) ParentElement() selector.Element {
	for p := e.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Element{n: p}
		}
	}
	return nil
}

// PreviousElement returns the nearest preceding sibling element, or nil.
func (e *Element) PreviousElement() selector.Element {
	for p := e.n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return &Element{n: p}
		}
	}
	return nil
}

// String returns the element's tag name along with its id and classes.
func (e *Element) String() string {
	var buf strings.Builder
	buf.WriteString(e.n.Data)
	if id := e.ID(); id != "" {
		buf.WriteString("#" + id)
	}
	for _, class := range e.Classes() {
		buf.WriteString("." + class)
	}
	return buf.String()
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// Elements returns every element under root, including root, in document
// order.
func Elements(root *html.Node) []*Element {
	var a []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if e := Wrap(n); e != nil {
			a = append(a, e)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return a
}

// Select returns the elements under root matched by l, in document order.
func Select(root *html.Node, l selector.List) []*Element {
	var a []*Element
	for _, e := range Elements(root) {
		if l.Match(e) {
			a = append(a, e)
		}
	}
	return a
}

// QuerySelectorAll parses src as a strict selector list and selects the
// matching elements under root.
func QuerySelectorAll(root *html.Node, src string) ([]*Element, error) {
	l, _, err := selector.Parse(src, selector.Strict)
	if err != nil {
		return nil, err
	}
	return Select(root, l), nil
}

// StyleSheets returns the text of every <style> element under root.
func StyleSheets(root *html.Node) []string {
	var a []string
	for _, e := range Elements(root) {
		if e.n.DataAtom != atom.Style {
			continue
		}
		var buf strings.Builder
		for c := e.n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				buf.WriteString(c.Data)
			}
		}
		a = append(a, buf.String())
	}
	return a
}

// InlineStyle decodes the element's style attribute. Invalid declarations
// are dropped and returned in the error list.
func InlineStyle(e *Element, mode selector.Mode) (*property.Style, diag.ErrorList, error) {
	src, ok := e.Attr("style")
	if !ok {
		return &property.Style{}, nil, nil
	}
	b, errs, err := parser.ParseDeclarations(scanner.New(src), mode)
	if err != nil {
		return nil, errs, err
	}
	return b.Declarations.Style(), errs, nil
}

// Computed is the style of one element along with the rules it matched.
type Computed struct {
	Element *Element
	Rules   []*css.Rule
	Style   *property.Style
}

// Apply matches the rules of sheet against every element under root.
// Each element's style merges its matching rules in source order, followed
// by its inline style attribute. Elements that match nothing and have no
// inline style are omitted.
func Apply(root *html.Node, sheet *css.Sheet, mode selector.Mode) ([]*Computed, diag.ErrorList, error) {
	var a []*Computed
	var errs diag.ErrorList
	for _, e := range Elements(root) {
		c := &Computed{Element: e, Rules: sheet.Match(e), Style: &property.Style{}}
		for _, r := range c.Rules {
			c.Style.Merge(r.Style)
		}

		inline, ierrs, err := InlineStyle(e, mode)
		if err != nil {
			return nil, errs, err
		}
		errs = append(errs, ierrs...)
		c.Style.Merge(inline)

		if len(c.Rules) > 0 || inline.Len() > 0 {
			a = append(a, c)
		}
	}
	return a, errs, nil
}
