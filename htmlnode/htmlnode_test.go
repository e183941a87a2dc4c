package htmlnode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	css "github.com/benbjohnson/cssengine"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/htmlnode"
	"github.com/benbjohnson/cssengine/selector"
)

const doc = `<!DOCTYPE html>
<html>
<head><style>p { color: red } .lead { width: 10px }</style></head>
<body>
  <div id="main" class="card wide">
    <p class="lead">one</p>
    <!-- comment -->
    text
    <p DATA-X="1">two</p>
    <span style="color: blue; colr: x">three</span>
  </div>
  <svg><rect width="1"/></svg>
</body>
</html>`

func parse(t *testing.T) *html.Node {
	t.Helper()
	root, err := htmlnode.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func names(a []*htmlnode.Element) []string {
	var s []string
	for _, e := range a {
		s = append(s, e.String())
	}
	return s
}

// Ensure that elements expose their attributes to the matcher.
func TestElement(t *testing.T) {
	root := parse(t)
	a, err := htmlnode.QuerySelectorAll(root, "#main")
	require.NoError(t, err)
	require.Len(t, a, 1)

	e := a[0]
	assert.Equal(t, "div", e.Tag())
	assert.Equal(t, "main", e.ID())
	assert.Equal(t, []string{"card", "wide"}, e.Classes())
	assert.Equal(t, "", e.Namespace())
	assert.Equal(t, "div#main.card.wide", e.String())

	_, ok := e.Attr("title")
	assert.False(t, ok)

	parent := e.ParentElement()
	require.NotNil(t, parent)
	assert.Equal(t, "body", parent.Tag())
	assert.Nil(t, e.PreviousElement())
}

// Ensure that text and comment nodes are skipped when walking siblings.
func TestElement_PreviousElement(t *testing.T) {
	a, err := htmlnode.QuerySelectorAll(parse(t), "p")
	require.NoError(t, err)
	require.Len(t, a, 2)

	prev := a[1].PreviousElement()
	require.NotNil(t, prev)
	assert.Equal(t, "p", prev.Tag())
	assert.Equal(t, []string{"lead"}, prev.Classes())

	v, ok := a[1].Attr("data-x")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

// Ensure that a non-element node is not wrapped.
func TestWrap(t *testing.T) {
	assert.Nil(t, htmlnode.Wrap(nil))
	assert.Nil(t, htmlnode.Wrap(&html.Node{Type: html.TextNode, Data: "x"}))
	assert.NotNil(t, htmlnode.Wrap(&html.Node{Type: html.ElementNode, Data: "p"}))
}

// Ensure that selectors match against a parsed document in document order.
func TestQuerySelectorAll(t *testing.T) {
	root := parse(t)

	var tests = []struct {
		sel string
		out []string
	}{
		{sel: "p", out: []string{"p.lead", "p"}},
		{sel: "div > p + p", out: []string{"p"}},
		{sel: "p ~ span", out: []string{"span"}},
		{sel: "body > *", out: []string{"div#main.card.wide", "svg"}},
		{sel: "svg *", out: []string{"rect"}},
		{sel: `[data-x="1"]`, out: []string{"p"}},
		{sel: "[data-x]", out: nil},
		{sel: "svg|rect", out: []string{"rect"}},
		{sel: "span, .lead", out: []string{"p.lead", "span"}},
		{sel: "table", out: nil},
	}

	for i, tt := range tests {
		a, err := htmlnode.QuerySelectorAll(root, tt.sel)
		require.NoError(t, err, "%d. %s", i, tt.sel)
		assert.Equal(t, tt.out, names(a), "%d. %s", i, tt.sel)
	}

	_, err := htmlnode.QuerySelectorAll(root, "p >")
	assert.Error(t, err)
}

// Ensure that embedded stylesheets are collected.
func TestStyleSheets(t *testing.T) {
	a := htmlnode.StyleSheets(parse(t))
	assert.Equal(t, []string{"p { color: red } .lead { width: 10px }"}, a)
}

// Ensure that inline style attributes are decoded.
func TestInlineStyle(t *testing.T) {
	a, err := htmlnode.QuerySelectorAll(parse(t), "span")
	require.NoError(t, err)
	require.Len(t, a, 1)

	st, errs, err := htmlnode.InlineStyle(a[0], selector.Strict)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, diag.UnknownProperty, errs[0].Kind)
	assert.Equal(t, "color: blue", st.String())
}

// Ensure that a sheet and inline styles are applied to a document.
func TestApply(t *testing.T) {
	root := parse(t)
	sheet, err := css.Compile(strings.Join(htmlnode.StyleSheets(root), "\n"), selector.Strict)
	require.NoError(t, err)

	a, errs, err := htmlnode.Apply(root, sheet, selector.Strict)
	require.NoError(t, err)
	assert.Len(t, errs, 1)
	require.Len(t, a, 3)

	assert.Equal(t, "p.lead", a[0].Element.String())
	assert.Len(t, a[0].Rules, 2)
	assert.Equal(t, "color: red; width: 10px", a[0].Style.String())

	assert.Equal(t, "p", a[1].Element.String())
	assert.Equal(t, "color: red", a[1].Style.String())

	assert.Equal(t, "span", a[2].Element.String())
	assert.Empty(t, a[2].Rules)
	assert.Equal(t, "color: blue", a[2].Style.String())
}
