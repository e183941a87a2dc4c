package css_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	css "github.com/benbjohnson/cssengine"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/htmlnode"
	"github.com/benbjohnson/cssengine/selector"
)

// Ensure that nested rules are flattened with their full selectors.
func TestCompile(t *testing.T) {
	var tests = []struct {
		in    string
		rules []string
	}{
		{in: `a { color: red }`, rules: []string{"a { color: red; }"}},
		{in: `a {}`, rules: nil},
		{in: `a { & > b { width: 0 } }`, rules: []string{"a > b { width: 0; }"}},
		{in: `.c { color: red; b & { width: 0 } }`, rules: []string{".c { color: red; }", "b .c { width: 0; }"}},
		{in: `a, b { c { width: 0 } }`, rules: []string{"a c, b c { width: 0; }"}},
		{in: `a { b { c { width: 0 } } }`, rules: []string{"a b c { width: 0; }"}},
		{in: `@media print { a { color: red } }`, rules: []string{"@media print | a { color: red; }"}},
		{in: `a { @media print { color: red } }`, rules: []string{"@media print | a { color: red; }"}},
		{in: `@supports (x) { @media print { a { width: 0 } } }`, rules: []string{"@supports (x) @media print | a { width: 0; }"}},
		{in: `@import "x.css"; a { --x: 1 }`, rules: []string{"a { --x: 1; }"}},
	}

	for i, tt := range tests {
		sheet, err := css.Compile(tt.in, selector.Strict)
		require.NoError(t, err, "%d. %s", i, tt.in)
		require.Empty(t, sheet.Errors, "%d. %s", i, tt.in)

		var a []string
		for _, r := range sheet.Rules {
			s := r.Selectors.String() + " { " + r.Declarations.String() + " }"
			if len(r.Conditions) > 0 {
				s = strings.Join(r.Conditions, " ") + " | " + s
			}
			a = append(a, s)
		}
		assert.Equal(t, tt.rules, a, "%d. %s", i, tt.in)
	}
}

// Ensure that non-conditional at-rules are kept aside.
func TestCompile_AtRules(t *testing.T) {
	sheet, err := css.Compile(`@import "x.css"; @font-face { font-family: X } a { color: red }`, selector.Strict)
	require.NoError(t, err)
	require.Len(t, sheet.AtRules, 2)
	assert.Equal(t, "import", sheet.AtRules[0].Name)
	assert.Equal(t, "font-face", sheet.AtRules[1].Name)
	assert.Len(t, sheet.Rules, 1)
	assert.Equal(t, `@import "x.css"; @font-face { font-family: X } a { color: red }`, sheet.Source)
}

// Ensure that non-fatal errors are collected and fatal errors are returned.
func TestCompile_Errors(t *testing.T) {
	sheet, err := css.Compile("a { colr: red; width: 1 } p:bogus { color: red } b { color: blue }", selector.Strict)
	require.NoError(t, err)
	require.Len(t, sheet.Errors, 3)
	assert.Equal(t, diag.UnknownProperty, sheet.Errors[0].Kind)
	assert.Equal(t, diag.ExpectedZero, sheet.Errors[1].Kind)
	assert.Equal(t, diag.UnknownPseudoClass, sheet.Errors[2].Kind)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "b", sheet.Rules[0].Selectors.String())

	_, err = css.Compile("a { color: red } /* open", selector.Strict)
	assert.Equal(t, diag.UnterminatedComment, diag.KindOf(err))
}

// Ensure that MustCompile panics on any error.
func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { css.MustCompile("a { color: red }") })
	assert.Panics(t, func() { css.MustCompile("a { colr: red }") })
	assert.Panics(t, func() { css.MustCompile(`a { content: "x` + "\n" + `" }`) })
}

// Ensure that rules are matched against a document and merged in order.
func TestSheet_Match(t *testing.T) {
	root, err := htmlnode.Parse(strings.NewReader(`<div class="card"><a id="x">1</a><b>2</b></div>`))
	require.NoError(t, err)

	sheet := css.MustCompile(`
		a { color: red; width: 1px }
		.card {
			& > a { color: blue }
			& b { opacity: 0.5 }
		}
	`)

	a, err := htmlnode.QuerySelectorAll(root, "#x")
	require.NoError(t, err)
	require.Len(t, a, 1)

	rules := sheet.Match(a[0])
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Selectors.String())
	assert.Equal(t, ".card > a", rules[1].Selectors.String())
	assert.Equal(t, "color: blue; width: 1px", sheet.Style(a[0]).String())

	b, err := htmlnode.QuerySelectorAll(root, "b")
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, "opacity: 0.5", sheet.Style(b[0]).String())

	div, err := htmlnode.QuerySelectorAll(root, "div")
	require.NoError(t, err)
	require.Len(t, div, 1)
	assert.Empty(t, sheet.Match(div[0]))
	assert.Equal(t, 0, sheet.Style(div[0]).Len())
}
