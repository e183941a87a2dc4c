package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
)

// Ensure that selectors parse and print back to the same text.
func TestParse_RoundTrip(t *testing.T) {
	var tests = []string{
		`a`,
		`*`,
		`div.a.b`,
		`#x.a`,
		`.a.b`,
		`p#x.a[t]`,
		`a[href]`,
		`a[href="x"]`,
		`a[lang|="en" i]`,
		`a[class~="b"][rel^="no"][src$=".png"][title*="x"]`,
		`a:hover`,
		`a:hover::before`,
		`a::before`,
		`::slotted(span.x)`,
		`::part(label icon)`,
		`:is(a, b > c)`,
		`:not(.x)`,
		`:has(> img)`,
		`:nth-child(2n+1)`,
		`:nth-child(odd)`,
		`:nth-last-child(-n+3)`,
		`:nth-of-type(3)`,
		`:nth-child(n of .x)`,
		`:dir(rtl)`,
		`:lang(en, fr-CA)`,
		`:host`,
		`:host(.dark)`,
		`a > b + c ~ d`,
		`a || b`,
		`svg|rect`,
		`&.active`,
		`& > a`,
		`ul li, ol li`,
		`> a`,
		`.a\.b`,
		`#a\:b`,
		`.\31 23`,
		`.-\31 x`,
		`a\ b`,
		`[data\.x="1"]`,
		`::part(a\+b)`,
	}

	for i, s := range tests {
		l, errs, err := selector.Parse(s, selector.Strict)
		require.NoError(t, err, "%d. <%q>", i, s)
		assert.Empty(t, errs, "%d. <%q>", i, s)
		assert.Equal(t, s, l.String(), "%d. <%q>", i, s)
	}
}

// Ensure that an escaped identifier stays a single simple selector after
// printing and parsing again.
func TestParse_EscapedIdent(t *testing.T) {
	var tests = []struct {
		in  string
		sel selector.Selector
		out string
	}{
		{in: `.a\.b`, sel: selector.Class("a.b"), out: `.a\.b`},
		{in: `#a\:b`, sel: selector.ID("a:b"), out: `#a\:b`},
		{in: `.\31 23`, sel: selector.Class("123"), out: `.\31 23`},
		{in: `.a\ b`, sel: selector.Class("a b"), out: `.a\ b`},
		{in: `.\2e x`, sel: selector.Class(".x"), out: `.\.x`},
		{in: `[a\]b]`, sel: selector.Attribute{Name: "a]b"}, out: `[a\]b]`},
	}

	for i, tt := range tests {
		l := selector.MustParse(tt.in)
		require.Len(t, l[0][0].Compound, 1, "%d. <%q>", i, tt.in)
		assert.Equal(t, tt.sel, l[0][0].Compound[0], "%d. <%q>", i, tt.in)
		assert.Equal(t, tt.out, l.String(), "%d. <%q>", i, tt.in)

		again := selector.MustParse(l.String())
		assert.Equal(t, l, again, "%d. <%q>", i, tt.in)
	}
}

// Ensure that whitespace and case variants print canonically.
func TestParse_Canonical(t *testing.T) {
	var tests = []struct {
		in, out string
	}{
		{in: `  a  >b`, out: `a > b`},
		{in: `a[ href = x ]`, out: `a[href="x"]`},
		{in: `a[href='x' I]`, out: `a[href="x" i]`},
		{in: `a:HOVER`, out: `a:hover`},
		{in: `p:before`, out: `p::before`},
		{in: `:NTH-CHILD( 2n + 1 )`, out: `:nth-child(2n+1)`},
		{in: `:nth-child(+n)`, out: `:nth-child(n)`},
		{in: `:lang("de")`, out: `:lang(de)`},
		{in: `a,b`, out: `a, b`},
	}

	for i, tt := range tests {
		l, _, err := selector.Parse(tt.in, selector.Strict)
		require.NoError(t, err, "%d. <%q>", i, tt.in)
		assert.Equal(t, tt.out, l.String(), "%d. <%q>", i, tt.in)
	}
}

// Ensure that compound selector invariants are enforced.
func TestParse_CompoundInvariants(t *testing.T) {
	var tests = []struct {
		s    string
		kind diag.Kind
	}{
		{s: `p.a#x`, kind: diag.InvalidSelector},
		{s: `a::before.x`, kind: diag.InvalidSelector},
		{s: `.x#y`, kind: diag.InvalidSelector},
		{s: `.a p`},
		{s: `#x#y`, kind: diag.DuplicateIDSelector},
		{s: `a*`, kind: diag.DuplicateElementSelector},
		{s: `&div`, kind: diag.InvalidSelector},
		{s: `::before::after`, kind: diag.InvalidSelector},
		{s: `::before:hover`, kind: diag.InvalidSelector},
		{s: `a:hover:focus`, kind: diag.InvalidSelector},
		{s: `a:hover.x`},
		{s: `a:hover::before`},
		{s: `#1a`, kind: diag.InvalidSelector},
	}

	for i, tt := range tests {
		_, _, err := selector.Parse(tt.s, selector.Strict)
		if tt.kind == diag.Unknown {
			assert.NoError(t, err, "%d. <%q>", i, tt.s)
			continue
		}
		assert.Equal(t, tt.kind, diag.KindOf(err), "%d. <%q>: %v", i, tt.s, err)
	}
}

// Ensure that grammar errors are reported by kind.
func TestParse_Errors(t *testing.T) {
	var tests = []struct {
		s    string
		kind diag.Kind
	}{
		{s: ``, kind: diag.ExpectedSelector},
		{s: `a > > b`, kind: diag.UnexpectedCombinator},
		{s: `a >`, kind: diag.ExpectedSelector},
		{s: `a, `, kind: diag.ExpectedSelector},
		{s: `a$`, kind: diag.ExpectedCombinator},
		{s: `a b)`, kind: diag.UnknownSyntax},
		{s: `:hovr`, kind: diag.UnknownPseudoClass},
		{s: `::befor`, kind: diag.UnknownPseudoElement},
		{s: `:nth-child`, kind: diag.ExpectedArguments},
		{s: `::part`, kind: diag.ExpectedArguments},
		{s: `:hover(1)`, kind: diag.InvalidPseudoSelector},
		{s: `:frobnicate(1)`, kind: diag.UnknownPseudoClass},
		{s: `:nth-child(-2n+1)`, kind: diag.InvalidNthFormat},
		{s: `:nth-child(n-1)`, kind: diag.InvalidNthFormat},
		{s: `:nth-child(2n - 1)`, kind: diag.InvalidNthFormat},
		{s: `:nth-child(1.5)`, kind: diag.InvalidNthFormat},
		{s: `:nth-child(2n+1`, kind: diag.Expected},
		{s: `:dir(up)`, kind: diag.ExpectedKeywords},
		{s: `:lang(1)`, kind: diag.ExpectedString},
		{s: `[a~b]`, kind: diag.Expected},
		{s: `[=a]`, kind: diag.Expected},
		{s: `[a=1]`, kind: diag.ExpectedString},
		{s: `[a=b x]`, kind: diag.ExpectedKeywords},
		{s: `.1`, kind: diag.ExpectedSelector},
		{s: `a."b"`, kind: diag.Expected},
		{s: `a "unterminated`, kind: diag.ExpectedSelector},
		{s: "a \"x\nb", kind: diag.BadString},
	}

	for i, tt := range tests {
		_, _, err := selector.Parse(tt.s, selector.Strict)
		assert.Equal(t, tt.kind, diag.KindOf(err), "%d. <%q>: %v", i, tt.s, err)
	}
}

// Ensure that nth steps and offsets too large for an int are rejected.
func TestParse_NthRange(t *testing.T) {
	var tests = []struct {
		s   string
		msg string
	}{
		{s: `:nth-child(99999999999999999999n)`, msg: "invalid nth format: step 99999999999999999999 is out of range"},
		{s: `:nth-child(-99999999999999999999n)`, msg: "invalid nth format: step -99999999999999999999 is out of range"},
		{s: `:nth-child(99999999999999999999)`, msg: "invalid nth format: offset 99999999999999999999 is out of range"},
		{s: `:nth-child(2n+99999999999999999999)`, msg: "invalid nth format: offset +99999999999999999999 is out of range"},
		{s: `:nth-child(2n + 99999999999999999999)`, msg: "invalid nth format: offset 99999999999999999999 is out of range"},
	}

	for i, tt := range tests {
		_, _, err := selector.Parse(tt.s, selector.Strict)
		assert.Equal(t, diag.InvalidNthFormat, diag.KindOf(err), "%d. <%q>", i, tt.s)
		assert.EqualError(t, err, tt.msg, "%d. <%q>", i, tt.s)
	}

	l, _, err := selector.Parse(`:nth-child(9007199254740993n+9007199254740993)`, selector.Strict)
	require.NoError(t, err)
	assert.Equal(t, `:nth-child(9007199254740993n+9007199254740993)`, l.String())
}

// Ensure that a forgiving list keeps valid items and records one error per
// dropped item.
func TestParse_Forgiving(t *testing.T) {
	l, errs, err := selector.Parse("p > a, :pseudo-invalid", selector.Forgiving)
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, "p > a", l[0].String())
	require.Len(t, errs, 1)
	assert.Equal(t, diag.UnknownPseudoClass, errs[0].Kind)

	_, _, err = selector.Parse("p > a, :pseudo-invalid", selector.Strict)
	assert.Equal(t, diag.UnknownPseudoClass, diag.KindOf(err))

	l, errs, err = selector.Parse("a, :not(:bad), b", selector.Forgiving)
	require.NoError(t, err)
	assert.Equal(t, "a, b", l.String())
	assert.Len(t, errs, 1)
}

// Ensure that :is() and :where() forgive their items inside a strict list.
func TestParse_ForgivingNested(t *testing.T) {
	l, errs, err := selector.Parse(":is(a, :bad, b) > c", selector.Strict)
	require.NoError(t, err)
	assert.Equal(t, ":is(a, b) > c", l.String())
	require.Len(t, errs, 1)
	assert.Equal(t, diag.UnknownPseudoClass, errs[0].Kind)

	// Errors inside a dropped item are replaced by the item's own error.
	l, errs, err = selector.Parse("a:is(:bad)::x.y, b", selector.Forgiving)
	require.NoError(t, err)
	assert.Equal(t, "b", l.String())
	require.Len(t, errs, 1)
	assert.Equal(t, diag.UnknownPseudoElement, errs[0].Kind)
}

// Ensure that error positions point at the offending token.
func TestParse_ErrorPosition(t *testing.T) {
	_, _, err := selector.Parse("div,\n  p.a#x", selector.Strict)
	var e *diag.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 2, e.Pos.Line)
	assert.Equal(t, 6, e.Pos.Column)
}

// Ensure that a selector list stops before a rule block.
func TestParseList_StopsAtBlock(t *testing.T) {
	s := scanner.New("a, b { color: red }")
	l, errs, err := selector.ParseList(s, selector.Strict)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "a, b", l.String())

	tok, err := s.NextNonBlank()
	require.NoError(t, err)
	assert.Equal(t, "{", tok.String())
}

// Ensure that attribute selectors parse each matcher.
func TestParse_Attribute(t *testing.T) {
	var tests = []struct {
		s string
		a selector.Attribute
	}{
		{s: `[a]`, a: selector.Attribute{Name: "a"}},
		{s: `[a=b]`, a: selector.Attribute{Name: "a", Matcher: selector.Equal, Value: "b"}},
		{s: `[a~="b c"]`, a: selector.Attribute{Name: "a", Matcher: selector.Include, Value: "b c"}},
		{s: `[a|=b]`, a: selector.Attribute{Name: "a", Matcher: selector.Dash, Value: "b"}},
		{s: `[a^=b]`, a: selector.Attribute{Name: "a", Matcher: selector.Prefix, Value: "b"}},
		{s: `[a$=b]`, a: selector.Attribute{Name: "a", Matcher: selector.Suffix, Value: "b"}},
		{s: `[a*=b i]`, a: selector.Attribute{Name: "a", Matcher: selector.Substring, Value: "b", CaseInsensitive: true}},
		{s: `[a=b s]`, a: selector.Attribute{Name: "a", Matcher: selector.Equal, Value: "b"}},
	}

	for i, tt := range tests {
		l, _, err := selector.Parse(tt.s, selector.Strict)
		require.NoError(t, err, "%d. <%q>", i, tt.s)
		assert.Equal(t, selector.Compound{tt.a}, l[0][0].Compound, "%d. <%q>", i, tt.s)
	}
}

// Ensure that relative selectors record their combinators.
func TestParse_Combinators(t *testing.T) {
	l := selector.MustParse("a b > c + d ~ e || f|g")
	require.Len(t, l, 1)

	var combs []selector.Combinator
	for _, step := range l[0] {
		combs = append(combs, step.Combinator)
	}
	assert.Equal(t, []selector.Combinator{
		selector.Descendant,
		selector.Descendant,
		selector.Child,
		selector.AdjacentSibling,
		selector.Sibling,
		selector.Column,
		selector.Namespace,
	}, combs)
}

// Ensure that MustParse panics on invalid input.
func TestMustParse_Panic(t *testing.T) {
	assert.Panics(t, func() { selector.MustParse("a > > b") })
}

// Ensure that ParseCompound stops at a combinator.
func TestParseCompound(t *testing.T) {
	s := scanner.New("div.a > p")
	c, err := selector.ParseCompound(s)
	require.NoError(t, err)
	assert.Equal(t, selector.Compound{selector.Tag("div"), selector.Class("a")}, c)
}

// Ensure that the nesting selector is replaced by the parent compound.
func TestCompound_Resolve(t *testing.T) {
	c := selector.Compound{selector.Parent{}, selector.Class("x")}
	other := c.Resolve(selector.Compound{selector.Tag("a"), selector.ID("y")})
	assert.Equal(t, selector.Compound{selector.Tag("a"), selector.ID("y"), selector.Class("x")}, other)
	assert.Equal(t, selector.Compound{selector.Parent{}, selector.Class("x")}, c)
}

// Ensure that nested selectors are flattened against their parent.
func TestNest(t *testing.T) {
	var tests = []struct {
		parent, child, out string
	}{
		{parent: `div.card`, child: `& > a`, out: `div.card > a`},
		{parent: `div.card`, child: `&:hover`, out: `div.card:hover`},
		{parent: `div.card`, child: `a`, out: `div.card a`},
		{parent: `div.card`, child: `> b`, out: `div.card > b`},
		{parent: `ul li`, child: `&.x span`, out: `ul li.x span`},
		{parent: `ul > li`, child: `p + &`, out: `p + ul > li`},
		{parent: `a, b`, child: `c, d`, out: `a c, a d, b c, b d`},
	}

	for i, tt := range tests {
		parent := selector.MustParse(tt.parent)
		child := selector.MustParse(tt.child)
		assert.Equal(t, tt.out, child.Nest(parent).String(), "%d. <%q> in <%q>", i, tt.child, tt.parent)
	}
}
