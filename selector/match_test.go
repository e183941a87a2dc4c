package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/benbjohnson/cssengine/internal/mocks"
	"github.com/benbjohnson/cssengine/selector"
)

// elem is a minimal in-memory element tree.
type elem struct {
	tag     string
	id      string
	ns      string
	classes []string
	attrs   map[string]string

	parent *elem
	prev   *elem
}

func (e *elem) Tag() string       { return e.tag }
func (e *elem) ID() string        { return e.id }
func (e *elem) Classes() []string { return e.classes }
func (e *elem) Namespace() string { return e.ns }

func (e *elem) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *elem) ParentElement() selector.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *elem) PreviousElement() selector.Element {
	if e.prev == nil {
		return nil
	}
	return e.prev
}

// appendChild links children under parent in order.
func appendChild(parent *elem, children ...*elem) {
	var prev *elem
	for _, child := range children {
		child.parent, child.prev = parent, prev
		prev = child
	}
}

// Ensure that attribute matchers compare values per operator.
func TestMatcher_Match(t *testing.T) {
	var tests = []struct {
		m                selector.Matcher
		subject, pattern string
		fold             bool
		ok               bool
	}{
		{m: selector.Exists, subject: "", ok: true},
		{m: selector.Exists, subject: "true", ok: true},
		{m: selector.Exists, subject: "x", ok: false},
		{m: selector.Equal, subject: "abc", pattern: "abc", ok: true},
		{m: selector.Equal, subject: "ABC", pattern: "abc", ok: false},
		{m: selector.Equal, subject: "ABC", pattern: "abc", fold: true, ok: true},
		{m: selector.Include, subject: "some space separated list of val", pattern: "val", ok: true},
		{m: selector.Include, subject: "someval", pattern: "val", ok: false},
		{m: selector.Dash, subject: "en", pattern: "en", ok: true},
		{m: selector.Dash, subject: "en-US", pattern: "en", ok: true},
		{m: selector.Dash, subject: "english", pattern: "en", ok: false},
		{m: selector.Prefix, subject: "valdashed", pattern: "val", ok: true},
		{m: selector.Prefix, subject: "dashedval", pattern: "val", ok: false},
		{m: selector.Prefix, subject: "anything", pattern: "", ok: false},
		{m: selector.Suffix, subject: "dashedval", pattern: "val", ok: true},
		{m: selector.Suffix, subject: "anything", pattern: "", ok: false},
		{m: selector.Substring, subject: "invalidate", pattern: "val", ok: true},
		{m: selector.Substring, subject: "INVALIDATE", pattern: "val", fold: true, ok: true},
		{m: selector.Substring, subject: "anything", pattern: "", ok: false},
	}

	for i, tt := range tests {
		ok := tt.m.Match(tt.subject, tt.pattern, tt.fold)
		assert.Equal(t, tt.ok, ok, "%d. %q %s %q", i, tt.subject, tt.m, tt.pattern)
	}
}

// Ensure that a compound selector consults the node's tag, id, classes
// and attributes.
func TestCompound_Match(t *testing.T) {
	ctrl := gomock.NewController(t)

	n := mocks.NewMockNode(ctrl)
	n.EXPECT().Tag().Return("DIV").AnyTimes()
	n.EXPECT().ID().Return("main").AnyTimes()
	n.EXPECT().Classes().Return([]string{"card", "wide"}).AnyTimes()
	n.EXPECT().Attr("data-kind").Return("value", true).AnyTimes()
	n.EXPECT().Attr(gomock.Any()).Return("", false).AnyTimes()

	var tests = []struct {
		s  string
		ok bool
	}{
		{s: `div`, ok: true},
		{s: `*`, ok: true},
		{s: `span`, ok: false},
		{s: `div#main.card`, ok: true},
		{s: `#other`, ok: false},
		{s: `.card.wide`, ok: true},
		{s: `.card.narrow`, ok: false},
		{s: `[data-kind^="val"]`, ok: true},
		{s: `[data-kind="VALUE" i]`, ok: true},
		{s: `[data-kind="VALUE"]`, ok: false},
		{s: `[title]`, ok: false},
		{s: `div:hover`, ok: true},
		{s: `div::before`, ok: true},
	}

	for i, tt := range tests {
		c := selector.MustParse(tt.s)[0][0].Compound
		assert.Equal(t, tt.ok, c.Match(n), "%d. <%q>", i, tt.s)
	}
}

// Ensure that attribute selectors report a missing attribute as no match.
func TestAttribute_Match_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)

	n := mocks.NewMockNode(ctrl)
	n.EXPECT().Attr("href").Return("", false)

	a := selector.Attribute{Name: "href", Matcher: selector.Exists}
	assert.False(t, a.Match(n))
}

// Ensure that relative matching stops at the root and only walks the tree
// once the subject compound matches.
func TestRelative_Match_Mock(t *testing.T) {
	ctrl := gomock.NewController(t)

	e := mocks.NewMockElement(ctrl)
	e.EXPECT().Tag().Return("b").AnyTimes()
	e.EXPECT().ParentElement().Return(nil).Times(1)
	assert.False(t, selector.MustParse("a > b")[0].Match(e))

	// The subject fails, so neither parent nor sibling is consulted.
	other := mocks.NewMockElement(ctrl)
	other.EXPECT().Tag().Return("i").AnyTimes()
	assert.False(t, selector.MustParse("a > b")[0].Match(other))
	assert.False(t, selector.MustParse("a ~ b")[0].Match(other))
}

// Ensure that relative selectors walk ancestors and siblings.
func TestRelative_Match(t *testing.T) {
	html := &elem{tag: "html"}
	body := &elem{tag: "body"}
	main := &elem{tag: "div", id: "main", classes: []string{"c"}}
	pa := &elem{tag: "p", classes: []string{"a"}}
	pb := &elem{tag: "p", classes: []string{"b"}}
	span := &elem{tag: "span"}
	svg := &elem{tag: "svg", ns: "svg"}
	rect := &elem{tag: "rect", ns: "svg"}

	appendChild(html, body)
	appendChild(body, main, svg)
	appendChild(main, pa, pb, span)
	appendChild(svg, rect)

	var tests = []struct {
		s  string
		e  *elem
		ok bool
	}{
		{s: `div p`, e: pa, ok: true},
		{s: `html p`, e: pb, ok: true},
		{s: `body > p`, e: pa, ok: false},
		{s: `body > div > p`, e: pa, ok: true},
		{s: `#main > .b`, e: pb, ok: true},
		{s: `p + p`, e: pb, ok: true},
		{s: `p + p`, e: pa, ok: false},
		{s: `p ~ span`, e: span, ok: true},
		{s: `p.a ~ span`, e: span, ok: true},
		{s: `p.a + span`, e: span, ok: false},
		{s: `.c p + p ~ span`, e: span, ok: true},
		{s: `svg|rect`, e: rect, ok: true},
		{s: `*|rect`, e: rect, ok: true},
		{s: `math|rect`, e: rect, ok: false},
		{s: `|span`, e: span, ok: true},
		{s: `|rect`, e: rect, ok: false},
		{s: `div || p`, e: pa, ok: false},
		{s: `html`, e: html, ok: true},
		{s: `body html`, e: html, ok: false},
	}

	for i, tt := range tests {
		l := selector.MustParse(tt.s)
		assert.Equal(t, tt.ok, l.Match(tt.e), "%d. <%q>", i, tt.s)
	}
}

// Ensure that a list matches when any of its selectors matches.
func TestList_Match(t *testing.T) {
	body := &elem{tag: "body"}
	a := &elem{tag: "a", classes: []string{"x"}}
	appendChild(body, a)

	assert.True(t, selector.MustParse("p, body > a").Match(a))
	assert.True(t, selector.MustParse("p, .x").Match(a))
	assert.False(t, selector.MustParse("p, span").Match(a))
}

// Ensure that nth formulas select the expected candidates.
func TestSelectNth(t *testing.T) {
	a := make([]*elem, 11)
	for i := range a {
		a[i] = &elem{tag: "li"}
		if i%2 == 0 {
			a[i].classes = []string{"x"}
		}
	}

	var tests = []struct {
		nth selector.Nth
		n   int
	}{
		{nth: selector.Nth{Parity: selector.Odd}, n: 5},
		{nth: selector.Nth{Parity: selector.Even}, n: 6},
		{nth: selector.Nth{Step: 3, Offset: 2}, n: 4},
		{nth: selector.Nth{Step: 1}, n: 11},
		{nth: selector.Nth{Offset: 3}, n: 3},
		{nth: selector.Nth{Offset: 20}, n: 11},
		{nth: selector.Nth{Step: -1, Offset: 2}, n: 2},
		{nth: selector.Nth{Step: 2, Offset: 1, Of: selector.Compound{selector.Class("x")}}, n: 3},
	}

	for i, tt := range tests {
		assert.Len(t, selector.SelectNth(a, tt.nth), tt.n, "%d. %s", i, tt.nth)
	}

	assert.Equal(t, []*elem{a[1], a[4], a[7], a[10]}, selector.SelectNth(a, selector.Nth{Step: 3, Offset: 2}))
}

// Ensure that nth arguments parse into formulas.
func TestParse_Nth(t *testing.T) {
	var tests = []struct {
		s   string
		nth selector.Nth
	}{
		{s: `odd`, nth: selector.Nth{Parity: selector.Odd}},
		{s: `EVEN`, nth: selector.Nth{Parity: selector.Even}},
		{s: `2n+1`, nth: selector.Nth{Step: 2, Offset: 1}},
		{s: `+n`, nth: selector.Nth{Step: 1}},
		{s: `n`, nth: selector.Nth{Step: 1}},
		{s: `-n+3`, nth: selector.Nth{Step: -1, Offset: 3}},
		{s: `5`, nth: selector.Nth{Offset: 5}},
		{s: `2n + 3`, nth: selector.Nth{Step: 2, Offset: 3}},
		{s: `3n+0`, nth: selector.Nth{Step: 3}},
		{s: `2n+1 of p.x`, nth: selector.Nth{Step: 2, Offset: 1, Of: selector.Compound{selector.Tag("p"), selector.Class("x")}}},
	}

	for i, tt := range tests {
		l, _, err := selector.Parse(":nth-child("+tt.s+")", selector.Strict)
		require.NoError(t, err, "%d. <%q>", i, tt.s)

		pc, ok := l[0][0].Compound[0].(selector.PseudoClass)
		require.True(t, ok, "%d. <%q>", i, tt.s)
		require.NotNil(t, pc.Nth, "%d. <%q>", i, tt.s)
		assert.Equal(t, tt.nth, *pc.Nth, "%d. <%q>", i, tt.s)
	}
}
