package selector

import (
	"strings"

	"golang.org/x/text/cases"
)

// Match returns true if every simple selector in c matches n.
//
// Pseudo-classes and pseudo-elements require traversal or state outside of
// a single node and are ignored. An unresolved nesting selector matches any
// node.
func (c Compound) Match(n Node) bool {
	for _, sel := range c {
		switch sel := sel.(type) {
		case Tag:
			if sel != "*" && !strings.EqualFold(string(sel), n.Tag()) {
				return false
			}
		case ID:
			if string(sel) != n.ID() {
				return false
			}
		case Class:
			if !hasClass(n.Classes(), string(sel)) {
				return false
			}
		case Attribute:
			if !sel.Match(n) {
				return false
			}
		}
	}
	return true
}

func hasClass(a []string, name string) bool {
	for _, class := range a {
		if class == name {
			return true
		}
	}
	return false
}

// Match returns true if the attribute selector matches n.
func (a Attribute) Match(n Node) bool {
	v, ok := n.Attr(a.Name)
	if !ok {
		return false
	}
	return a.Matcher.Match(v, a.Value, a.CaseInsensitive)
}

// Match evaluates the matcher against subject. The Exists matcher accepts
// an empty subject or the literal "true".
func (m Matcher) Match(subject, pattern string, fold bool) bool {
	if fold {
		caser := cases.Fold()
		subject, pattern = caser.String(subject), caser.String(pattern)
	}

	switch m {
	case Exists:
		return subject == "" || subject == "true"
	case Equal:
		return subject == pattern
	case Include:
		for _, field := range strings.Fields(subject) {
			if field == pattern {
				return true
			}
		}
		return false
	case Dash:
		return subject == pattern || strings.HasPrefix(subject, pattern+"-")
	case Prefix:
		return pattern != "" && strings.HasPrefix(subject, pattern)
	case Suffix:
		return pattern != "" && strings.HasSuffix(subject, pattern)
	case Substring:
		return pattern != "" && strings.Contains(subject, pattern)
	}
	return false
}

// Match returns true if e is the subject of r. Steps are evaluated from
// right to left, backtracking through ancestors for Descendant and through
// earlier siblings for Sibling. Column never matches.
func (r Relative) Match(e Element) bool {
	if len(r) == 0 {
		return false
	}
	return r.matchAt(len(r)-1, e)
}

// matchAt returns true if step i matches e and the steps to its left match
// the elements related to e.
func (r Relative) matchAt(i int, e Element) bool {
	if e == nil || !r[i].Compound.Match(e) {
		return false
	}
	return r.matchLeft(i, e)
}

// matchLeft evaluates the combinator of step i, which e has matched.
func (r Relative) matchLeft(i int, e Element) bool {
	if i == 0 {
		if r[0].Combinator == Namespace {
			return e.Namespace() == ""
		}
		return true
	}

	switch r[i].Combinator {
	case Descendant:
		for p := e.ParentElement(); p != nil; p = p.ParentElement() {
			if r.matchAt(i-1, p) {
				return true
			}
		}
	case Child:
		return r.matchAt(i-1, e.ParentElement())
	case AdjacentSibling:
		return r.matchAt(i-1, e.PreviousElement())
	case Sibling:
		for p := e.PreviousElement(); p != nil; p = p.PreviousElement() {
			if r.matchAt(i-1, p) {
				return true
			}
		}
	case Namespace:
		// The step to the left names the namespace rather than an element.
		if ns := namespacePrefix(r[i-1].Compound); ns != "*" && !strings.EqualFold(ns, e.Namespace()) {
			return false
		}
		return r.matchLeft(i-1, e)
	}
	return false
}

// namespacePrefix returns the prefix named by a namespace step.
func namespacePrefix(c Compound) string {
	if len(c) == 1 {
		if tag, ok := c[0].(Tag); ok {
			return string(tag)
		}
	}
	return c.String()
}

// Match returns true if any selector in l matches e.
func (l List) Match(e Element) bool {
	for _, r := range l {
		if r.Match(e) {
			return true
		}
	}
	return false
}
