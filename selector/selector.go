// Package selector implements the selector grammar and a matcher that
// evaluates parsed selectors against any tree that implements Node.
package selector

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/cssengine/token"
)

// Selector represents a simple selector.
type Selector interface {
	fmt.Stringer
	selector()
}

func (Parent) selector()        {}
func (Tag) selector()           {}
func (ID) selector()            {}
func (Class) selector()         {}
func (Attribute) selector()     {}
func (PseudoClass) selector()   {}
func (PseudoElement) selector() {}

// Parent is the nesting selector "&".
type Parent struct{}

func (Parent) String() string { return "&" }

// Tag is a type selector. The universal selector is Tag("*").
type Tag string

func (t Tag) String() string {
	if t == "*" {
		return "*"
	}
	return serializeIdent(string(t))
}

// ID is an id selector, such as "#main".
type ID string

func (id ID) String() string { return "#" + serializeIdent(string(id)) }

// Class is a class selector, such as ".active".
type Class string

func (c Class) String() string { return "." + serializeIdent(string(c)) }

// Matcher is the comparison operator of an attribute selector.
type Matcher int

const (
	Exists    Matcher = iota // [attr]
	Equal                    // [attr=value]
	Include                  // [attr~=value]
	Dash                     // [attr|=value]
	Prefix                   // [attr^=value]
	Suffix                   // [attr$=value]
	Substring                // [attr*=value]
)

var matchers = [...]string{
	Exists:    "",
	Equal:     "=",
	Include:   "~=",
	Dash:      "|=",
	Prefix:    "^=",
	Suffix:    "$=",
	Substring: "*=",
}

// String returns the operator text.
func (m Matcher) String() string { return matchers[m] }

// Attribute is an attribute selector.
type Attribute struct {
	Name            string
	Matcher         Matcher
	Value           string
	CaseInsensitive bool
}

func (a Attribute) String() string {
	var buf strings.Builder
	buf.WriteString("[")
	buf.WriteString(serializeIdent(a.Name))
	if a.Matcher != Exists {
		buf.WriteString(a.Matcher.String())
		buf.WriteString((&token.String{Value: a.Value, Ending: '"'}).String())
		if a.CaseInsensitive {
			buf.WriteString(" i")
		}
	}
	buf.WriteString("]")
	return buf.String()
}

// PseudoClass is a pseudo-class selector such as ":hover" or ":is(a, b)".
// At most one of the argument fields is set, depending on Name.
type PseudoClass struct {
	Name string

	// Selectors is the argument of :has(), :is(), :not() and :where().
	Selectors List

	// Compound is the argument of :host() and :host-context().
	Compound Compound

	// Dir is the argument of :dir(), either "ltr" or "rtl".
	Dir string

	// Langs holds the language ranges of :lang().
	Langs []string

	// Nth is the formula of :nth-child() and its siblings.
	Nth *Nth
}

func (pc PseudoClass) String() string {
	var buf strings.Builder
	buf.WriteString(":")
	buf.WriteString(pc.Name)

	switch {
	case listPseudoClasses[pc.Name]:
		buf.WriteString("(" + pc.Selectors.String() + ")")
	case pc.Compound != nil:
		buf.WriteString("(" + pc.Compound.String() + ")")
	case pc.Dir != "":
		buf.WriteString("(" + pc.Dir + ")")
	case pc.Langs != nil:
		a := make([]string, len(pc.Langs))
		for i, lang := range pc.Langs {
			a[i] = identOrString(lang)
		}
		buf.WriteString("(" + strings.Join(a, ", ") + ")")
	case pc.Nth != nil:
		buf.WriteString("(" + pc.Nth.String() + ")")
	}
	return buf.String()
}

// PseudoElement is a pseudo-element selector such as "::before".
type PseudoElement struct {
	Name string

	// Compound is the argument of ::slotted().
	Compound Compound

	// Idents holds the arguments of ::part() and ::highlight().
	Idents []string
}

func (pe PseudoElement) String() string {
	var buf strings.Builder
	buf.WriteString("::")
	buf.WriteString(pe.Name)
	switch {
	case pe.Compound != nil:
		buf.WriteString("(" + pe.Compound.String() + ")")
	case pe.Idents != nil:
		a := make([]string, len(pe.Idents))
		for i, ident := range pe.Idents {
			a[i] = serializeIdent(ident)
		}
		buf.WriteString("(" + strings.Join(a, " ") + ")")
	}
	return buf.String()
}

// Compound is a run of simple selectors with no combinator between them,
// such as "a.external[href]:hover".
type Compound []Selector

func (c Compound) String() string {
	var buf strings.Builder
	for _, sel := range c {
		buf.WriteString(sel.String())
	}
	return buf.String()
}

// HasParent returns true if c contains a nesting selector.
func (c Compound) HasParent() bool {
	for _, sel := range c {
		if _, ok := sel.(Parent); ok {
			return true
		}
	}
	return false
}

// Resolve returns a copy of c with every nesting selector replaced by the
// simple selectors of parent.
func (c Compound) Resolve(parent Compound) Compound {
	other := make(Compound, 0, len(c)+len(parent))
	for _, sel := range c {
		if _, ok := sel.(Parent); ok {
			other = append(other, parent...)
			continue
		}
		other = append(other, sel)
	}
	return other
}

// Combinator describes the relationship between two compound selectors.
type Combinator int

const (
	Descendant      Combinator = iota // "a b"
	Child                             // "a > b"
	AdjacentSibling                   // "a + b"
	Sibling                           // "a ~ b"
	Column                            // "a || b"
	Namespace                         // "ns|a"
)

var combinators = [...]string{
	Descendant:      " ",
	Child:           ">",
	AdjacentSibling: "+",
	Sibling:         "~",
	Column:          "||",
	Namespace:       "|",
}

// String returns the combinator text.
func (c Combinator) String() string { return combinators[c] }

// Step is a compound selector along with the combinator that relates it to
// the step before it.
type Step struct {
	Combinator Combinator
	Compound   Compound
}

// Relative is a sequence of steps. The combinator of the first step relates
// it to an unspecified context element and is Descendant unless the source
// started with an explicit combinator.
type Relative []Step

func (r Relative) String() string {
	var buf strings.Builder
	for i, step := range r {
		switch step.Combinator {
		case Descendant:
			if i > 0 {
				buf.WriteString(" ")
			}
		case Namespace:
			buf.WriteString("|")
		default:
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(step.Combinator.String())
			buf.WriteString(" ")
		}
		buf.WriteString(step.Compound.String())
	}
	return buf.String()
}

// List is a comma separated list of relative selectors.
type List []Relative

func (l List) String() string {
	a := make([]string, len(l))
	for i, r := range l {
		a[i] = r.String()
	}
	return strings.Join(a, ", ")
}

// identOrString returns s unquoted if it can be written as an identifier.
func identOrString(s string) string {
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_', ch >= 0x80:
		case ch == '-' && i > 0:
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return (&token.String{Value: s, Ending: '"'}).String()
		}
	}
	if s == "" {
		return `""`
	}
	return s
}

// serializeIdent returns s escaped so that it scans back as a single
// identifier with the same value. Code points that cannot appear in a name
// are backslash escaped. Control characters and a digit at the start, or
// after a leading "-", are written as hex escapes.
func serializeIdent(s string) string {
	if s == "-" {
		return `\-`
	}

	var buf strings.Builder
	for i, ch := range s {
		switch {
		case ch < 0x20 || ch == 0x7f:
			fmt.Fprintf(&buf, "\\%x ", ch)
		case ch >= '0' && ch <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			fmt.Fprintf(&buf, "\\%x ", ch)
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9',
			ch == '-', ch == '_', ch >= 0x80:
			buf.WriteRune(ch)
		default:
			buf.WriteByte('\\')
			buf.WriteRune(ch)
		}
	}
	return buf.String()
}
