package ast

import (
	"bytes"

	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/selector"
	"github.com/benbjohnson/cssengine/token"
)

// Node represents a node in the stylesheet tree.
type Node interface {
	node()
	String() string
}

func (_ *StyleSheet) node()    {}
func (_ Rules) node()          {}
func (_ *AtRule) node()        {}
func (_ *QualifiedRule) node() {}
func (_ *Block) node()         {}
func (_ Declarations) node()   {}
func (_ *Declaration) node()   {}

// StyleSheet represents a top-level stylesheet.
type StyleSheet struct {
	Rules Rules
}

func (s *StyleSheet) String() string {
	var buf bytes.Buffer
	for _, r := range s.Rules {
		buf.WriteString(r.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// Rules represents a list of rules.
type Rules []Rule

func (a Rules) String() string {
	var buf bytes.Buffer
	for i, r := range a {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(r.String())
	}
	return buf.String()
}

// Rule represents a qualified rule or at-rule.
type Rule interface {
	Node
	rule()
}

func (_ *AtRule) rule()        {}
func (_ *QualifiedRule) rule() {}

// AtRule represents a rule starting with an "@" symbol. The prelude is kept
// as source text. Block is nil for statement at-rules such as @import.
type AtRule struct {
	Name    string
	Prelude string
	Block   *Block
	Pos     token.Pos
}

func (r *AtRule) String() string {
	var buf bytes.Buffer
	buf.WriteString("@" + r.Name)
	if r.Prelude != "" {
		buf.WriteString(" " + r.Prelude)
	}
	if r.Block != nil {
		buf.WriteString(" " + r.Block.String())
	} else {
		buf.WriteString(";")
	}
	return buf.String()
}

// QualifiedRule represents a style rule: a selector list and a block.
type QualifiedRule struct {
	Selectors selector.List
	Block     *Block
	Pos       token.Pos
}

func (r *QualifiedRule) String() string {
	return r.Selectors.String() + " " + r.Block.String()
}

// Block represents the contents of a {-block. Nested rules are listed after
// the declarations.
type Block struct {
	Declarations Declarations
	Rules        Rules
}

func (b *Block) String() string {
	if len(b.Declarations) == 0 && len(b.Rules) == 0 {
		return "{}"
	}

	var buf bytes.Buffer
	buf.WriteString("{ ")
	if len(b.Declarations) > 0 {
		buf.WriteString(b.Declarations.String())
		buf.WriteString(" ")
	}
	if len(b.Rules) > 0 {
		buf.WriteString(b.Rules.String())
		buf.WriteString(" ")
	}
	buf.WriteString("}")
	return buf.String()
}

// Declarations represents a list of declarations.
type Declarations []*Declaration

func (a Declarations) String() string {
	var buf bytes.Buffer
	for i, d := range a {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(d.String())
		buf.WriteString(";")
	}
	return buf.String()
}

// Style decodes the supported declarations into a style. Later
// declarations of the same property win.
func (a Declarations) Style() *property.Style {
	st := &property.Style{}
	for _, d := range a {
		if d.Value != nil {
			st.Set(d.Name, d.Value)
		}
	}
	return st
}

// Declaration represents a name/value pair.
//
// Value holds the decoded value of a supported property. Raw holds the
// value as written, which is the only form kept for custom properties and
// for descriptors inside @font-face and @page.
type Declaration struct {
	Name      string
	Value     property.Value
	Raw       string
	Important bool
	Pos       token.Pos
}

// Custom returns true if d declares a custom property.
func (d *Declaration) Custom() bool {
	return len(d.Name) > 2 && d.Name[0] == '-' && d.Name[1] == '-'
}

func (d *Declaration) String() string {
	var buf bytes.Buffer
	buf.WriteString(d.Name)
	buf.WriteString(": ")
	if d.Value != nil {
		buf.WriteString(d.Value.String())
	} else {
		buf.WriteString(d.Raw)
	}
	if d.Important {
		buf.WriteString(" !important")
	}
	return buf.String()
}

// Position returns the position of the first item in n. Returns a zero
// position for empty lists, blocks and stylesheets.
func Position(n Node) token.Pos {
	switch n := n.(type) {
	case *StyleSheet:
		if n != nil {
			return Position(n.Rules)
		}
	case Rules:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *AtRule:
		if n != nil {
			return n.Pos
		}
	case *QualifiedRule:
		if n != nil {
			return n.Pos
		}
	case *Block:
		if n == nil {
			return token.Pos{}
		} else if len(n.Declarations) > 0 {
			return Position(n.Declarations)
		}
		return Position(n.Rules)
	case Declarations:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *Declaration:
		if n != nil {
			return n.Pos
		}
	}
	return token.Pos{}
}
