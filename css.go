package css

import (
	"github.com/benbjohnson/cssengine/ast"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/parser"
	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
	"github.com/benbjohnson/cssengine/token"
)

// conditionalAtRules are at-rules whose blocks hold rules that apply only
// under the at-rule's condition.
var conditionalAtRules = map[string]bool{
	"media":     true,
	"supports":  true,
	"container": true,
	"layer":     true,
}

// Sheet is a compiled stylesheet. Nested rules are flattened so that every
// Rule carries its full selector list.
type Sheet struct {
	// Rules holds the style rules in source order.
	Rules []*Rule

	// AtRules holds at-rules that are not style containers, such as
	// @import and @font-face.
	AtRules []*ast.AtRule

	// Errors holds the non-fatal errors found while parsing.
	Errors diag.ErrorList

	// Source is the text the sheet was compiled from.
	Source string
}

// Rule is a flattened style rule.
type Rule struct {
	Selectors    selector.List
	Declarations ast.Declarations
	Style        *property.Style

	// Conditions lists the enclosing conditional at-rules from the
	// outermost inward, such as "@media screen".
	Conditions []string

	Pos token.Pos
}

// Compile parses src and flattens nested rules.
//
// Invalid rules and declarations are dropped and reported in Sheet.Errors.
// A tokenizer error is returned as err.
func Compile(src string, mode selector.Mode) (*Sheet, error) {
	ss, errs, err := parser.ParseStyleSheet(scanner.New(src), mode)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Errors: errs, Source: src}
	sheet.flatten(ss.Rules, nil, nil)
	return sheet, nil
}

// MustCompile compiles src in strict mode and panics on any error.
func MustCompile(src string) *Sheet {
	sheet, err := Compile(src, selector.Strict)
	if err != nil {
		panic("css: MustCompile: " + err.Error())
	} else if len(sheet.Errors) > 0 {
		panic("css: MustCompile: " + sheet.Errors.Error())
	}
	return sheet
}

// flatten appends rules to the sheet, nesting their selectors inside parent.
func (s *Sheet) flatten(rules ast.Rules, parent selector.List, conds []string) {
	for _, r := range rules {
		switch r := r.(type) {
		case *ast.QualifiedRule:
			l := r.Selectors.Nest(parent)
			s.add(l, r.Block.Declarations, conds, r.Pos)
			s.flatten(r.Block.Rules, l, conds)

		case *ast.AtRule:
			if r.Block == nil || !conditionalAtRules[r.Name] {
				s.AtRules = append(s.AtRules, r)
				continue
			}

			cond := "@" + r.Name
			if r.Prelude != "" {
				cond += " " + r.Prelude
			}
			other := append(conds[:len(conds):len(conds)], cond)

			// Declarations directly inside a nested conditional apply to
			// the enclosing rule's selectors.
			if parent != nil {
				s.add(parent, r.Block.Declarations, other, r.Pos)
			}
			s.flatten(r.Block.Rules, parent, other)
		}
	}
}

// add appends a rule unless it has no declarations.
func (s *Sheet) add(l selector.List, decls ast.Declarations, conds []string, pos token.Pos) {
	if len(decls) == 0 {
		return
	}
	s.Rules = append(s.Rules, &Rule{
		Selectors:    l,
		Declarations: decls,
		Style:        decls.Style(),
		Conditions:   conds,
		Pos:          pos,
	})
}

// Match returns the rules whose selectors match e, in source order.
// Conditions are not evaluated.
func (s *Sheet) Match(e selector.Element) []*Rule {
	var a []*Rule
	for _, r := range s.Rules {
		if r.Selectors.Match(e) {
			a = append(a, r)
		}
	}
	return a
}

// Style returns the styles of every rule matching e merged in source order.
// Specificity and importance are not considered.
func (s *Sheet) Style(e selector.Element) *property.Style {
	st := &property.Style{}
	for _, r := range s.Match(e) {
		st.Merge(r.Style)
	}
	return st
}
