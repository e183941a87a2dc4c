package selector

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
	"github.com/benbjohnson/cssengine/value"
)

// Mode controls how a selector list handles invalid items.
type Mode int

const (
	// Strict aborts the whole list on the first invalid item.
	Strict Mode = iota

	// Forgiving drops invalid items, records their errors and resumes
	// after the next top-level comma.
	Forgiving
)

// Parse parses src as a complete selector list. Non-fatal errors from
// forgiving lists, including those nested in :is() and :where(), are
// returned in the error list.
func Parse(src string, mode Mode) (List, diag.ErrorList, error) {
	s := scanner.New(src)
	l, errs, err := ParseList(s, mode)
	if err != nil {
		return nil, errs, err
	}
	if tok, err := s.PeekNonBlank(); err != nil {
		return nil, errs, err
	} else if _, ok := tok.(*token.EOF); !ok {
		return nil, errs, diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok))
	}
	return l, errs, nil
}

// MustParse parses src as a strict selector list and panics on error.
func MustParse(src string) List {
	l, _, err := Parse(src, Strict)
	if err != nil {
		panic(fmt.Sprintf("selector: MustParse(%q): %s", src, err))
	}
	return l
}

// ParseList parses a selector list from s. Parsing stops before a "{", a
// ")" or the end of input.
func ParseList(s *scanner.Scanner, mode Mode) (List, diag.ErrorList, error) {
	p := &parser{s: s}
	l, err := p.parseList(mode)
	return l, p.errs, err
}

// ParseRelative parses a single relative selector from s.
func ParseRelative(s *scanner.Scanner) (Relative, error) {
	p := &parser{s: s}
	return p.parseRelative()
}

// ParseCompound parses a single compound selector from s.
func ParseCompound(s *scanner.Scanner) (Compound, error) {
	p := &parser{s: s}
	return p.parseCompound()
}

// parser holds the scanner and the errors accumulated by forgiving lists.
type parser struct {
	s    *scanner.Scanner
	errs diag.ErrorList
}

// parseList parses comma separated relative selectors.
func (p *parser) parseList(mode Mode) (List, error) {
	var l List
	for {
		m, n := p.s.Mark(), len(p.errs)
		r, err := p.parseRelative()
		if err != nil {
			if mode == Strict || diag.IsFatal(err) {
				return nil, err
			}

			// Drop the item along with any errors collected inside it.
			p.errs = p.errs[:n]
			p.errs.Add(err)
			p.s.Reset(m)
			if err := p.skipItem(); err != nil {
				return nil, err
			}
		} else {
			l = append(l, r)
		}

		if ok, err := value.Comma(p.s); err != nil {
			return nil, err
		} else if !ok {
			return l, nil
		}
	}
}

// skipItem advances to the next top-level comma or list terminator.
func (p *parser) skipItem() error {
	var depth int
	for {
		m := p.s.Mark()
		tok, err := p.s.Next()
		if err != nil {
			return err
		}

		switch tok.(type) {
		case *token.Function, *token.LParen, *token.LBrack:
			depth++
		case *token.RBrack:
			if depth > 0 {
				depth--
			}
		case *token.RParen:
			if depth == 0 {
				p.s.Reset(m)
				return nil
			}
			depth--
		case *token.Comma, *token.LBrace:
			if depth == 0 {
				p.s.Reset(m)
				return nil
			}
		case *token.EOF:
			p.s.Reset(m)
			return nil
		}
	}
}

// parseRelative parses compound selectors separated by combinators. A
// leading combinator is allowed. Returns successfully only when the next
// token ends the list item.
func (p *parser) parseRelative() (Relative, error) {
	p.s.SkipWhitespace()
	comb, _, err := p.parseCombinator()
	if err != nil {
		return nil, err
	}

	var r Relative
	for {
		c, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		r = append(r, Step{Combinator: comb, Compound: c})

		ws := p.s.SkipWhitespace()
		tok, err := p.s.Peek()
		if err != nil {
			return nil, err
		} else if isListEnd(tok) {
			return r, nil
		}

		var explicit bool
		if comb, explicit, err = p.parseCombinator(); err != nil {
			return nil, err
		} else if !explicit && !ws {
			return nil, diag.New(diag.ExpectedCombinator, tok.Position())
		}
	}
}

// parseCombinator consumes an explicit combinator and any whitespace after
// it. Returns Descendant and false if the next token is not a combinator.
func (p *parser) parseCombinator() (Combinator, bool, error) {
	m := p.s.Mark()
	tok, err := p.s.Next()
	if err != nil {
		return Descendant, false, err
	}

	var comb Combinator
	switch {
	case token.IsDelim(tok, '>'):
		comb = Child
	case token.IsDelim(tok, '+'):
		comb = AdjacentSibling
	case token.IsDelim(tok, '~'):
		comb = Sibling
	case token.IsDelim(tok, '|'):
		comb = Namespace
		m2 := p.s.Mark()
		if next, err := p.s.Next(); err != nil {
			return Descendant, false, err
		} else if token.IsDelim(next, '|') {
			comb = Column
		} else {
			p.s.Reset(m2)
		}
	default:
		p.s.Reset(m)
		return Descendant, false, nil
	}

	p.s.SkipWhitespace()
	if next, err := p.s.Peek(); err != nil {
		return Descendant, false, err
	} else if isCombinator(next) {
		return Descendant, false, diag.New(diag.UnexpectedCombinator, next.Position())
	}
	return comb, true, nil
}

// compoundState tracks the invariants of a compound selector as simple
// selectors are appended.
type compoundState struct {
	phase  phase
	n      int
	tag    bool
	id     bool
	others bool // class or attribute seen
}

type phase int

const (
	regularPhase phase = iota
	pseudoClassPhase
	pseudoElementPhase
)

// check returns an error if sel cannot follow the selectors seen so far.
// An id after a class or attribute (".a#x") is rejected on purpose so that
// "p.a#x" fails.
func (st *compoundState) check(sel Selector, pos token.Pos) error {
	if st.phase == pseudoElementPhase {
		if _, ok := sel.(PseudoElement); ok {
			return diag.Invalid(pos, "only one pseudo-element is allowed")
		}
		return diag.Invalid(pos, fmt.Sprintf("%s cannot follow a pseudo-element", sel))
	}

	switch sel.(type) {
	case Tag:
		if st.tag {
			return diag.New(diag.DuplicateElementSelector, pos)
		} else if st.n > 0 {
			return diag.Invalid(pos, fmt.Sprintf("type selector %s must come first", sel))
		}
		st.tag = true
	case ID:
		if st.id {
			return diag.New(diag.DuplicateIDSelector, pos)
		} else if st.others {
			return diag.Invalid(pos, fmt.Sprintf("id selector %s must precede class and attribute selectors", sel))
		}
		st.id = true
	case Class, Attribute:
		st.others = true
	case PseudoClass:
		if st.phase == pseudoClassPhase {
			return diag.Invalid(pos, "only one pseudo-class is allowed")
		}
		st.phase = pseudoClassPhase
	case PseudoElement:
		st.phase = pseudoElementPhase
	}
	st.n++
	return nil
}

// parseCompound parses simple selectors until one of them reports that no
// simple selector starts at the current token.
func (p *parser) parseCompound() (Compound, error) {
	p.s.SkipWhitespace()

	var c Compound
	var st compoundState
	for {
		pos := p.s.Pos()
		sel, err := p.parseSimple()
		if err != nil {
			return nil, err
		} else if sel == nil {
			if len(c) == 0 {
				return nil, diag.New(diag.ExpectedSelector, pos)
			}
			return c, nil
		}

		if err := st.check(sel, pos); err != nil {
			return nil, err
		}
		c = append(c, sel)
	}
}

// parseSimple parses one simple selector. Returns nil with no error if the
// next token does not start a simple selector.
func (p *parser) parseSimple() (Selector, error) {
	m := p.s.Mark()
	tok, err := p.s.Next()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case *token.Ident:
		return Tag(tok.Value), nil
	case *token.Hash:
		if !tok.ID {
			return nil, diag.Invalid(tok.Pos, fmt.Sprintf("#%s is not a valid id", tok.Value))
		}
		return ID(tok.Value), nil
	case *token.LBrack:
		return p.parseAttribute(tok.Pos)
	case *token.Colon:
		return p.parsePseudo(tok.Pos)
	case *token.Delim:
		switch tok.Value {
		case '&':
			return Parent{}, nil
		case '*':
			return Tag("*"), nil
		case '.':
			next, err := p.s.Next()
			if err != nil {
				return nil, err
			} else if ident, ok := next.(*token.Ident); ok {
				return Class(ident.Value), nil
			}
			return nil, diag.ExpectedToken(next.Position(), "class name")
		}
	}

	p.s.Reset(m)
	return nil, nil
}

// parseAttribute parses an attribute selector after the "[".
func (p *parser) parseAttribute(pos token.Pos) (Selector, error) {
	var a Attribute

	tok, err := value.Next(p.s)
	if diag.IsFatal(err) {
		return nil, err
	} else if ident, ok := tok.(*token.Ident); !ok {
		return nil, diag.ExpectedToken(tok.Position(), "attribute name")
	} else {
		a.Name = ident.Value
	}

	if tok, err = value.Next(p.s); diag.IsFatal(err) {
		return nil, err
	}
	switch {
	case isRBrack(tok):
		return a, nil
	case token.IsDelim(tok, '='):
		a.Matcher = Equal
	case token.IsDelim(tok, '~'):
		a.Matcher = Include
	case token.IsDelim(tok, '|'):
		a.Matcher = Dash
	case token.IsDelim(tok, '^'):
		a.Matcher = Prefix
	case token.IsDelim(tok, '$'):
		a.Matcher = Suffix
	case token.IsDelim(tok, '*'):
		a.Matcher = Substring
	default:
		return nil, diag.ExpectedToken(tok.Position(), `"]"`)
	}
	if a.Matcher != Equal {
		if eq, err := p.s.Next(); err != nil {
			return nil, err
		} else if !token.IsDelim(eq, '=') {
			return nil, diag.ExpectedToken(eq.Position(), `"="`)
		}
	}

	if tok, err = value.Next(p.s); diag.IsFatal(err) {
		return nil, err
	}
	switch tok := tok.(type) {
	case *token.Ident:
		a.Value = tok.Value
	case *token.String:
		a.Value = tok.Value
	default:
		return nil, diag.New(diag.ExpectedString, tok.Position())
	}

	if tok, err = value.Next(p.s); diag.IsFatal(err) {
		return nil, err
	}
	if ident, ok := tok.(*token.Ident); ok {
		switch strings.ToLower(ident.Value) {
		case "i":
			a.CaseInsensitive = true
		case "s":
		default:
			return nil, diag.Keywords(ident.Pos, "i", "s")
		}
		if tok, err = value.Next(p.s); diag.IsFatal(err) {
			return nil, err
		}
	}

	if !isRBrack(tok) {
		return nil, diag.ExpectedToken(tok.Position(), `"]"`)
	}
	return a, nil
}

// parsePseudo parses a pseudo-class or pseudo-element after the first ":".
func (p *parser) parsePseudo(pos token.Pos) (Selector, error) {
	tok, err := p.s.Next()
	if err != nil {
		return nil, err
	}

	element := false
	if _, ok := tok.(*token.Colon); ok {
		element = true
		if tok, err = p.s.Next(); err != nil {
			return nil, err
		}
	}

	switch tok := tok.(type) {
	case *token.Ident:
		name := strings.ToLower(tok.Value)
		if element {
			return lookupPseudoElement(name, tok.Pos)
		} else if legacyPseudoElements[name] {
			return PseudoElement{Name: name}, nil
		}
		return lookupPseudoClass(name, tok.Pos)

	case *token.Function:
		name := strings.ToLower(tok.Value)
		var sel Selector
		if element {
			sel, err = p.parsePseudoElementArgs(name, tok.Pos)
		} else {
			sel, err = p.parsePseudoClassArgs(name, tok.Pos)
		}
		if err != nil {
			return nil, err
		}
		if tok, err := value.Next(p.s); diag.IsFatal(err) {
			return nil, err
		} else if _, ok := tok.(*token.RParen); !ok {
			return nil, diag.ExpectedToken(tok.Position(), `")"`)
		}
		return sel, nil
	}

	if element {
		return nil, diag.ExpectedToken(tok.Position(), "pseudo-element name")
	}
	return nil, diag.ExpectedToken(tok.Position(), "pseudo-class name")
}

// parsePseudoClassArgs parses the arguments of a functional pseudo-class up
// to, but excluding, the closing parenthesis.
func (p *parser) parsePseudoClassArgs(name string, pos token.Pos) (Selector, error) {
	pc := PseudoClass{Name: name}
	var err error

	switch name {
	case "is", "where":
		if pc.Selectors, err = p.parseList(Forgiving); err != nil {
			return nil, err
		}
	case "not", "has":
		if pc.Selectors, err = p.parseList(Strict); err != nil {
			return nil, err
		}
	case "host", "host-context":
		if pc.Compound, err = p.parseCompound(); err != nil {
			return nil, err
		}
	case "dir":
		if pc.Dir, err = value.Keyword(p.s, "ltr", "rtl"); err != nil {
			return nil, err
		}
	case "lang":
		if pc.Langs, err = p.parseLangs(); err != nil {
			return nil, err
		}
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		nth, err := p.parseNth()
		if err != nil {
			return nil, err
		}
		pc.Nth = &nth
	default:
		if pseudoClasses[name] {
			return nil, diag.Newf(diag.InvalidPseudoSelector, pos, ":%s does not take arguments", name)
		}
		return nil, diag.Named(diag.UnknownPseudoClass, pos, name)
	}
	return pc, nil
}

// parseLangs parses a comma separated list of identifiers or strings.
func (p *parser) parseLangs() ([]string, error) {
	var a []string
	for {
		tok, err := value.Next(p.s)
		if diag.IsFatal(err) {
			return nil, err
		}
		switch tok := tok.(type) {
		case *token.Ident:
			a = append(a, tok.Value)
		case *token.String:
			a = append(a, tok.Value)
		default:
			return nil, diag.New(diag.ExpectedString, tok.Position())
		}

		if ok, err := value.Comma(p.s); err != nil {
			return nil, err
		} else if !ok {
			return a, nil
		}
	}
}

// parsePseudoElementArgs parses the arguments of a functional pseudo-element
// up to, but excluding, the closing parenthesis.
func (p *parser) parsePseudoElementArgs(name string, pos token.Pos) (Selector, error) {
	pe := PseudoElement{Name: name}
	switch name {
	case "slotted":
		c, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		pe.Compound = c
	case "part", "highlight":
		for {
			m := p.s.Mark()
			tok, err := value.Next(p.s)
			if diag.IsFatal(err) {
				return nil, err
			}
			ident, ok := tok.(*token.Ident)
			if !ok {
				p.s.Reset(m)
				break
			}
			pe.Idents = append(pe.Idents, ident.Value)
		}
		if len(pe.Idents) == 0 {
			return nil, diag.New(diag.ExpectedArguments, pos)
		} else if name == "highlight" && len(pe.Idents) > 1 {
			return nil, diag.Range(pos, 1, 1)
		}
	default:
		if pseudoElements[name] {
			return nil, diag.Newf(diag.InvalidPseudoSelector, pos, "::%s does not take arguments", name)
		}
		return nil, diag.Named(diag.UnknownPseudoElement, pos, name)
	}
	return pe, nil
}

// isListEnd returns true for tokens that end a selector list item.
func isListEnd(tok token.Token) bool {
	switch tok.(type) {
	case *token.Comma, *token.LBrace, *token.RParen, *token.EOF:
		return true
	}
	return false
}

// isCombinator returns true if tok starts an explicit combinator.
func isCombinator(tok token.Token) bool {
	return token.IsDelim(tok, '>') || token.IsDelim(tok, '+') || token.IsDelim(tok, '~') || token.IsDelim(tok, '|')
}

func isRBrack(tok token.Token) bool {
	_, ok := tok.(*token.RBrack)
	return ok
}
