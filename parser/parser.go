package parser

import (
	"strings"

	"github.com/benbjohnson/cssengine/ast"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
	"github.com/benbjohnson/cssengine/token"
	"github.com/benbjohnson/cssengine/value"
)

// atRules maps the supported at-rules to the forms they may take.
var atRules = map[string]atRuleKind{
	"charset":   statementAtRule,
	"import":    statementAtRule,
	"namespace": statementAtRule,
	"layer":     statementAtRule | blockAtRule,
	"media":     blockAtRule,
	"supports":  blockAtRule,
	"container": blockAtRule,
	"font-face": blockAtRule | descriptorAtRule,
	"page":      blockAtRule | descriptorAtRule,
}

type atRuleKind int

const (
	statementAtRule atRuleKind = 1 << iota
	blockAtRule

	// descriptorAtRule blocks hold descriptors, which are kept as raw text.
	descriptorAtRule
)

// parser represents a stylesheet parser.
type parser struct {
	s      *scanner.Scanner
	mode   selector.Mode
	errors diag.ErrorList
}

// ParseStyleSheet parses an input stream into a stylesheet.
//
// Invalid rules and declarations are dropped and their errors returned in
// the error list. A tokenizer error aborts parsing and is returned as err.
func ParseStyleSheet(s *scanner.Scanner, mode selector.Mode) (*ast.StyleSheet, diag.ErrorList, error) {
	p := &parser{s: s, mode: mode}
	rules, err := p.consumeRules(true)
	if err != nil {
		return nil, p.errors, err
	}
	return &ast.StyleSheet{Rules: rules}, p.errors, nil
}

// ParseRule parses a single qualified rule or at-rule. The rule must make up
// the entire input.
func ParseRule(s *scanner.Scanner, mode selector.Mode) (ast.Rule, diag.ErrorList, error) {
	p := &parser{s: s, mode: mode}

	s.SkipWhitespace()
	tok, err := s.Peek()
	if err != nil {
		return nil, nil, err
	} else if _, ok := tok.(*token.EOF); ok {
		return nil, nil, diag.New(diag.EndOfStream, tok.Position())
	}

	var r ast.Rule
	if _, ok := tok.(*token.AtKeyword); ok {
		if at, err := p.consumeAtRule(); err != nil {
			return nil, p.errors, err
		} else if at != nil {
			r = at
		}
	} else {
		if qr, err := p.consumeQualifiedRule(); err != nil {
			return nil, p.errors, err
		} else if qr != nil {
			r = qr
		}
	}

	if err := p.expectEOF(); err != nil {
		return nil, p.errors, err
	} else if r == nil {
		// The rule was dropped and its error is the last one recorded.
		if len(p.errors) == 0 {
			return nil, p.errors, diag.New(diag.ExpectedSelector, tok.Position())
		}
		return nil, p.errors, p.errors[len(p.errors)-1]
	}
	return r, p.errors, nil
}

// ParseDeclarations parses the contents of a block without its braces.
func ParseDeclarations(s *scanner.Scanner, mode selector.Mode) (*ast.Block, diag.ErrorList, error) {
	p := &parser{s: s, mode: mode}
	b, err := p.consumeBlockContents(false)
	if err != nil {
		return nil, p.errors, err
	}
	if tok, err := s.PeekNonBlank(); err != nil {
		return nil, p.errors, err
	} else if _, ok := tok.(*token.RBrace); ok {
		return nil, p.errors, diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected }")
	}
	return b, p.errors, nil
}

// ParseDeclaration parses a single name/value declaration. A trailing
// semicolon is allowed.
func ParseDeclaration(s *scanner.Scanner) (*ast.Declaration, error) {
	p := &parser{s: s}

	s.SkipWhitespace()
	tok, err := s.Peek()
	if err != nil {
		return nil, err
	} else if _, ok := tok.(*token.Ident); !ok {
		return nil, diag.ExpectedToken(tok.Position(), "property name")
	}

	d, err := p.consumeDeclaration(false)
	if err != nil {
		return nil, err
	} else if d == nil {
		return nil, p.errors[0]
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseSelectorList parses src as a complete selector list.
func ParseSelectorList(src string, mode selector.Mode) (selector.List, diag.ErrorList, error) {
	return selector.Parse(src, mode)
}

// expectEOF returns an error if anything other than whitespace remains.
func (p *parser) expectEOF() error {
	tok, err := p.s.PeekNonBlank()
	if err != nil {
		return err
	} else if _, ok := tok.(*token.EOF); !ok {
		return diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok))
	}
	return nil
}

// consumeRules consumes a list of rules until EOF.
func (p *parser) consumeRules(toplevel bool) (ast.Rules, error) {
	var a ast.Rules
	for {
		p.s.SkipWhitespace()
		tok, err := p.s.Peek()
		if err != nil {
			return nil, err
		}

		switch tok := tok.(type) {
		case *token.EOF:
			return a, nil
		case *token.CDO, *token.CDC:
			if toplevel {
				_, _ = p.s.Next()
				continue
			}
		case *token.RBrace:
			// A stray closing brace has no rule to close.
			_, _ = p.s.Next()
			p.errors.Add(diag.Newf(diag.UnknownSyntax, tok.Pos, "unexpected }"))
			continue
		case *token.AtKeyword:
			r, err := p.consumeAtRule()
			if err != nil {
				return nil, err
			} else if r != nil {
				a = append(a, r)
			}
			continue
		}

		r, err := p.consumeQualifiedRule()
		if err != nil {
			return nil, err
		} else if r != nil {
			a = append(a, r)
		}
	}
}

// consumeAtRule consumes a single at-rule. Unknown at-rules and at-rules in
// the wrong form are recorded as errors and skipped, returning nil.
func (p *parser) consumeAtRule() (*ast.AtRule, error) {
	tok, err := p.s.Next()
	if err != nil {
		return nil, err
	}
	at := tok.(*token.AtKeyword)
	r := &ast.AtRule{Name: strings.ToLower(at.Value), Pos: at.Pos}

	kind, ok := atRules[r.Name]
	if !ok {
		p.errors.Add(diag.Named(diag.UnknownAtRule, at.Pos, at.Value))
		return nil, p.skipRule()
	}

	// The prelude runs up to the block or the terminating semicolon.
	start := p.s.Pos()
	end, err := p.skipUntil(func(tok token.Token) bool {
		switch tok.(type) {
		case *token.LBrace, *token.Semicolon, *token.RBrace:
			return true
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	r.Prelude = strings.TrimSpace(p.s.Source()[start.Offset:end.Offset])

	tok, err = p.s.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.(type) {
	case *token.LBrace:
		if kind&blockAtRule == 0 {
			p.errors.Add(diag.Newf(diag.UnknownSyntax, tok.Position(), "@%s does not take a block", r.Name))
			return nil, p.skipRule()
		}
		_, _ = p.s.Next()
		if r.Block, err = p.consumeBlock(kind&descriptorAtRule != 0); err != nil {
			return nil, err
		}
		return r, nil

	default:
		if kind&statementAtRule == 0 {
			p.errors.Add(diag.ExpectedToken(tok.Position(), `"{"`))
			return nil, p.skipRule()
		}
		if _, ok := tok.(*token.Semicolon); ok {
			_, _ = p.s.Next()
		}
		return r, nil
	}
}

// consumeQualifiedRule consumes a selector list followed by a block. A rule
// whose prelude fails to parse is recorded as an error and skipped along
// with its block, returning nil.
func (p *parser) consumeQualifiedRule() (*ast.QualifiedRule, error) {
	r := &ast.QualifiedRule{Pos: p.s.Pos()}

	l, errs, err := selector.ParseList(p.s, p.mode)
	for _, e := range errs {
		p.errors.Add(e)
	}
	if err != nil {
		if diag.IsFatal(err) {
			return nil, err
		}
		p.errors.Add(err)
		return nil, p.skipRule()
	}
	r.Selectors = l

	tok, err := p.s.NextNonBlank()
	if err != nil {
		return nil, err
	} else if _, ok := tok.(*token.LBrace); !ok {
		p.errors.Add(diag.ExpectedToken(tok.Position(), `"{"`))
		return nil, p.skipRule()
	}

	if r.Block, err = p.consumeBlock(false); err != nil {
		return nil, err
	} else if len(r.Selectors) == 0 {
		// Every selector was dropped by the forgiving list.
		return nil, nil
	}
	return r, nil
}

// consumeBlock consumes the contents of a {-block along with the closing
// brace. The end of input also closes the block.
func (p *parser) consumeBlock(raw bool) (*ast.Block, error) {
	b, err := p.consumeBlockContents(raw)
	if err != nil {
		return nil, err
	}
	if tok, err := p.s.Peek(); err != nil {
		return nil, err
	} else if _, ok := tok.(*token.RBrace); ok {
		_, _ = p.s.Next()
	}
	return b, nil
}

// consumeBlockContents consumes declarations, at-rules and nested rules up
// to, but not including, a closing brace or EOF.
func (p *parser) consumeBlockContents(raw bool) (*ast.Block, error) {
	b := &ast.Block{}
	for {
		p.s.SkipWhitespace()
		tok, err := p.s.Peek()
		if err != nil {
			return nil, err
		}

		switch tok := tok.(type) {
		case *token.EOF, *token.RBrace:
			return b, nil

		case *token.Semicolon:
			_, _ = p.s.Next()

		case *token.AtKeyword:
			r, err := p.consumeAtRule()
			if err != nil {
				return nil, err
			} else if r != nil {
				b.Rules = append(b.Rules, r)
			}

		case *token.Ident:
			if !raw && !strings.HasPrefix(tok.Value, "--") {
				if nested, err := p.startsRule(); err != nil {
					return nil, err
				} else if nested {
					r, err := p.consumeQualifiedRule()
					if err != nil {
						return nil, err
					} else if r != nil {
						b.Rules = append(b.Rules, r)
					}
					continue
				}
			}

			d, err := p.consumeDeclaration(raw)
			if err != nil {
				return nil, err
			} else if d != nil {
				b.Declarations = append(b.Declarations, d)
			}

		default:
			if raw {
				p.errors.Add(diag.ExpectedToken(tok.Position(), "descriptor name"))
				if err := p.skipDeclaration(); err != nil {
					return nil, err
				}
				continue
			}

			r, err := p.consumeQualifiedRule()
			if err != nil {
				return nil, err
			} else if r != nil {
				b.Rules = append(b.Rules, r)
			}
		}
	}
}

// startsRule returns true if a "{" appears before the next ";" or "}" at
// the current nesting depth. The scanner position is left unchanged.
func (p *parser) startsRule() (bool, error) {
	m := p.s.Mark()
	defer p.s.Reset(m)

	var depth int
	for {
		tok, err := p.s.Next()
		if err != nil {
			return false, err
		}
		switch tok.(type) {
		case *token.Function, *token.LParen, *token.LBrack:
			depth++
		case *token.RParen, *token.RBrack:
			if depth > 0 {
				depth--
			}
		case *token.LBrace:
			if depth == 0 {
				return true, nil
			}
		case *token.Semicolon, *token.RBrace, *token.EOF:
			if depth == 0 {
				return false, nil
			}
		}
	}
}

// consumeDeclaration consumes a single declaration. If raw is set, or the
// declaration names a custom property, the value is kept as source text.
// Otherwise it is decoded with the property's grammar. An invalid
// declaration is recorded as an error and skipped, returning nil.
func (p *parser) consumeDeclaration(raw bool) (*ast.Declaration, error) {
	tok, err := p.s.Next()
	if err != nil {
		return nil, err
	}
	ident := tok.(*token.Ident)
	d := &ast.Declaration{Name: ident.Value, Pos: ident.Pos}
	if !d.Custom() {
		d.Name = strings.ToLower(d.Name)
	}

	// The next token must be a colon.
	if tok, err := p.s.NextNonBlank(); err != nil {
		return nil, err
	} else if _, ok := tok.(*token.Colon); !ok {
		p.errors.Add(diag.ExpectedToken(tok.Position(), `":"`))
		return nil, p.skipDeclaration()
	}
	p.s.SkipWhitespace()
	start := p.s.Pos()

	if !raw && !d.Custom() {
		if !property.Known(d.Name) {
			p.errors.Add(diag.Named(diag.UnknownProperty, ident.Pos, ident.Value))
			return nil, p.skipDeclaration()
		}
		if d.Value, err = property.Decode(d.Name, p.s); err != nil {
			if diag.IsFatal(err) {
				return nil, err
			}
			p.errors.Add(err)
			return nil, p.skipDeclaration()
		}
	}

	// Collect the remainder of the value as source text.
	end, err := p.skipUntil(func(tok token.Token) bool {
		switch tok.(type) {
		case *token.Semicolon, *token.RBrace:
			return true
		}
		return token.IsDelim(tok, '!')
	})
	if err != nil {
		return nil, err
	}
	d.Raw = strings.TrimSpace(p.s.Source()[start.Offset:end.Offset])

	// Check for a trailing "!important".
	if tok, err := p.s.Peek(); err != nil {
		return nil, err
	} else if token.IsDelim(tok, '!') {
		_, _ = p.s.Next()
		if _, err := value.Keyword(p.s, "important"); err != nil {
			if diag.IsFatal(err) {
				return nil, err
			}
			p.errors.Add(err)
			return nil, p.skipDeclaration()
		}
		d.Important = true
	}

	// Only the end of the declaration may follow.
	tok, err = p.s.PeekNonBlank()
	if err != nil {
		return nil, err
	}
	switch tok.(type) {
	case *token.Semicolon:
		_, _ = p.s.NextNonBlank()
	case *token.RBrace, *token.EOF:
	default:
		p.errors.Add(diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok)))
		return nil, p.skipDeclaration()
	}
	return d, nil
}

// skipUntil consumes tokens until stop returns true for a token at the
// current nesting depth, or EOF. The stopping token is not consumed. Returns
// the position of the stopping token.
func (p *parser) skipUntil(stop func(tok token.Token) bool) (token.Pos, error) {
	var depth int
	for {
		m := p.s.Mark()
		tok, err := p.s.Next()
		if err != nil {
			return token.Pos{}, err
		}

		if _, ok := tok.(*token.EOF); ok || (depth == 0 && stop(tok)) {
			p.s.Reset(m)
			return m.Pos(), nil
		}

		switch tok.(type) {
		case *token.Function, *token.LParen, *token.LBrack, *token.LBrace:
			depth++
		case *token.RParen, *token.RBrack, *token.RBrace:
			if depth > 0 {
				depth--
			}
		}
	}
}

// skipDeclaration consumes tokens through the next top-level semicolon. A
// closing brace is left for the enclosing block.
func (p *parser) skipDeclaration() error {
	if _, err := p.skipUntil(func(tok token.Token) bool {
		switch tok.(type) {
		case *token.Semicolon, *token.RBrace:
			return true
		}
		return false
	}); err != nil {
		return err
	}

	tok, err := p.s.Peek()
	if err != nil {
		return err
	} else if _, ok := tok.(*token.Semicolon); ok {
		_, _ = p.s.Next()
	}
	return nil
}

// skipRule consumes tokens through the end of the current rule: a
// top-level semicolon or a complete {-block. A closing brace that belongs
// to an enclosing block is left in place.
func (p *parser) skipRule() error {
	if _, err := p.skipUntil(func(tok token.Token) bool {
		switch tok.(type) {
		case *token.Semicolon, *token.LBrace, *token.RBrace:
			return true
		}
		return false
	}); err != nil {
		return err
	}

	tok, err := p.s.Peek()
	if err != nil {
		return err
	}
	switch tok.(type) {
	case *token.LBrace:
		_, _ = p.s.Next()
		if _, err := p.skipUntil(func(tok token.Token) bool {
			_, ok := tok.(*token.RBrace)
			return ok
		}); err != nil {
			return err
		}
		if tok, err := p.s.Peek(); err != nil {
			return err
		} else if _, ok := tok.(*token.RBrace); ok {
			_, _ = p.s.Next()
		}
	case *token.Semicolon:
		_, _ = p.s.Next()
	}
	return nil
}
