// Package value implements a small combinator framework for parsing typed
// property values from a token stream, along with the concrete grammars for
// numbers, percentages, angles, lengths, colors and shapes.
//
// Every production is a Parser. A production that fails rewinds the scanner
// to where it started so the caller may try an alternative.
package value

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// Parser is a grammar production that consumes tokens from s.
type Parser[T any] func(s *scanner.Scanner) (T, error)

// Try runs p against s and rewinds s to its prior position if p fails.
func Try[T any](s *scanner.Scanner, p Parser[T]) (T, error) {
	m := s.Mark()
	v, err := p(s)
	if err != nil {
		s.Reset(m)
	}
	return v, err
}

// Optional runs p and returns nil if it fails. Tokenizer errors are never
// swallowed and are returned to the caller.
func Optional[T any](s *scanner.Scanner, p Parser[T]) (*T, error) {
	v, err := Try(s, p)
	if err != nil {
		if diag.IsFatal(err) {
			return nil, err
		}
		return nil, nil
	}
	return &v, nil
}

// ParseAll runs p against s and requires that only whitespace and comments
// remain afterward.
func ParseAll[T any](s *scanner.Scanner, p Parser[T]) (T, error) {
	var zero T
	v, err := p(s)
	if err != nil {
		return zero, err
	}

	tok, err := s.PeekNonBlank()
	if err != nil {
		return zero, err
	} else if _, ok := tok.(*token.EOF); !ok {
		return zero, diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok))
	}
	return v, nil
}

// ParseString parses all of src with p.
func ParseString[T any](src string, p Parser[T]) (T, error) {
	return ParseAll(scanner.New(src), p)
}

// Next returns the next non-blank token. Reaching the end of input is
// reported as an EndOfStream error along with the EOF token.
func Next(s *scanner.Scanner) (token.Token, error) {
	tok, err := s.NextNonBlank()
	if err != nil {
		return tok, err
	} else if _, ok := tok.(*token.EOF); ok {
		return tok, diag.New(diag.EndOfStream, tok.Position())
	}
	return tok, nil
}

// Keyword consumes an identifier equal to one of names, ignoring ASCII case,
// and returns the matching entry from names.
func Keyword(s *scanner.Scanner, names ...string) (string, error) {
	m := s.Mark()
	tok, err := Next(s)
	if diag.IsFatal(err) {
		return "", err
	}
	if ident, ok := tok.(*token.Ident); ok {
		for _, name := range names {
			if strings.EqualFold(ident.Value, name) {
				return name, nil
			}
		}
	}
	s.Reset(m)
	return "", diag.Keywords(tok.Position(), names...)
}

// Delim consumes a delimiter token with the value ch.
func Delim(s *scanner.Scanner, ch rune) error {
	m := s.Mark()
	tok, err := Next(s)
	if diag.IsFatal(err) {
		return err
	} else if !token.IsDelim(tok, ch) {
		s.Reset(m)
		return diag.ExpectedToken(tok.Position(), strconv.Quote(string(ch)))
	}
	return nil
}

// Comma consumes an optional comma and reports whether one was present.
func Comma(s *scanner.Scanner) (bool, error) {
	m := s.Mark()
	tok, err := s.NextNonBlank()
	if err != nil {
		s.Reset(m)
		return false, err
	} else if _, ok := tok.(*token.Comma); !ok {
		s.Reset(m)
		return false, nil
	}
	return true, nil
}

// peekPos returns the position of the next non-blank token.
func peekPos(s *scanner.Scanner) token.Pos {
	if tok, _ := s.PeekNonBlank(); tok != nil {
		return tok.Position()
	}
	return s.Pos()
}

// closeParen consumes the ")" that ends a function's argument list.
func closeParen(s *scanner.Scanner) error {
	tok, err := Next(s)
	if diag.IsFatal(err) {
		return err
	} else if _, ok := tok.(*token.RParen); !ok {
		return diag.ExpectedToken(tok.Position(), `")"`)
	}
	return nil
}

// rewind resets s to m and returns err with a zero value.
func rewind[T any](s *scanner.Scanner, m scanner.Mark, err error) (T, error) {
	s.Reset(m)
	var zero T
	return zero, err
}

// formatFloat returns the shortest decimal representation of v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// lower returns s with ASCII letters lowercased.
func lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return strings.ToLower(s)
		}
	}
	return s
}
