package token

import (
	"strconv"
	"strings"
)

// Token represents a lexical token.
type Token interface {
	token()

	// Position returns the location of the first code point of the token.
	Position() Pos

	// String returns the token as it would be written in source text.
	String() string
}

func (_ *Ident) token()      {}
func (_ *Function) token()   {}
func (_ *AtKeyword) token()  {}
func (_ *Hash) token()       {}
func (_ *String) token()     {}
func (_ *BadString) token()  {}
func (_ *URL) token()        {}
func (_ *BadURL) token()     {}
func (_ *Delim) token()      {}
func (_ *Number) token()     {}
func (_ *Percentage) token() {}
func (_ *Dimension) token()  {}
func (_ *Whitespace) token() {}
func (_ *Comment) token()    {}
func (_ *CDO) token()        {}
func (_ *CDC) token()        {}
func (_ *Colon) token()      {}
func (_ *Semicolon) token()  {}
func (_ *Comma) token()      {}
func (_ *LBrack) token()     {}
func (_ *RBrack) token()     {}
func (_ *LParen) token()     {}
func (_ *RParen) token()     {}
func (_ *LBrace) token()     {}
func (_ *RBrace) token()     {}
func (_ *EOF) token()        {}

// Ident is an identifier such as "color" or "--custom".
type Ident struct {
	Value string
	Pos   Pos
}

func (t *Ident) Position() Pos  { return t.Pos }
func (t *Ident) String() string { return t.Value }

// Function is an identifier immediately followed by "(".
// The Value does not include the parenthesis.
type Function struct {
	Value string
	Pos   Pos
}

func (t *Function) Position() Pos  { return t.Pos }
func (t *Function) String() string { return t.Value + "(" }

// AtKeyword is "@" followed by an identifier. Value excludes the "@".
type AtKeyword struct {
	Value string
	Pos   Pos
}

func (t *AtKeyword) Position() Pos  { return t.Pos }
func (t *AtKeyword) String() string { return "@" + t.Value }

// Hash is "#" followed by a name. ID is set when the name is also a valid
// identifier ("id" type flag); otherwise the hash is "unrestricted".
type Hash struct {
	Value string
	ID    bool
	Pos   Pos
}

func (t *Hash) Position() Pos  { return t.Pos }
func (t *Hash) String() string { return "#" + t.Value }

// String is a quoted string. Value holds the decoded contents and Ending the
// quote character that delimited it.
type String struct {
	Value  string
	Ending rune
	Pos    Pos
}

func (t *String) Position() Pos { return t.Pos }
func (t *String) String() string {
	q := t.Ending
	if q == 0 {
		q = '"'
	}
	r := strings.NewReplacer(`\`, `\\`, string(q), `\`+string(q), "\n", `\a `)
	return string(q) + r.Replace(t.Value) + string(q)
}

// BadString is emitted when a string contains an unescaped newline.
type BadString struct {
	Pos Pos
}

func (t *BadString) Position() Pos  { return t.Pos }
func (t *BadString) String() string { return "<bad-string>" }

// URL is an unquoted url(...) literal.
type URL struct {
	Value string
	Pos   Pos
}

func (t *URL) Position() Pos  { return t.Pos }
func (t *URL) String() string { return "url(" + t.Value + ")" }

// BadURL is emitted when an unquoted url(...) contains invalid code points.
type BadURL struct {
	Pos Pos
}

func (t *BadURL) Position() Pos  { return t.Pos }
func (t *BadURL) String() string { return "<bad-url>" }

// Delim is any single code point that does not start another token.
type Delim struct {
	Value rune
	Pos   Pos
}

func (t *Delim) Position() Pos  { return t.Pos }
func (t *Delim) String() string { return string(t.Value) }

// Number is a numeric literal. Integer is set when the source had neither a
// fractional part nor an exponent. Repr is the literal source text.
type Number struct {
	Value   float64
	Integer bool
	Repr    string
	Pos     Pos
}

func (t *Number) Position() Pos  { return t.Pos }
func (t *Number) String() string { return repr(t.Repr, t.Value) }

// Signed returns true if the literal started with an explicit "+" or "-".
func (t *Number) Signed() bool {
	return strings.HasPrefix(t.Repr, "+") || strings.HasPrefix(t.Repr, "-")
}

// Int returns the number as an int. Returns false if the number is not an
// integer or does not fit in an int.
func (t *Number) Int() (int, bool) { return toInt(t.Integer, t.Repr, t.Value) }

// Percentage is a number immediately followed by "%".
type Percentage struct {
	Value   float64
	Integer bool
	Repr    string
	Pos     Pos
}

func (t *Percentage) Position() Pos  { return t.Pos }
func (t *Percentage) String() string { return repr(t.Repr, t.Value) + "%" }

// Dimension is a number immediately followed by an identifier unit.
type Dimension struct {
	Value   float64
	Integer bool
	Unit    string
	Repr    string
	Pos     Pos
}

func (t *Dimension) Position() Pos  { return t.Pos }
func (t *Dimension) String() string { return repr(t.Repr, t.Value) + t.Unit }

// Int returns the numeric part as an int. Returns false if it is not an
// integer or does not fit in an int.
func (t *Dimension) Int() (int, bool) { return toInt(t.Integer, t.Repr, t.Value) }

// Whitespace is a maximal run of whitespace.
type Whitespace struct {
	Value string
	Pos   Pos
}

func (t *Whitespace) Position() Pos  { return t.Pos }
func (t *Whitespace) String() string { return t.Value }

// Comment is a "/* ... */" comment. Value excludes the delimiters.
type Comment struct {
	Value string
	Pos   Pos
}

func (t *Comment) Position() Pos  { return t.Pos }
func (t *Comment) String() string { return "/*" + t.Value + "*/" }

type CDO struct{ Pos Pos }

func (t *CDO) Position() Pos  { return t.Pos }
func (t *CDO) String() string { return "<!--" }

type CDC struct{ Pos Pos }

func (t *CDC) Position() Pos  { return t.Pos }
func (t *CDC) String() string { return "-->" }

type Colon struct{ Pos Pos }

func (t *Colon) Position() Pos  { return t.Pos }
func (t *Colon) String() string { return ":" }

type Semicolon struct{ Pos Pos }

func (t *Semicolon) Position() Pos  { return t.Pos }
func (t *Semicolon) String() string { return ";" }

type Comma struct{ Pos Pos }

func (t *Comma) Position() Pos  { return t.Pos }
func (t *Comma) String() string { return "," }

type LBrack struct{ Pos Pos }

func (t *LBrack) Position() Pos  { return t.Pos }
func (t *LBrack) String() string { return "[" }

type RBrack struct{ Pos Pos }

func (t *RBrack) Position() Pos  { return t.Pos }
func (t *RBrack) String() string { return "]" }

type LParen struct{ Pos Pos }

func (t *LParen) Position() Pos  { return t.Pos }
func (t *LParen) String() string { return "(" }

type RParen struct{ Pos Pos }

func (t *RParen) Position() Pos  { return t.Pos }
func (t *RParen) String() string { return ")" }

type LBrace struct{ Pos Pos }

func (t *LBrace) Position() Pos  { return t.Pos }
func (t *LBrace) String() string { return "{" }

type RBrace struct{ Pos Pos }

func (t *RBrace) Position() Pos  { return t.Pos }
func (t *RBrace) String() string { return "}" }

// EOF marks the end of the input. It is returned repeatedly once reached.
type EOF struct{ Pos Pos }

func (t *EOF) Position() Pos  { return t.Pos }
func (t *EOF) String() string { return "EOF" }

// Pos specifies the location of a token in the source text.
// Offset is a zero-based byte offset; Line and Column are one-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// String returns the position formatted as "line:column".
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// IsBlank returns true if tok is whitespace or a comment.
func IsBlank(tok Token) bool {
	switch tok.(type) {
	case *Whitespace, *Comment:
		return true
	}
	return false
}

// IsDelim returns true if tok is a delimiter with the given value.
func IsDelim(tok Token, ch rune) bool {
	d, ok := tok.(*Delim)
	return ok && d.Value == ch
}

// Name returns a short human readable name for the kind of tok.
func Name(tok Token) string {
	switch tok := tok.(type) {
	case *Ident:
		return "identifier"
	case *Function:
		return "function"
	case *AtKeyword:
		return "at-keyword"
	case *Hash:
		return "hash"
	case *String:
		return "string"
	case *BadString:
		return "bad-string"
	case *URL:
		return "url"
	case *BadURL:
		return "bad-url"
	case *Delim:
		return strconv.Quote(string(tok.Value))
	case *Number:
		return "number"
	case *Percentage:
		return "percentage"
	case *Dimension:
		return "dimension"
	case *Whitespace:
		return "whitespace"
	case *Comment:
		return "comment"
	case *EOF:
		return "end of input"
	case nil:
		return "nothing"
	}
	return strconv.Quote(tok.String())
}

func repr(s string, v float64) string {
	if s != "" {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// toInt parses the literal text of an integer so that digits beyond the
// precision of a float64 are kept.
func toInt(integer bool, s string, v float64) (int, bool) {
	if !integer {
		return 0, false
	}
	n, err := strconv.Atoi(repr(s, v))
	return n, err == nil
}
