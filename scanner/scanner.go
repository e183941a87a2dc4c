package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/token"
)

// eof represents the end of the source text.
const eof rune = -1

// Scanner implements a CSS tokenizer over an in-memory source buffer.
//
// The scanner doubles as the parse cursor: grammars pull tokens with Next and
// backtrack with Mark and Reset. Token values borrow substrings of the source
// wherever no escape decoding was required.
type Scanner struct {
	src string
	cur token.Pos // position of the next code point
}

// Mark is a snapshot of the scanner position returned by Mark.
type Mark struct {
	pos token.Pos
}

// Pos returns the position captured by the mark.
func (m Mark) Pos() token.Pos { return m.pos }

// New returns a new instance of Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{
		src: src,
		cur: token.Pos{Offset: 0, Line: 1, Column: 1},
	}
}

// Source returns the full source text.
func (s *Scanner) Source() string { return s.src }

// Line returns the one-based line n of the source without its terminator.
func (s *Scanner) Line(n int) string { return diag.SourceLine(s.src, n) }

// Pos returns the position of the next code point.
func (s *Scanner) Pos() token.Pos { return s.cur }

// Mark returns a checkpoint that can later be passed to Reset.
func (s *Scanner) Mark() Mark { return Mark{pos: s.cur} }

// Reset rewinds the scanner to a checkpoint, restoring offset, line and
// column together.
func (s *Scanner) Reset(m Mark) { s.cur = m.pos }

// Next advances past one token and returns it. At the end of input an EOF
// token is returned repeatedly. Tokenizer failures (bad string, bad url,
// unterminated comment, invalid escape) return both a sentinel token and an
// error.
func (s *Scanner) Next() (token.Token, error) {
	pos := s.cur
	ch := s.peek(0)

	switch {
	case ch == eof:
		return &token.EOF{Pos: pos}, nil
	case isWhitespace(ch):
		return s.scanWhitespace(), nil
	case ch == '"' || ch == '\'':
		return s.scanString()
	case ch == '#':
		return s.scanHash(), nil
	case ch == '/' && s.peek(1) == '*':
		return s.scanComment()
	case ch == '<' && s.peek(1) == '!' && s.peek(2) == '-' && s.peek(3) == '-':
		s.skip(4)
		return &token.CDO{Pos: pos}, nil
	case ch == '-':
		// A hyphen may start a number, a CDC, or an identifier. Numbers are
		// checked first so that "-1" is never an identifier.
		if startsNumber(ch, s.peek(1), s.peek(2)) {
			return s.scanNumeric(), nil
		} else if s.peek(1) == '-' && s.peek(2) == '>' {
			s.skip(3)
			return &token.CDC{Pos: pos}, nil
		} else if startsIdent(ch, s.peek(1), s.peek(2)) {
			return s.scanIdent()
		}
	case ch == '+' || ch == '.' || isDigit(ch):
		if startsNumber(ch, s.peek(1), s.peek(2)) {
			return s.scanNumeric(), nil
		}
	case ch == '@':
		if startsIdent(s.peek(1), s.peek(2), s.peek(3)) {
			s.read()
			return &token.AtKeyword{Value: s.scanName(), Pos: pos}, nil
		}
	case ch == '\\':
		if validEscape(ch, s.peek(1)) {
			return s.scanIdent()
		}
		s.read()
		return &token.Delim{Value: ch, Pos: pos}, diag.Newf(diag.InvalidEscape, pos, "backslash followed by newline")
	case isNameStart(ch):
		return s.scanIdent()
	case ch == ':':
		s.read()
		return &token.Colon{Pos: pos}, nil
	case ch == ';':
		s.read()
		return &token.Semicolon{Pos: pos}, nil
	case ch == ',':
		s.read()
		return &token.Comma{Pos: pos}, nil
	case ch == '(':
		s.read()
		return &token.LParen{Pos: pos}, nil
	case ch == ')':
		s.read()
		return &token.RParen{Pos: pos}, nil
	case ch == '[':
		s.read()
		return &token.LBrack{Pos: pos}, nil
	case ch == ']':
		s.read()
		return &token.RBrack{Pos: pos}, nil
	case ch == '{':
		s.read()
		return &token.LBrace{Pos: pos}, nil
	case ch == '}':
		s.read()
		return &token.RBrace{Pos: pos}, nil
	}

	// Anything unmatched is a single code point delimiter.
	s.read()
	return &token.Delim{Value: ch, Pos: pos}, nil
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (token.Token, error) {
	m := s.Mark()
	tok, err := s.Next()
	s.Reset(m)
	return tok, err
}

// NextNonBlank skips whitespace and comments and returns the next token.
func (s *Scanner) NextNonBlank() (token.Token, error) {
	for {
		tok, err := s.Next()
		if err != nil || !token.IsBlank(tok) {
			return tok, err
		}
	}
}

// PeekNonBlank returns the next token that is not whitespace or a comment.
// The scanner position is left unchanged.
func (s *Scanner) PeekNonBlank() (token.Token, error) {
	m := s.Mark()
	tok, err := s.NextNonBlank()
	s.Reset(m)
	return tok, err
}

// SkipWhitespace consumes whitespace and comments. It returns true if at
// least one whitespace token was consumed. A tokenizer error stops the skip
// before the failing token so the next call to Next reports it.
func (s *Scanner) SkipWhitespace() bool {
	var ws bool
	for {
		m := s.Mark()
		tok, err := s.Next()
		if err != nil || !token.IsBlank(tok) {
			s.Reset(m)
			return ws
		}
		if _, ok := tok.(*token.Whitespace); ok {
			ws = true
		}
	}
}

// Done returns true if only whitespace and comments remain.
func (s *Scanner) Done() bool {
	tok, err := s.PeekNonBlank()
	if err != nil {
		return false
	}
	_, ok := tok.(*token.EOF)
	return ok
}

// Tokenize returns every token in src up to, but excluding, EOF.
// Scanning stops at the first tokenizer error.
func Tokenize(src string) ([]token.Token, error) {
	s := New(src)
	var a []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return a, err
		} else if _, ok := tok.(*token.EOF); ok {
			return a, nil
		}
		a = append(a, tok)
	}
}

// scanWhitespace consumes a maximal run of whitespace.
func (s *Scanner) scanWhitespace() token.Token {
	pos := s.cur
	for isWhitespace(s.peek(0)) {
		s.read()
	}
	return &token.Whitespace{Value: s.src[pos.Offset:s.cur.Offset], Pos: pos}
}

// scanString consumes a quoted string. (§4.3.5)
//
// This function consumes all code points and escaped code points up until
// a matching, unescaped ending quote. End of input closes the string without
// an error. An unescaped newline produces a bad-string token and an error;
// the newline itself is left for the next token.
func (s *Scanner) scanString() (token.Token, error) {
	pos := s.cur
	ending := s.read()

	var buf strings.Builder
	for {
		ch := s.peek(0)
		switch {
		case ch == eof:
			return &token.String{Value: buf.String(), Ending: ending, Pos: pos}, nil
		case ch == ending:
			s.read()
			return &token.String{Value: buf.String(), Ending: ending, Pos: pos}, nil
		case ch == '\n':
			return &token.BadString{Pos: pos}, diag.New(diag.BadString, pos)
		case ch == '\\':
			switch s.peek(1) {
			case eof:
				s.read()
			case '\n':
				// Escaped newline is a line continuation.
				s.skip(2)
			default:
				s.read()
				buf.WriteRune(s.scanEscape())
			}
		default:
			buf.WriteRune(s.read())
		}
	}
}

// scanNumeric consumes a number, percentage or dimension token. (§4.3.3)
func (s *Scanner) scanNumeric() token.Token {
	pos := s.cur
	num, integer, repr := s.scanNumber()

	// If the number is immediately followed by an identifier then scan dimension.
	if startsIdent(s.peek(0), s.peek(1), s.peek(2)) {
		unit := s.scanName()
		return &token.Dimension{Value: num, Integer: integer, Unit: unit, Repr: repr, Pos: pos}
	}

	// If the number is followed by a percent sign then return a percentage.
	if s.peek(0) == '%' {
		s.read()
		return &token.Percentage{Value: num, Integer: integer, Repr: repr, Pos: pos}
	}

	return &token.Number{Value: num, Integer: integer, Repr: repr, Pos: pos}
}

// scanNumber consumes [+-]? digit* (.digit+)? ([eE][+-]?digit+)? and returns
// its value, whether it is an integer, and its literal text. (§4.3.12)
func (s *Scanner) scanNumber() (num float64, integer bool, repr string) {
	start := s.cur.Offset
	integer = true

	// If initial code point is + or - then store it.
	if ch := s.peek(0); ch == '+' || ch == '-' {
		s.read()
	}

	// Read as many digits as possible.
	s.scanDigits()

	// If next code points are a full stop and digit then consume them.
	if s.peek(0) == '.' && isDigit(s.peek(1)) {
		integer = false
		s.read()
		s.scanDigits()
	}

	// Consume scientific notation (e0, e+0, e-0, E0, E+0, E-0).
	if ch := s.peek(0); ch == 'e' || ch == 'E' {
		if ch1 := s.peek(1); isDigit(ch1) {
			integer = false
			s.read()
			s.scanDigits()
		} else if (ch1 == '+' || ch1 == '-') && isDigit(s.peek(2)) {
			integer = false
			s.skip(2)
			s.scanDigits()
		}
	}

	repr = s.src[start:s.cur.Offset]
	num, _ = strconv.ParseFloat(repr, 64)
	return num, integer, repr
}

// scanDigits consumes a contiguous series of digits.
func (s *Scanner) scanDigits() {
	for isDigit(s.peek(0)) {
		s.read()
	}
}

// scanComment consumes all characters up to "*/", inclusive.
// This function assumes that the scanner is positioned on the initial "/*".
func (s *Scanner) scanComment() (token.Token, error) {
	pos := s.cur
	s.skip(2)
	start := s.cur.Offset
	for {
		ch := s.peek(0)
		if ch == eof {
			return &token.Comment{Value: s.src[start:s.cur.Offset], Pos: pos}, diag.New(diag.UnterminatedComment, pos)
		} else if ch == '*' && s.peek(1) == '/' {
			value := s.src[start:s.cur.Offset]
			s.skip(2)
			return &token.Comment{Value: value, Pos: pos}, nil
		}
		s.read()
	}
}

// scanHash consumes a hash token.
//
// It will return a hash token if the next code points are a name or valid escape.
// It will return a delim token otherwise.
// The hash's ID flag is set if its value is an identifier.
func (s *Scanner) scanHash() token.Token {
	pos := s.cur
	s.read()

	// If there is a name following the hash then we have a hash token.
	if ch := s.peek(0); isName(ch) || validEscape(ch, s.peek(1)) {
		id := startsIdent(ch, s.peek(1), s.peek(2))
		return &token.Hash{Value: s.scanName(), ID: id, Pos: pos}
	}

	// If there is no name following the hash symbol then return delim-token.
	return &token.Delim{Value: '#', Pos: pos}
}

// scanName consumes a name.
// Consumes contiguous name code points and escaped code points. The source
// is borrowed unless an escape or replacement character forces a copy.
func (s *Scanner) scanName() string {
	start := s.cur.Offset
	var buf *strings.Builder
	for {
		ch := s.peek(0)
		if isName(ch) {
			if buf == nil && ch == utf8.RuneError {
				buf = &strings.Builder{}
				buf.WriteString(s.src[start:s.cur.Offset])
			}
			s.read()
			if buf != nil {
				buf.WriteRune(ch)
			}
		} else if validEscape(ch, s.peek(1)) {
			if buf == nil {
				buf = &strings.Builder{}
				buf.WriteString(s.src[start:s.cur.Offset])
			}
			s.read()
			buf.WriteRune(s.scanEscape())
		} else {
			break
		}
	}
	if buf != nil {
		return buf.String()
	}
	return s.src[start:s.cur.Offset]
}

// scanIdent consumes a ident-like token.
// This function can return an ident, function, url, or bad-url.
func (s *Scanner) scanIdent() (token.Token, error) {
	pos := s.cur
	v := s.scanName()

	if s.peek(0) != '(' {
		return &token.Ident{Value: v, Pos: pos}, nil
	}
	s.read()

	// A quoted url is left to the grammar as a function call.
	if strings.EqualFold(v, "url") {
		i := 0
		for isWhitespace(s.peek(i)) {
			i++
		}
		if ch := s.peek(i); ch != '"' && ch != '\'' {
			return s.scanURL(pos)
		}
	}
	return &token.Function{Value: v, Pos: pos}, nil
}

// scanURL consumes the contents of an unquoted url.
// This function assumes that the "url(" has just been consumed.
func (s *Scanner) scanURL(pos token.Pos) (token.Token, error) {
	for isWhitespace(s.peek(0)) {
		s.read()
	}

	var buf strings.Builder
	for {
		ch := s.peek(0)
		switch {
		case ch == ')':
			s.read()
			return &token.URL{Value: buf.String(), Pos: pos}, nil
		case ch == eof:
			return &token.URL{Value: buf.String(), Pos: pos}, nil
		case isWhitespace(ch):
			for isWhitespace(s.peek(0)) {
				s.read()
			}
			if next := s.peek(0); next == ')' || next == eof {
				if next == ')' {
					s.read()
				}
				return &token.URL{Value: buf.String(), Pos: pos}, nil
			}
			s.scanBadURL()
			return &token.BadURL{Pos: pos}, diag.Newf(diag.BadURL, pos, "whitespace in url")
		case ch == '"' || ch == '\'' || ch == '(' || isNonPrintable(ch):
			s.scanBadURL()
			return &token.BadURL{Pos: pos}, diag.Newf(diag.BadURL, pos, "invalid url code point: %q (%U)", ch, ch)
		case ch == '\\':
			if !validEscape(ch, s.peek(1)) {
				s.scanBadURL()
				return &token.BadURL{Pos: pos}, diag.Newf(diag.BadURL, pos, "unescaped \\ in url")
			}
			s.read()
			buf.WriteRune(s.scanEscape())
		default:
			buf.WriteRune(s.read())
		}
	}
}

// scanBadURL recovers the scanner from a malformed URL token.
// We simply consume all non-) and non-eof characters and escaped code points.
func (s *Scanner) scanBadURL() {
	for {
		ch := s.peek(0)
		if ch == eof {
			return
		} else if ch == ')' {
			s.read()
			return
		} else if validEscape(ch, s.peek(1)) {
			s.read()
			s.scanEscape()
			continue
		}
		s.read()
	}
}

// scanEscape consumes an escaped code point. The backslash has already been
// consumed. A code point that is not a hex digit stands for itself, so "\g"
// is "g". (§4.3.7)
func (s *Scanner) scanEscape() rune {
	ch := s.peek(0)
	if isHexDigit(ch) {
		var v int
		for i := 0; i < 6 && isHexDigit(s.peek(0)); i++ {
			v = v*16 + hexValue(s.read())
		}
		if isWhitespace(s.peek(0)) {
			s.read()
		}
		if v == 0 || (v >= 0xD800 && v <= 0xDFFF) || v > utf8.MaxRune {
			return utf8.RuneError
		}
		return rune(v)
	} else if ch == eof {
		return utf8.RuneError
	}
	return s.read()
}

// read consumes the next code point and updates line and column.
func (s *Scanner) read() rune {
	ch, w := s.decode(s.cur.Offset)
	if w == 0 {
		return eof
	}
	s.cur.Offset += w
	if ch == '\n' {
		s.cur.Line++
		s.cur.Column = 1
	} else {
		s.cur.Column++
	}
	return ch
}

// skip consumes n code points.
func (s *Scanner) skip(n int) {
	for i := 0; i < n; i++ {
		s.read()
	}
}

// peek returns the code point n positions ahead without consuming anything.
func (s *Scanner) peek(n int) rune {
	off := s.cur.Offset
	for i := 0; ; i++ {
		ch, w := s.decode(off)
		if w == 0 {
			return eof
		} else if i == n {
			return ch
		}
		off += w
	}
}

// decode returns the preprocessed code point at off and its width in bytes.
// CR, CRLF and FF become LF and NULL becomes U+FFFD. (§3.3)
func (s *Scanner) decode(off int) (rune, int) {
	if off >= len(s.src) {
		return eof, 0
	}
	switch b := s.src[off]; b {
	case '\r':
		if off+1 < len(s.src) && s.src[off+1] == '\n' {
			return '\n', 2
		}
		return '\n', 1
	case '\f':
		return '\n', 1
	case 0:
		return utf8.RuneError, 1
	}
	if b := s.src[off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s.src[off:])
}

// startsNumber checks if three code points would start a number.
func startsNumber(c0, c1, c2 rune) bool {
	switch {
	case c0 == '+' || c0 == '-':
		return isDigit(c1) || (c1 == '.' && isDigit(c2))
	case c0 == '.':
		return isDigit(c1)
	}
	return isDigit(c0)
}

// startsIdent checks if three code points would start an identifier.
func startsIdent(c0, c1, c2 rune) bool {
	switch {
	case c0 == '-':
		return isNameStart(c1) || c1 == '-' || validEscape(c1, c2)
	case c0 == '\\':
		return validEscape(c0, c1)
	}
	return isNameStart(c0)
}

// validEscape checks if two code points are a valid escape.
func validEscape(c0, c1 rune) bool {
	return c0 == '\\' && c1 != '\n'
}

// isWhitespace returns true if the rune is a space, tab, or newline.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9')
}

// isHexDigit returns true if the rune is a hex digit.
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	}
	return int(ch-'A') + 10
}

// isNonASCII returns true if the rune is greater than U+0080.
func isNonASCII(ch rune) bool {
	return ch >= '\u0080'
}

// isNameStart returns true if the rune can start a name.
func isNameStart(ch rune) bool {
	return isLetter(ch) || isNonASCII(ch) || ch == '_'
}

// isName returns true if the character is a name code point.
func isName(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

// isNonPrintable returns true if the character is non-printable.
func isNonPrintable(ch rune) bool {
	return (ch >= '\u0000' && ch <= '\u0008') || ch == '\u000B' || (ch >= '\u000E' && ch <= '\u001F') || ch == '\u007F'
}
