package selector

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/token"
	"github.com/benbjohnson/cssengine/value"
)

// Parity selects alternating candidates. The zero value means the formula
// is functional.
type Parity int

const (
	Functional Parity = iota
	Odd
	Even
)

// Nth is the argument of :nth-child() and its siblings. It is either a
// Parity or a functional formula of Step and Offset, optionally restricted
// to the candidates matching Of.
type Nth struct {
	Parity Parity
	Step   int
	Offset int
	Of     Compound
}

func (n Nth) String() string {
	switch n.Parity {
	case Odd:
		return "odd"
	case Even:
		return "even"
	}

	var buf strings.Builder
	switch n.Step {
	case 0:
		buf.WriteString(strconv.Itoa(n.Offset))
	case 1:
		buf.WriteString("n")
	case -1:
		buf.WriteString("-n")
	default:
		buf.WriteString(strconv.Itoa(n.Step) + "n")
	}
	if n.Step != 0 && n.Offset > 0 {
		buf.WriteString("+" + strconv.Itoa(n.Offset))
	}
	if n.Of != nil {
		buf.WriteString(" of " + n.Of.String())
	}
	return buf.String()
}

// SelectNth returns the candidates of a selected by nth.
//
// Selection works on the order of a rather than on one-based indices: Odd
// skips the first candidate and takes every second one after it, Even takes
// every second candidate starting with the first. A functional formula
// first filters a by Of, then skips max(0, Offset-1) candidates and takes
// every Step-th one. A Step of zero or less takes the first Offset
// candidates.
func SelectNth[N Node](a []N, nth Nth) []N {
	var other []N
	switch nth.Parity {
	case Odd:
		for i := 1; i < len(a); i += 2 {
			other = append(other, a[i])
		}
		return other
	case Even:
		for i := 0; i < len(a); i += 2 {
			other = append(other, a[i])
		}
		return other
	}

	if nth.Of != nil {
		filtered := make([]N, 0, len(a))
		for _, n := range a {
			if nth.Of.Match(n) {
				filtered = append(filtered, n)
			}
		}
		a = filtered
	}

	if nth.Step <= 0 {
		if nth.Offset < len(a) {
			return a[:nth.Offset:nth.Offset]
		}
		return a
	}

	for i := max(0, nth.Offset-1); i < len(a); i += nth.Step {
		other = append(other, a[i])
	}
	return other
}

// parseNth parses an nth formula: "odd", "even", or an optional step
// followed by "n" and an optional non-negative offset, then an optional
// "of <compound>" clause.
func (p *parser) parseNth() (Nth, error) {
	var nth Nth

	tok, err := value.Next(p.s)
	if diag.IsFatal(err) {
		return nth, err
	}

	switch tok := tok.(type) {
	case *token.Ident:
		switch strings.ToLower(tok.Value) {
		case "odd":
			nth.Parity = Odd
			return nth, nil
		case "even":
			nth.Parity = Even
			return nth, nil
		case "n":
			nth.Step = 1
		case "-n":
			nth.Step = -1
		default:
			return nth, invalidNth(tok.Pos, tok.Value)
		}

	case *token.Delim:
		if tok.Value != '+' {
			return nth, invalidNth(tok.Pos, tok.String())
		}
		next, err := p.s.Next()
		if err != nil {
			return nth, err
		} else if ident, ok := next.(*token.Ident); !ok || !strings.EqualFold(ident.Value, "n") {
			return nth, invalidNth(tok.Pos, "+"+next.String())
		}
		nth.Step = 1

	case *token.Dimension:
		if !tok.Integer || !strings.EqualFold(tok.Unit, "n") {
			return nth, invalidNth(tok.Pos, tok.String())
		}
		step, ok := tok.Int()
		if !ok {
			return nth, outOfRange(tok.Pos, "step", tok.Repr)
		}
		nth.Step = step

	case *token.Number:
		if !tok.Integer {
			return nth, invalidNth(tok.Pos, tok.String())
		} else if tok.Value < 0 {
			return nth, diag.Newf(diag.InvalidNthFormat, tok.Pos, "offset %s must not be negative", tok)
		}
		offset, ok := tok.Int()
		if !ok {
			return nth, outOfRange(tok.Pos, "offset", tok.String())
		}
		nth.Offset = offset
		return p.parseNthOf(nth)

	default:
		return nth, invalidNth(tok.Position(), token.Name(tok))
	}

	if nth.Step < -1 {
		return nth, diag.Newf(diag.InvalidNthFormat, tok.Position(), "step %d must not be less than -1", nth.Step)
	}

	if err := p.parseNthOffset(&nth); err != nil {
		return nth, err
	}
	return p.parseNthOf(nth)
}

// parseNthOffset parses an optional offset written either as a signed
// integer or as a "+" or "-" sign followed by an unsigned integer.
func (p *parser) parseNthOffset(nth *Nth) error {
	m := p.s.Mark()
	tok, err := value.Next(p.s)
	if diag.IsFatal(err) {
		return err
	}

	sign := 1
	switch tok := tok.(type) {
	case *token.Number:
		if !tok.Signed() {
			p.s.Reset(m)
			return nil
		} else if !tok.Integer {
			return invalidNth(tok.Pos, tok.String())
		}
		offset, ok := tok.Int()
		if !ok {
			return outOfRange(tok.Pos, "offset", tok.String())
		}
		return setNthOffset(nth, tok.Pos, offset)

	case *token.Delim:
		switch tok.Value {
		case '+':
		case '-':
			sign = -1
		default:
			p.s.Reset(m)
			return nil
		}
		next, err := value.Next(p.s)
		if diag.IsFatal(err) {
			return err
		} else if num, ok := next.(*token.Number); !ok || !num.Integer || num.Signed() {
			return invalidNth(next.Position(), token.Name(next))
		} else if offset, ok := num.Int(); !ok {
			return outOfRange(num.Pos, "offset", num.String())
		} else {
			return setNthOffset(nth, tok.Pos, sign*offset)
		}
	}

	p.s.Reset(m)
	return nil
}

func setNthOffset(nth *Nth, pos token.Pos, offset int) error {
	if offset < 0 {
		return diag.Newf(diag.InvalidNthFormat, pos, "offset %d must not be negative", offset)
	}
	nth.Offset = offset
	return nil
}

// parseNthOf parses an optional "of <compound>" clause.
func (p *parser) parseNthOf(nth Nth) (Nth, error) {
	m := p.s.Mark()
	if _, err := value.Keyword(p.s, "of"); err != nil {
		if diag.IsFatal(err) {
			return nth, err
		}
		p.s.Reset(m)
		return nth, nil
	}

	c, err := p.parseCompound()
	if err != nil {
		return nth, err
	}
	nth.Of = c
	return nth, nil
}

func outOfRange(pos token.Pos, name, s string) error {
	return diag.Newf(diag.InvalidNthFormat, pos, "%s %s is out of range", name, s)
}

func invalidNth(pos token.Pos, s string) error {
	return diag.Newf(diag.InvalidNthFormat, pos, "unexpected %s", s)
}
