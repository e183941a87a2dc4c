package value

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// Number is a real number.
type Number float64

func (n Number) String() string { return formatFloat(float64(n)) }

// ParseNumber parses a number token.
func ParseNumber(s *scanner.Scanner) (Number, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Number](s, m, err)
	} else if tok, ok := tok.(*token.Number); ok {
		return Number(tok.Value), nil
	}
	return rewind[Number](s, m, diag.New(diag.ExpectedNumber, tok.Position()))
}

// Integer is a whole number.
type Integer int

func (i Integer) String() string { return strconv.Itoa(int(i)) }

// ParseInteger parses a number token written without a fraction or exponent.
// Integers that do not fit in an int are rejected.
func ParseInteger(s *scanner.Scanner) (Integer, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Integer](s, m, err)
	} else if tok, ok := tok.(*token.Number); ok && tok.Integer {
		n, ok := tok.Int()
		if !ok {
			return rewind[Integer](s, m, diag.Newf(diag.InvalidArgument, tok.Pos, "integer %s is out of range", tok))
		}
		return Integer(n), nil
	}
	return rewind[Integer](s, m, diag.New(diag.ExpectedInteger, tok.Position()))
}

// Percent is a percentage stored as a fraction, so "50%" is 0.5.
type Percent float64

// String returns the value multiplied by 100 with a "%" suffix. The shortest
// decimal form of the fraction is shifted by two places rather than
// multiplied, so the text always parses back to p.
func (p Percent) String() string {
	return shiftDecimal(float64(p), 2) + "%"
}

// ParsePercent parses a percentage token.
func ParsePercent(s *scanner.Scanner) (Percent, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Percent](s, m, err)
	} else if tok, ok := tok.(*token.Percentage); ok {
		return Percent(fraction(tok)), nil
	}
	return rewind[Percent](s, m, diag.ExpectedToken(tok.Position(), "percentage"))
}

// Alpha is an opacity given either as a number or as a percentage. In both
// cases Value holds the fraction, so "50%" and "0.5" both have a Value of 0.5.
type Alpha struct {
	Value      float64
	Percentage bool
}

func (a Alpha) String() string {
	if a.Percentage {
		return Percent(a.Value).String()
	}
	return formatFloat(a.Value)
}

// ParseAlpha parses a number or percentage.
func ParseAlpha(s *scanner.Scanner) (Alpha, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Alpha](s, m, err)
	}
	switch tok := tok.(type) {
	case *token.Number:
		return Alpha{Value: tok.Value}, nil
	case *token.Percentage:
		return Alpha{Value: fraction(tok), Percentage: true}, nil
	}
	return rewind[Alpha](s, m, diag.New(diag.ExpectedNumber, tok.Position()))
}

// fraction returns the percentage divided by 100, rounded once from its
// literal text.
func fraction(tok *token.Percentage) float64 {
	if tok.Repr == "" {
		return tok.Value / 100
	}
	mant, exp := tok.Repr, 0
	if i := strings.IndexAny(mant, "eE"); i >= 0 {
		n, err := strconv.Atoi(mant[i+1:])
		if err != nil {
			return tok.Value / 100
		}
		mant, exp = mant[:i], n
	}
	v, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(exp-2), 64)
	if err != nil {
		return tok.Value / 100
	}
	return v
}

// shiftDecimal returns the shortest decimal form of v with the decimal
// point moved n places to the right. Very large or small results use an
// exponent.
func shiftDecimal(v float64, n int) string {
	if v == 0 {
		return "0"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	mant, sign := s[:i], ""
	if mant[0] == '-' {
		mant, sign = mant[1:], "-"
	}
	exp += n
	if exp < -6 || exp > 20 {
		return sign + mant + "e" + strconv.Itoa(exp)
	}

	digits := strings.Replace(mant, ".", "", 1)
	switch point := exp + 1; {
	case point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return sign + digits + strings.Repeat("0", point-len(digits))
	default:
		return sign + digits[:point] + "." + digits[point:]
	}
}
