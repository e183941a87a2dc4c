package value

import (
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// Radius is a single corner radius.
type Radius = PercentOr[Length]

// ParseRadius parses a length or percentage.
var ParseRadius = ParsePercentOr(ParseLength)

// Spread expands one to four shorthand values to four corners or sides:
//
//	1 value:  [a a a a]
//	2 values: [a b a b]
//	3 values: [a b b c]
//	4 values: [a b c d]
func Spread[T any](pos token.Pos, a []T) ([4]T, error) {
	switch len(a) {
	case 1:
		return [4]T{a[0], a[0], a[0], a[0]}, nil
	case 2:
		return [4]T{a[0], a[1], a[0], a[1]}, nil
	case 3:
		return [4]T{a[0], a[1], a[1], a[2]}, nil
	case 4:
		return [4]T{a[0], a[1], a[2], a[3]}, nil
	}
	return [4]T{}, diag.Range(pos, 1, 4)
}

// BorderRadius holds the horizontal and vertical radii of each corner in the
// order top-left, top-right, bottom-right, bottom-left.
type BorderRadius struct {
	Global     Global
	Horizontal [4]Radius
	Vertical   [4]Radius
}

func (r BorderRadius) String() string {
	if r.Global != NoGlobal {
		return r.Global.String()
	}
	return joinRadii(r.Horizontal) + " / " + joinRadii(r.Vertical)
}

func joinRadii(a [4]Radius) string {
	var parts [4]string
	for i := range a {
		parts[i] = a[i].String()
	}
	return strings.Join(parts[:], " ")
}

// ParseBorderRadius parses a global keyword or one to four horizontal radii
// optionally followed by "/" and one to four vertical radii.
func ParseBorderRadius(s *scanner.Scanner) (BorderRadius, error) {
	m := s.Mark()
	if g, err := Try(s, ParseGlobal); err == nil {
		return BorderRadius{Global: g}, nil
	} else if diag.IsFatal(err) {
		return BorderRadius{}, err
	}

	pos := peekPos(s)
	h, err := radii(s)
	if err != nil {
		return rewind[BorderRadius](s, m, err)
	}

	var r BorderRadius
	if r.Horizontal, err = Spread(pos, h); err != nil {
		return rewind[BorderRadius](s, m, err)
	}

	if tok, err := s.PeekNonBlank(); err != nil {
		return rewind[BorderRadius](s, m, err)
	} else if !token.IsDelim(tok, '/') {
		r.Vertical = r.Horizontal
		return r, nil
	}
	_, _ = s.NextNonBlank()

	pos = peekPos(s)
	v, err := radii(s)
	if err != nil {
		return rewind[BorderRadius](s, m, err)
	} else if r.Vertical, err = Spread(pos, v); err != nil {
		return rewind[BorderRadius](s, m, err)
	}
	return r, nil
}

// radii parses one or more radius values.
func radii(s *scanner.Scanner) ([]Radius, error) {
	first, err := Try(s, ParseRadius)
	if err != nil {
		return nil, err
	}

	a := []Radius{first}
	for {
		v, err := Optional(s, ParseRadius)
		if err != nil {
			return nil, err
		} else if v == nil {
			return a, nil
		}
		a = append(a, *v)
	}
}

// ShapeKind identifies a basic shape function.
type ShapeKind int

const (
	Inset ShapeKind = iota
	Rect
	XYWH
)

var shapeKinds = [...]string{
	Inset: "inset",
	Rect:  "rect",
	XYWH:  "xywh",
}

func (k ShapeKind) String() string { return shapeKinds[k] }

// BasicShape is an inset(), rect() or xywh() shape with an optional rounded
// corner clause.
//
// Args holds the four sides for inset() and rect() in top, right, bottom,
// left order, and x, y, width, height for xywh().
type BasicShape struct {
	Kind  ShapeKind
	Args  [4]PercentOr[Length]
	Round *BorderRadius
}

func (b BasicShape) String() string {
	var buf strings.Builder
	buf.WriteString(b.Kind.String())
	buf.WriteString("(")
	for i, arg := range b.Args {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(arg.String())
	}
	if b.Round != nil {
		buf.WriteString(" round ")
		buf.WriteString(b.Round.String())
	}
	buf.WriteString(")")
	return buf.String()
}

var parseLengthPercent = ParsePercentOr(ParseLength)

// ParseBasicShape parses an inset(), rect() or xywh() function. inset()
// accepts one to four offsets that are spread over the four sides; the other
// forms require exactly four arguments.
func ParseBasicShape(s *scanner.Scanner) (BasicShape, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[BasicShape](s, m, err)
	}

	fn, ok := tok.(*token.Function)
	if !ok {
		return rewind[BasicShape](s, m, diag.Functions(tok.Position(), shapeKinds[:]...))
	}
	var b BasicShape
	switch lower(fn.Value) {
	case "inset":
		b.Kind = Inset
	case "rect":
		b.Kind = Rect
	case "xywh":
		b.Kind = XYWH
	default:
		return rewind[BasicShape](s, m, diag.Functions(fn.Pos, shapeKinds[:]...))
	}

	pos := peekPos(s)
	var args []PercentOr[Length]
	for len(args) < 4 {
		v, err := Optional(s, parseLengthPercent)
		if err != nil {
			return rewind[BasicShape](s, m, err)
		} else if v == nil {
			break
		}
		args = append(args, *v)
	}

	if b.Kind == Inset {
		if len(args) == 0 {
			return rewind[BasicShape](s, m, diag.New(diag.ExpectedLengthOrPercent, pos))
		}
		if b.Args, err = Spread(pos, args); err != nil {
			return rewind[BasicShape](s, m, err)
		}
	} else if len(args) != 4 {
		return rewind[BasicShape](s, m, diag.Range(pos, 4, 4))
	} else {
		copy(b.Args[:], args)
	}

	if ok, err := keyword(s, "round"); err != nil {
		return rewind[BasicShape](s, m, err)
	} else if ok {
		r, err := ParseBorderRadius(s)
		if err != nil {
			return rewind[BasicShape](s, m, err)
		} else if r.Global != NoGlobal {
			return rewind[BasicShape](s, m, diag.Newf(diag.InvalidArgument, pos, "global keyword in round clause"))
		}
		b.Round = &r
	}

	if err := closeParen(s); err != nil {
		return rewind[BasicShape](s, m, err)
	}
	return b, nil
}
