package value

import (
	"math"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// AngleUnit is the unit of an Angle.
type AngleUnit int

const (
	Deg AngleUnit = iota
	Grad
	Rad
	Turn
)

var angleUnits = [...]string{
	Deg:  "deg",
	Grad: "grad",
	Rad:  "rad",
	Turn: "turn",
}

func (u AngleUnit) String() string { return angleUnits[u] }

// Angle is a dimension with an angle unit, such as "45deg".
type Angle struct {
	Value float64
	Unit  AngleUnit
}

func (a Angle) String() string { return formatFloat(a.Value) + a.Unit.String() }

// Degrees returns the angle converted to degrees.
func (a Angle) Degrees() float64 {
	switch a.Unit {
	case Grad:
		return a.Value * 0.9
	case Rad:
		return a.Value * 180 / math.Pi
	case Turn:
		return a.Value * 360
	}
	return a.Value
}

// ParseAngle parses a dimension whose unit is deg, grad, rad or turn.
func ParseAngle(s *scanner.Scanner) (Angle, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Angle](s, m, err)
	}
	if tok, ok := tok.(*token.Dimension); ok {
		unit := lower(tok.Unit)
		for u, name := range angleUnits {
			if name == unit {
				return Angle{Value: tok.Value, Unit: AngleUnit(u)}, nil
			}
		}
	}
	return rewind[Angle](s, m, diag.New(diag.ExpectedAngle, tok.Position()))
}
