package value

import (
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// LengthUnit is the unit of a Length.
type LengthUnit int

const (
	// Unitless is only used for a literal zero.
	Unitless LengthUnit = iota

	// Font relative.
	Em
	Rem
	Ex
	Rex
	Cap
	Rcap
	Ch
	Rch
	Ic
	Ric
	Lh
	Rlh

	// Viewport relative, in default, small, large and dynamic variants.
	Vw
	Svw
	Lvw
	Dvw
	Vh
	Svh
	Lvh
	Dvh
	Vi
	Svi
	Lvi
	Dvi
	Vb
	Svb
	Lvb
	Dvb
	Vmin
	Svmin
	Lvmin
	Dvmin
	Vmax
	Svmax
	Lvmax
	Dvmax

	// Container query relative.
	Cqw
	Cqh
	Cqi
	Cqb
	Cqmin
	Cqmax

	// Absolute.
	Px
	Cm
	Mm
	In
	Pt
	Pc
)

var lengthUnits = [...]string{
	Unitless: "",
	Em:       "em",
	Rem:      "rem",
	Ex:       "ex",
	Rex:      "rex",
	Cap:      "cap",
	Rcap:     "rcap",
	Ch:       "ch",
	Rch:      "rch",
	Ic:       "ic",
	Ric:      "ric",
	Lh:       "lh",
	Rlh:      "rlh",
	Vw:       "vw",
	Svw:      "svw",
	Lvw:      "lvw",
	Dvw:      "dvw",
	Vh:       "vh",
	Svh:      "svh",
	Lvh:      "lvh",
	Dvh:      "dvh",
	Vi:       "vi",
	Svi:      "svi",
	Lvi:      "lvi",
	Dvi:      "dvi",
	Vb:       "vb",
	Svb:      "svb",
	Lvb:      "lvb",
	Dvb:      "dvb",
	Vmin:     "vmin",
	Svmin:    "svmin",
	Lvmin:    "lvmin",
	Dvmin:    "dvmin",
	Vmax:     "vmax",
	Svmax:    "svmax",
	Lvmax:    "lvmax",
	Dvmax:    "dvmax",
	Cqw:      "cqw",
	Cqh:      "cqh",
	Cqi:      "cqi",
	Cqb:      "cqb",
	Cqmin:    "cqmin",
	Cqmax:    "cqmax",
	Px:       "px",
	Cm:       "cm",
	Mm:       "mm",
	In:       "in",
	Pt:       "pt",
	Pc:       "pc",
}

// unitsByName maps a lowercase unit name to its LengthUnit.
var unitsByName = func() map[string]LengthUnit {
	m := make(map[string]LengthUnit, len(lengthUnits))
	for u, name := range lengthUnits {
		if name != "" {
			m[name] = LengthUnit(u)
		}
	}
	return m
}()

// LengthUnitNames returns the name of every accepted length unit.
func LengthUnitNames() []string {
	a := make([]string, 0, len(lengthUnits)-1)
	for _, name := range lengthUnits[1:] {
		a = append(a, name)
	}
	return a
}

func (u LengthUnit) String() string { return lengthUnits[u] }

// Absolute returns true for units with a fixed pixel size.
func (u LengthUnit) Absolute() bool { return u >= Px || u == Unitless }

// Length is a distance, such as "12px" or "1.5em".
type Length struct {
	Value float64
	Unit  LengthUnit
}

func (l Length) String() string {
	if l.Unit == Unitless {
		return "0"
	}
	return formatFloat(l.Value) + l.Unit.String()
}

// Pixels returns the length in CSS pixels. Returns false if the unit is
// relative to something other than the length itself.
func (l Length) Pixels() (float64, bool) {
	switch l.Unit {
	case Unitless:
		return 0, true
	case Px:
		return l.Value, true
	case Cm:
		return l.Value * 96 / 2.54, true
	case Mm:
		return l.Value * 96 / 25.4, true
	case In:
		return l.Value * 96, true
	case Pt:
		return l.Value * 96 / 72, true
	case Pc:
		return l.Value * 16, true
	}
	return 0, false
}

// ParseLength parses a dimension with a length unit or a unitless zero.
func ParseLength(s *scanner.Scanner) (Length, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Length](s, m, err)
	}

	switch tok := tok.(type) {
	case *token.Number:
		if tok.Value != 0 {
			return rewind[Length](s, m, diag.New(diag.ExpectedZero, tok.Pos))
		}
		return Length{}, nil
	case *token.Dimension:
		u, ok := unitsByName[lower(tok.Unit)]
		if !ok {
			return rewind[Length](s, m, diag.Keywords(tok.Pos, LengthUnitNames()...))
		}
		return Length{Value: tok.Value, Unit: u}, nil
	}
	return rewind[Length](s, m, diag.New(diag.ExpectedLengthOrPercent, tok.Position()))
}
