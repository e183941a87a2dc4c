package value

import (
	"fmt"
	imgcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
)

// Color represents a parsed color value. It is one of Transparent,
// CurrentColor, NamedColor, SystemColor, Hex or RGB.
type Color interface {
	fmt.Stringer
	color()
}

func (Transparent) color()  {}
func (CurrentColor) color() {}
func (NamedColor) color()   {}
func (SystemColor) color()  {}
func (Hex) color()          {}
func (RGB) color()          {}

// Transparent is the "transparent" keyword.
type Transparent struct{}

func (Transparent) String() string { return "transparent" }

// CurrentColor is the "currentcolor" keyword.
type CurrentColor struct{}

func (CurrentColor) String() string { return "currentcolor" }

// NamedColor is one of the named color keywords, stored in lowercase.
type NamedColor string

func (c NamedColor) String() string { return string(c) }

// SystemColor is a system color keyword, stored in its canonical case.
type SystemColor string

func (c SystemColor) String() string { return string(c) }

// Hex is a color given in hexadecimal notation. Alpha is 255 unless HasAlpha
// is set.
type Hex struct {
	Red, Green, Blue, Alpha uint8
	HasAlpha                bool
}

func (c Hex) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.Red, c.Green, c.Blue, c.Alpha)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// Channel is a single rgb() component.
type Channel = NoneOr[PercentOr[Number]]

// RGB is a color given with the rgb() or rgba() function.
type RGB struct {
	Red, Green, Blue Channel
	Alpha            *NoneOr[Alpha]
}

// String returns the color in the space separated rgb() form.
func (c RGB) String() string {
	var buf strings.Builder
	buf.WriteString("rgb(")
	buf.WriteString(c.Red.String())
	buf.WriteString(" ")
	buf.WriteString(c.Green.String())
	buf.WriteString(" ")
	buf.WriteString(c.Blue.String())
	if c.Alpha != nil {
		buf.WriteString(" / ")
		buf.WriteString(c.Alpha.String())
	}
	buf.WriteString(")")
	return buf.String()
}

var (
	parseChannel = ParseNoneOr(ParsePercentOr(ParseNumber))
	parseAlpha   = ParseNoneOr(ParseAlpha)
)

// ParseColor parses any supported color.
func ParseColor(s *scanner.Scanner) (Color, error) {
	m := s.Mark()
	tok, err := Next(s)
	if err != nil {
		return rewind[Color](s, m, err)
	}

	switch tok := tok.(type) {
	case *token.Ident:
		name := lower(tok.Value)
		switch name {
		case "transparent":
			return Transparent{}, nil
		case "currentcolor":
			return CurrentColor{}, nil
		}
		if _, ok := lookupNamed(name); ok {
			return NamedColor(name), nil
		} else if sys, _, ok := lookupSystem(name); ok {
			return SystemColor(sys), nil
		}
		return rewind[Color](s, m, diag.Named(diag.InvalidColorKeyword, tok.Pos, tok.Value))

	case *token.Hash:
		c, err := parseHex(tok)
		if err != nil {
			return rewind[Color](s, m, err)
		}
		return c, nil

	case *token.Function:
		switch lower(tok.Value) {
		case "rgb", "rgba":
			c, err := parseRGB(s)
			if err != nil {
				return rewind[Color](s, m, err)
			}
			return c, nil
		}
		return rewind[Color](s, m, diag.Functions(tok.Pos, "rgb", "rgba"))
	}
	return rewind[Color](s, m, diag.New(diag.InvalidColor, tok.Position()))
}

// parseHex decodes a hash of 3, 4, 6 or 8 hex digits. Short forms are
// expanded by doubling each digit.
func parseHex(tok *token.Hash) (Hex, error) {
	v := tok.Value
	switch len(v) {
	case 3, 4:
		var buf strings.Builder
		for i := 0; i < len(v); i++ {
			buf.WriteByte(v[i])
			buf.WriteByte(v[i])
		}
		v = buf.String()
	case 6, 8:
	default:
		return Hex{}, diag.Newf(diag.InvalidHexFormat, tok.Pos, "#%s has %d digits", tok.Value, len(tok.Value))
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Hex{}, diag.Newf(diag.InvalidHexFormat, tok.Pos, "#%s", tok.Value)
	}

	if len(v) == 8 {
		return Hex{Red: uint8(n >> 24), Green: uint8(n >> 16), Blue: uint8(n >> 8), Alpha: uint8(n), HasAlpha: true}, nil
	}
	return Hex{Red: uint8(n >> 16), Green: uint8(n >> 8), Blue: uint8(n), Alpha: 0xff}, nil
}

// parseRGB parses the arguments of rgb() after the function token. Channels
// may be separated by whitespace or commas and the alpha by "," or "/".
func parseRGB(s *scanner.Scanner) (RGB, error) {
	var c RGB
	for i, ch := range []*Channel{&c.Red, &c.Green, &c.Blue} {
		if i > 0 {
			if _, err := Comma(s); err != nil {
				return RGB{}, err
			}
		}
		v, err := parseChannel(s)
		if err != nil {
			return RGB{}, err
		}
		*ch = v
	}

	tok, err := s.PeekNonBlank()
	if err != nil {
		return RGB{}, err
	}
	if _, ok := tok.(*token.Comma); ok || token.IsDelim(tok, '/') {
		if _, err := s.NextNonBlank(); err != nil {
			return RGB{}, err
		}
		alpha, err := parseAlpha(s)
		if err != nil {
			return RGB{}, err
		}
		c.Alpha = &alpha
	}

	if err := closeParen(s); err != nil {
		return RGB{}, err
	}
	return c, nil
}

// Resolve converts c to a non-premultiplied RGBA value. CurrentColor
// resolves to current.
func Resolve(c Color, current imgcolor.NRGBA) imgcolor.NRGBA {
	switch c := c.(type) {
	case Transparent:
		return imgcolor.NRGBA{}
	case CurrentColor:
		return current
	case NamedColor:
		rgb, _ := lookupNamed(string(c))
		return imgcolor.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	case SystemColor:
		_, rgb, _ := lookupSystem(string(c))
		return imgcolor.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	case Hex:
		return imgcolor.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}
	case RGB:
		a := uint8(0xff)
		if c.Alpha != nil {
			a = 0
			if !c.Alpha.None {
				a = clampByte(c.Alpha.Value.Value * 255)
			}
		}
		return imgcolor.NRGBA{R: resolveChannel(c.Red), G: resolveChannel(c.Green), B: resolveChannel(c.Blue), A: a}
	}
	return imgcolor.NRGBA{}
}

func resolveChannel(ch Channel) uint8 {
	switch {
	case ch.None:
		return 0
	case ch.Value.IsPercent:
		return clampByte(float64(ch.Value.Percent) * 255)
	}
	return clampByte(float64(ch.Value.Value))
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
