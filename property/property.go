// Package property decodes the values of a small set of style properties
// into typed values and collects them into a Style.
package property

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/token"
	"github.com/benbjohnson/cssengine/value"
)

// Value is a decoded property value. Its String method returns the
// canonical text of the value.
type Value interface {
	fmt.Stringer
}

// Typed values of the supported properties. Every property accepts the
// CSS-wide keywords.
type (
	Color    = value.GlobalOr[value.Color]
	Opacity  = value.GlobalOr[value.Either[value.Number, value.Percent]]
	Size     = value.GlobalOr[value.AutoOr[value.PercentOr[value.Length]]]
	MaxSize  = value.GlobalOr[value.NoneOr[value.PercentOr[value.Length]]]
	FontSize = value.GlobalOr[value.PercentOr[value.Length]]
	ClipPath = value.GlobalOr[value.NoneOr[value.BasicShape]]
	Rotate   = value.GlobalOr[value.NoneOr[value.Angle]]
	ZIndex   = value.GlobalOr[value.AutoOr[value.Integer]]
)

var (
	parseColor    = value.ParseGlobalOr(value.ParseColor)
	parseOpacity  = value.ParseGlobalOr(value.ParseEither(value.ParseNumber, value.ParsePercent))
	parseSize     = value.ParseGlobalOr(value.ParseAutoOr(value.ParsePercentOr(value.ParseLength)))
	parseMaxSize  = value.ParseGlobalOr(value.ParseNoneOr(value.ParsePercentOr(value.ParseLength)))
	parseFontSize = value.ParseGlobalOr(value.ParsePercentOr(value.ParseLength))
	parseClipPath = value.ParseGlobalOr(value.ParseNoneOr(value.ParseBasicShape))
	parseRotate   = value.ParseGlobalOr(value.ParseNoneOr(value.ParseAngle))
	parseZIndex   = value.ParseGlobalOr(value.ParseAutoOr(value.ParseInteger))
)

// properties lists the supported properties in output order.
var properties = []property{
	define("color", parseColor, func(st *Style) **Color { return &st.Color }),
	define("background-color", parseColor, func(st *Style) **Color { return &st.BackgroundColor }),
	define("border-color", parseColor, func(st *Style) **Color { return &st.BorderColor }),
	define("outline-color", parseColor, func(st *Style) **Color { return &st.OutlineColor }),
	define("accent-color", parseColor, func(st *Style) **Color { return &st.AccentColor }),
	define("caret-color", parseColor, func(st *Style) **Color { return &st.CaretColor }),
	define("opacity", parseOpacity, func(st *Style) **Opacity { return &st.Opacity }),
	define("width", parseSize, func(st *Style) **Size { return &st.Width }),
	define("height", parseSize, func(st *Style) **Size { return &st.Height }),
	define("min-width", parseSize, func(st *Style) **Size { return &st.MinWidth }),
	define("min-height", parseSize, func(st *Style) **Size { return &st.MinHeight }),
	define("max-width", parseMaxSize, func(st *Style) **MaxSize { return &st.MaxWidth }),
	define("max-height", parseMaxSize, func(st *Style) **MaxSize { return &st.MaxHeight }),
	define("font-size", parseFontSize, func(st *Style) **FontSize { return &st.FontSize }),
	define("border-radius", value.ParseBorderRadius, func(st *Style) **value.BorderRadius { return &st.BorderRadius }),
	define("clip-path", parseClipPath, func(st *Style) **ClipPath { return &st.ClipPath }),
	define("rotate", parseRotate, func(st *Style) **Rotate { return &st.Rotate }),
	define("z-index", parseZIndex, func(st *Style) **ZIndex { return &st.ZIndex }),
}

// byName indexes properties by name.
var byName = func() map[string]*property {
	m := make(map[string]*property, len(properties))
	for i := range properties {
		m[properties[i].name] = &properties[i]
	}
	return m
}()

// property binds a property name to its grammar and its field in Style.
type property struct {
	name   string
	decode func(s *scanner.Scanner) (Value, error)
	set    func(st *Style, v Value) bool
	get    func(st *Style) Value
}

// define returns a property that parses values with p and stores them in
// the field returned by field.
func define[T fmt.Stringer](name string, p value.Parser[T], field func(st *Style) **T) property {
	return property{
		name: name,
		decode: func(s *scanner.Scanner) (Value, error) {
			v, err := p(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		set: func(st *Style, v Value) bool {
			t, ok := v.(T)
			if !ok {
				return false
			}
			*field(st) = &t
			return true
		},
		get: func(st *Style) Value {
			if ptr := *field(st); ptr != nil {
				return *ptr
			}
			return nil
		},
	}
}

// lookup returns the property with the given name, ignoring ASCII case.
func lookup(name string) (*property, bool) {
	prop, ok := byName[strings.ToLower(name)]
	return prop, ok
}

// Known returns true if name is a supported property.
func Known(name string) bool {
	_, ok := lookup(name)
	return ok
}

// Names returns the supported property names in sorted order.
func Names() []string {
	a := make([]string, len(properties))
	for i, prop := range properties {
		a[i] = prop.name
	}
	sort.Strings(a)
	return a
}

// Decode parses the value of the named property from s. The value must be
// followed by the end of the declaration: a ";", a "}", a "!" that starts
// a priority or the end of input. The terminator is left unconsumed.
//
// On error, s is left where it was.
func Decode(name string, s *scanner.Scanner) (Value, error) {
	prop, ok := lookup(name)
	if !ok {
		return nil, diag.Named(diag.UnknownProperty, s.Pos(), name)
	}

	m := s.Mark()
	v, err := prop.decode(s)
	if err != nil {
		s.Reset(m)
		return nil, err
	}

	tok, err := s.PeekNonBlank()
	if err != nil {
		s.Reset(m)
		return nil, err
	}
	switch tok.(type) {
	case *token.Semicolon, *token.RBrace, *token.EOF:
		return v, nil
	}
	if token.IsDelim(tok, '!') {
		return v, nil
	}
	s.Reset(m)
	return nil, diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok))
}

// DecodeString decodes src as the complete value of the named property.
func DecodeString(name, src string) (Value, error) {
	s := scanner.New(src)
	v, err := Decode(name, s)
	if err != nil {
		return nil, err
	} else if !s.Done() {
		tok, _ := s.PeekNonBlank()
		return nil, diag.Newf(diag.UnknownSyntax, tok.Position(), "unexpected %s", token.Name(tok))
	}
	return v, nil
}
