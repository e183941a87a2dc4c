package property

import (
	"strings"

	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/value"
)

// Style holds the decoded declarations of a single rule. A nil field means
// the property was not declared.
type Style struct {
	Color           *Color
	BackgroundColor *Color
	BorderColor     *Color
	OutlineColor    *Color
	AccentColor     *Color
	CaretColor      *Color
	Opacity         *Opacity
	Width           *Size
	Height          *Size
	MinWidth        *Size
	MinHeight       *Size
	MaxWidth        *MaxSize
	MaxHeight       *MaxSize
	FontSize        *FontSize
	BorderRadius    *value.BorderRadius
	ClipPath        *ClipPath
	Rotate          *Rotate
	ZIndex          *ZIndex
}

// Set stores v as the value of the named property. Returns false if the
// property is not supported or v is not of the property's type.
func (st *Style) Set(name string, v Value) bool {
	prop, ok := lookup(name)
	if !ok {
		return false
	}
	return prop.set(st, v)
}

// Get returns the value of the named property and whether it is set.
func (st *Style) Get(name string) (Value, bool) {
	prop, ok := lookup(name)
	if !ok {
		return nil, false
	}
	v := prop.get(st)
	return v, v != nil
}

// Apply decodes the value of the named property from s and stores it.
func (st *Style) Apply(name string, s *scanner.Scanner) error {
	v, err := Decode(name, s)
	if err != nil {
		return err
	}
	st.Set(name, v)
	return nil
}

// Each calls fn for every property that is set, in declaration table order.
func (st *Style) Each(fn func(name string, v Value)) {
	for _, prop := range properties {
		if v := prop.get(st); v != nil {
			fn(prop.name, v)
		}
	}
}

// Len returns the number of properties that are set.
func (st *Style) Len() int {
	var n int
	st.Each(func(string, Value) { n++ })
	return n
}

// Merge copies every property set in other into st.
func (st *Style) Merge(other *Style) {
	other.Each(func(name string, v Value) { st.Set(name, v) })
}

// String returns the set properties as a declaration list.
func (st *Style) String() string {
	var a []string
	st.Each(func(name string, v Value) {
		a = append(a, name+": "+v.String())
	})
	return strings.Join(a, "; ")
}
