package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/cssengine/property"
	"github.com/benbjohnson/cssengine/selector"
	"github.com/benbjohnson/cssengine/token"
)

// Ensure that all nodes implement the Node interface.
func TestNode(t *testing.T) {
	var a []Node
	a = append(a, &StyleSheet{}, &AtRule{}, &QualifiedRule{}, &Declaration{}, &Block{})
	a = append(a, Rules{}, Declarations{})
	for _, n := range a {
		n.node()
	}
}

// Ensure that all rules implement the Rule interface.
func TestRule(t *testing.T) {
	a := []Rule{&AtRule{}, &QualifiedRule{}}
	for _, r := range a {
		r.rule()
	}
}

// Ensure that node positions can be retrieved.
func TestPosition(t *testing.T) {
	pos := token.Pos{Offset: 3, Line: 1, Column: 4}

	var tests = []struct {
		in  Node
		pos token.Pos
	}{
		{in: &StyleSheet{Rules: Rules{&QualifiedRule{Pos: pos}}}, pos: pos},
		{in: (*StyleSheet)(nil), pos: token.Pos{}},
		{in: Rules{&AtRule{Pos: pos}}, pos: pos},
		{in: Rules{}, pos: token.Pos{}},
		{in: &QualifiedRule{Pos: pos}, pos: pos},
		{in: &AtRule{Pos: pos}, pos: pos},
		{in: Declarations{&Declaration{Pos: pos}}, pos: pos},
		{in: Declarations{}, pos: token.Pos{}},
		{in: &Block{Declarations: Declarations{{Pos: pos}}}, pos: pos},
		{in: &Block{Rules: Rules{&AtRule{Pos: pos}}}, pos: pos},
		{in: &Block{}, pos: token.Pos{}},
		{in: (*Declaration)(nil), pos: token.Pos{}},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.pos, Position(tt.in), "%d.", i)
	}
}

// Ensure that nodes serialize to a single line.
func TestNode_String(t *testing.T) {
	red, err := property.DecodeString("color", "red")
	require.NoError(t, err)

	var tests = []struct {
		in Node
		s  string
	}{
		{in: &Declaration{Name: "color", Value: red}, s: "color: red"},
		{in: &Declaration{Name: "--x", Raw: "1 2", Important: true}, s: "--x: 1 2 !important"},
		{in: Declarations{{Name: "a", Raw: "1"}, {Name: "b", Raw: "2"}}, s: "a: 1; b: 2;"},
		{in: &Block{}, s: "{}"},
		{in: &Block{Declarations: Declarations{{Name: "a", Raw: "1"}}}, s: "{ a: 1; }"},
		{in: &AtRule{Name: "import", Prelude: `"x.css"`}, s: `@import "x.css";`},
		{in: &AtRule{Name: "media", Prelude: "print", Block: &Block{}}, s: "@media print {}"},
		{in: &QualifiedRule{
			Selectors: selector.MustParse("a > b"),
			Block: &Block{
				Declarations: Declarations{{Name: "color", Value: red}},
				Rules: Rules{&QualifiedRule{
					Selectors: selector.MustParse("&:hover"),
					Block:     &Block{},
				}},
			},
		}, s: "a > b { color: red; &:hover {} }"},
		{in: Rules{&AtRule{Name: "a"}, &AtRule{Name: "b"}}, s: "@a; @b;"},
		{in: &StyleSheet{Rules: Rules{&AtRule{Name: "a"}, &AtRule{Name: "b"}}}, s: "@a;\n@b;\n"},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.s, tt.in.String(), "%d.", i)
	}
}

// Ensure that custom properties are detected by their prefix.
func TestDeclaration_Custom(t *testing.T) {
	assert.True(t, (&Declaration{Name: "--gap"}).Custom())
	assert.False(t, (&Declaration{Name: "--"}).Custom())
	assert.False(t, (&Declaration{Name: "-webkit-x"}).Custom())
	assert.False(t, (&Declaration{Name: "color"}).Custom())
}

// Ensure that declarations with decoded values are collected into a style.
func TestDeclarations_Style(t *testing.T) {
	red, err := property.DecodeString("color", "red")
	require.NoError(t, err)
	blue, err := property.DecodeString("color", "blue")
	require.NoError(t, err)

	st := Declarations{
		{Name: "color", Value: red},
		{Name: "--x", Raw: "1"},
		{Name: "color", Value: blue},
	}.Style()
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "color: blue", st.String())
}
