package diag_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/token"
)

func init() {
	color.NoColor = true
}

// Ensure that error messages are formatted per kind.
func TestError_Message(t *testing.T) {
	pos := token.Pos{Line: 1, Column: 1}
	var tests = []struct {
		err *diag.Error
		s   string
	}{
		{err: diag.New(diag.ExpectedAngle, pos), s: `expected angle`},
		{err: diag.Invalid(pos, "tag must come first"), s: `invalid selector: tag must come first`},
		{err: diag.Keywords(pos, "odd"), s: `expected keyword "odd"`},
		{err: diag.Keywords(pos, "px", "em"), s: `expected one of the keywords: px, em`},
		{err: diag.Functions(pos, "rgb", "rgba"), s: `expected one of the functions: rgb(), rgba()`},
		{err: diag.Functions(pos, "inset"), s: `expected function inset()`},
		{err: diag.Range(pos, 1, 4), s: `expected between 1 and 4 items`},
		{err: diag.Named(diag.UnknownProperty, pos, "colour"), s: `unknown property "colour"`},
		{err: diag.Named(diag.UnknownPseudoClass, pos, "hovr"), s: `unknown pseudo-class :hovr`},
		{err: diag.ExpectedToken(pos, "\")\""), s: `expected ")"`},
		{err: diag.New(diag.Unknown, pos), s: `unknown error`},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.s, tt.err.Error(), "%d", i)
	}
}

// Ensure that kinds can be recovered from wrapped errors.
func TestKindOf(t *testing.T) {
	err := fmt.Errorf("parsing: %w", diag.New(diag.BadString, token.Pos{}))
	assert.Equal(t, diag.BadString, diag.KindOf(err))
	assert.True(t, diag.IsFatal(err))
	assert.Equal(t, diag.Unknown, diag.KindOf(errors.New("plain")))
	assert.False(t, diag.IsFatal(diag.New(diag.InvalidColor, token.Pos{})))
}

// Ensure that error lists summarize their contents.
func TestErrorList(t *testing.T) {
	var a diag.ErrorList
	assert.NoError(t, a.Err())
	assert.Equal(t, "no errors", a.Error())

	a.Add(nil)
	a.Add(diag.New(diag.InvalidColor, token.Pos{}))
	assert.Equal(t, "invalid color", a.Error())

	a.Add(errors.New("boom"))
	assert.Len(t, a, 2)
	assert.Equal(t, diag.Unknown, a[1].Kind)
	assert.Equal(t, "invalid color (and 1 more errors)", a.Err().Error())
}

// Ensure that source lines are extracted regardless of line terminator.
func TestSourceLine(t *testing.T) {
	src := "a {}\r\nb {}\rc {}\nd {}"
	assert.Equal(t, "a {}", diag.SourceLine(src, 1))
	assert.Equal(t, "b {}", diag.SourceLine(src, 2))
	assert.Equal(t, "c {}", diag.SourceLine(src, 3))
	assert.Equal(t, "d {}", diag.SourceLine(src, 4))
	assert.Equal(t, "", diag.SourceLine(src, 5))
	assert.Equal(t, "", diag.SourceLine(src, 0))
}

// Ensure that reports render a header, the source line and a caret.
func TestRender(t *testing.T) {
	src := "p {\n  rotate: 10px;\n}"
	err := diag.New(diag.ExpectedAngle, token.Pos{Offset: 14, Line: 2, Column: 11})

	var buf bytes.Buffer
	assert.NoError(t, diag.Render(&buf, diag.NewReport(err, src)))
	assert.Equal(t, ""+
		"[ERROR:2:11]: expected angle\n"+
		" 2 |   rotate: 10px;\n"+
		"   |           ^\n", buf.String())
}

// Ensure that tabs are mirrored in the caret line.
func TestRender_Tabs(t *testing.T) {
	err := diag.New(diag.InvalidColor, token.Pos{Line: 1, Column: 3})

	var buf bytes.Buffer
	assert.NoError(t, diag.Render(&buf, diag.Report{Err: err, Line: "\t\tx"}))
	assert.Equal(t, "[ERROR:1:3]: invalid color\n 1 | \t\tx\n   | \t\t^\n", buf.String())
}

// Ensure that multiple errors are separated by blank lines.
func TestRenderAll(t *testing.T) {
	a := diag.ErrorList{
		diag.New(diag.InvalidColor, token.Pos{Line: 1, Column: 1}),
		diag.New(diag.ExpectedAngle, token.Pos{Line: 1, Column: 2}),
	}

	var buf bytes.Buffer
	assert.NoError(t, diag.RenderAll(&buf, "ab", a))
	assert.Equal(t, ""+
		"[ERROR:1:1]: invalid color\n 1 | ab\n   | ^\n"+
		"\n"+
		"[ERROR:1:2]: expected angle\n 1 | ab\n   |  ^\n", buf.String())
}
