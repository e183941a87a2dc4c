package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgBlue, color.Bold)
	caretColor  = color.New(color.FgYellow, color.Bold)
)

// Report pairs an error with a copy of the source line it occurred on.
type Report struct {
	Err  *Error
	Line string
}

// NewReport returns a report for err against the full source text src.
func NewReport(err *Error, src string) Report {
	return Report{Err: err, Line: SourceLine(src, err.Pos.Line)}
}

// SourceLine returns the one-based line n of src without its terminator.
// Returns an empty string if the line does not exist.
func SourceLine(src string, n int) string {
	if n < 1 {
		return ""
	}
	for i := 1; i < n; i++ {
		idx := strings.IndexAny(src, "\n\r\f")
		if idx < 0 {
			return ""
		}
		if src[idx] == '\r' && idx+1 < len(src) && src[idx+1] == '\n' {
			idx++
		}
		src = src[idx+1:]
	}
	if idx := strings.IndexAny(src, "\n\r\f"); idx >= 0 {
		src = src[:idx]
	}
	return src
}

// Render writes a report to w:
//
//	[ERROR:2:10]: expected angle
//	 2 | rotate: 10px;
//	   |         ^
func Render(w io.Writer, r Report) error {
	pos := r.Err.Pos
	if _, err := headerColor.Fprintf(w, "[ERROR:%d:%d]", pos.Line, pos.Column); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, ": %s\n", r.Err.Message()); err != nil {
		return err
	}

	num := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(num))
	if _, err := gutterColor.Fprintf(w, " %s | ", num); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, r.Line); err != nil {
		return err
	}

	// Mirror tabs so the caret lines up regardless of tab width.
	var indent strings.Builder
	col := 1
	for _, ch := range r.Line {
		if col >= pos.Column {
			break
		}
		if ch == '\t' {
			indent.WriteByte('\t')
		} else {
			indent.WriteByte(' ')
		}
		col++
	}
	for ; col < pos.Column; col++ {
		indent.WriteByte(' ')
	}

	if _, err := gutterColor.Fprintf(w, " %s | ", pad); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, indent.String()); err != nil {
		return err
	}
	_, err := caretColor.Fprintln(w, "^")
	return err
}

// RenderAll renders every error in a against src, separated by blank lines.
func RenderAll(w io.Writer, src string, a ErrorList) error {
	for i, e := range a {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Render(w, NewReport(e, src)); err != nil {
			return err
		}
	}
	return nil
}
