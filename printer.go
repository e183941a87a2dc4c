package css

import (
	"bytes"
	"io"
	"strings"

	"github.com/benbjohnson/cssengine/ast"
	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/parser"
	"github.com/benbjohnson/cssengine/scanner"
	"github.com/benbjohnson/cssengine/selector"
)

// DefaultIndent is the indentation used when Printer.Indent is empty.
const DefaultIndent = "  "

// Printer represents a configurable stylesheet printer. Blocks are printed
// one item per line, indented by depth.
type Printer struct {
	Indent string
}

// Print writes n to w.
func (p *Printer) Print(w io.Writer, n ast.Node) error {
	pp := &printer{w: w, indent: p.Indent}
	if pp.indent == "" {
		pp.indent = DefaultIndent
	}
	pp.print(n)
	return pp.err
}

// printer holds the state of a single Print call. The first write error
// stops all further output.
type printer struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// line writes s on its own line at the current depth.
func (p *printer) line(s string) {
	p.write(strings.Repeat(p.indent, p.depth) + s + "\n")
}

func (p *printer) print(n ast.Node) {
	switch n := n.(type) {
	case *ast.StyleSheet:
		if n == nil {
			return
		}
		p.print(n.Rules)

	case ast.Rules:
		for i, r := range n {
			if i > 0 && p.depth == 0 {
				p.write("\n")
			}
			p.print(r)
		}

	case *ast.AtRule:
		if n == nil {
			return
		}
		head := "@" + n.Name
		if n.Prelude != "" {
			head += " " + n.Prelude
		}
		if n.Block == nil {
			p.line(head + ";")
			return
		}
		p.block(head, n.Block)

	case *ast.QualifiedRule:
		if n == nil {
			return
		}
		p.block(n.Selectors.String(), n.Block)

	case *ast.Block:
		if n == nil {
			return
		}
		p.print(n.Declarations)
		p.print(n.Rules)

	case ast.Declarations:
		for _, d := range n {
			p.print(d)
		}

	case *ast.Declaration:
		if n == nil {
			return
		}
		p.line(n.String() + ";")
	}
}

// block prints head followed by the contents of b in braces.
func (p *printer) block(head string, b *ast.Block) {
	if b == nil || (len(b.Declarations) == 0 && len(b.Rules) == 0) {
		p.line(head + " {}")
		return
	}

	p.line(head + " {")
	p.depth++
	p.print(b)
	p.depth--
	p.line("}")
}

// Format parses src and returns it pretty printed with the default printer.
// Invalid rules and declarations are dropped from the output and returned
// in the error list.
func Format(src string, mode selector.Mode) (string, diag.ErrorList, error) {
	ss, errs, err := parser.ParseStyleSheet(scanner.New(src), mode)
	if err != nil {
		return "", errs, err
	}

	var buf bytes.Buffer
	var p Printer
	if err := p.Print(&buf, ss); err != nil {
		return "", errs, err
	}
	return buf.String(), errs, nil
}
