/*
Package css compiles stylesheets and matches their rules against element
trees. The work is split across several packages that can be used on their
own:

	token     lexical tokens and positions
	scanner   the tokenizer, which also serves as a rewindable cursor
	value     typed value grammars (colors, lengths, angles, shapes)
	selector  selector parsing, nesting and matching
	property  declaration decoding into a Style
	ast       the stylesheet tree
	parser    rule and declaration parsing with error accumulation
	diag      the error taxonomy and its rendering


Basics

Parsing occurs in two steps. First the scanner breaks up the source text
into tokens. These tokens represent the most basic units of the syntax such
as identifiers, whitespace, and strings. The grammars then consume tokens
from the scanner, marking their start and rewinding to it when a production
fails so that an alternative can be tried.

A failing declaration or rule does not stop parsing. Its error is added to
an error list and parsing resumes at the next declaration or rule. Only
tokenizer errors, such as a newline inside a string, abort parsing.


Compiling

Compile parses a stylesheet and flattens nested rules so that every Rule
holds its complete selector list and its decoded Style:

	sheet, err := css.Compile(`.card { width: 10px; & > a { color: red } }`, selector.Strict)

Sheet.Match returns the rules whose selectors match an element. Elements
are anything that implements selector.Element; the htmlnode package adapts
parsed HTML documents.


Printing

Printer writes an ast.Node with one declaration per line and nested blocks
indented. Format parses and prints in a single call.
*/
package css
