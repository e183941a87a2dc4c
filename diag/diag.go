// Package diag defines the error taxonomy shared by the tokenizer, the value
// grammars and the selector grammar, along with a renderer for reporting
// errors against the source text.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benbjohnson/cssengine/token"
)

// Kind identifies the category of a parse error.
type Kind int

const (
	Unknown Kind = iota
	NotImplemented
	UnknownSyntax
	UnknownAtRule
	UnknownPseudoClass
	UnknownPseudoElement
	UnknownProperty
	EndOfStream
	InvalidHexFormat
	InvalidArgument
	ExpectedZero
	InvalidSelector
	ExpectedSelector
	Expected
	RangeAllowedItems
	ExpectedKeyword
	ExpectedKeywords
	ExpectedFunction
	ExpectedFunctions
	ExpectedAngle
	ExpectedNumber
	ExpectedInteger
	ExpectedLengthOrPercent
	ExpectedCombinator
	ExpectedString
	DuplicateIDSelector
	DuplicateElementSelector
	InvalidPseudoSelector
	InvalidColor
	InvalidNthFormat
	InvalidColorKeyword
	UnexpectedCombinator
	ExpectedArguments

	// Tokenizer kinds.
	BadString
	BadURL
	UnterminatedComment
	InvalidEscape
)

var kinds = [...]string{
	Unknown:                  "Unknown",
	NotImplemented:           "NotImplemented",
	UnknownSyntax:            "UnknownSyntax",
	UnknownAtRule:            "UnknownAtRule",
	UnknownPseudoClass:       "UnknownPseudoClass",
	UnknownPseudoElement:     "UnknownPseudoElement",
	UnknownProperty:          "UnknownProperty",
	EndOfStream:              "EndOfStream",
	InvalidHexFormat:         "InvalidHexFormat",
	InvalidArgument:          "InvalidArgument",
	ExpectedZero:             "ExpectedZero",
	InvalidSelector:          "InvalidSelector",
	ExpectedSelector:         "ExpectedSelector",
	Expected:                 "Expected",
	RangeAllowedItems:        "RangeAllowedItems",
	ExpectedKeyword:          "ExpectedKeyword",
	ExpectedKeywords:         "ExpectedKeywords",
	ExpectedFunction:         "ExpectedFunction",
	ExpectedFunctions:        "ExpectedFunctions",
	ExpectedAngle:            "ExpectedAngle",
	ExpectedNumber:           "ExpectedNumber",
	ExpectedInteger:          "ExpectedInteger",
	ExpectedLengthOrPercent:  "ExpectedLengthOrPercent",
	ExpectedCombinator:       "ExpectedCombinator",
	ExpectedString:           "ExpectedString",
	DuplicateIDSelector:      "DuplicateIDSelector",
	DuplicateElementSelector: "DuplicateElementSelector",
	InvalidPseudoSelector:    "InvalidPseudoSelector",
	InvalidColor:             "InvalidColor",
	InvalidNthFormat:         "InvalidNthFormat",
	InvalidColorKeyword:      "InvalidColorKeyword",
	UnexpectedCombinator:     "UnexpectedCombinator",
	ExpectedArguments:        "ExpectedArguments",
	BadString:                "BadString",
	BadURL:                   "BadURL",
	UnterminatedComment:      "UnterminatedComment",
	InvalidEscape:            "InvalidEscape",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return "Unknown"
}

// Fatal returns true for tokenizer-level kinds. These are never recovered by
// alternative-trying combinators or forgiving lists.
func (k Kind) Fatal() bool {
	switch k {
	case BadString, BadURL, UnterminatedComment, InvalidEscape:
		return true
	}
	return false
}

// Error represents a parse error at a position in the source.
type Error struct {
	Kind Kind
	Pos  token.Pos

	// Reason is set for InvalidSelector and free-form detail on other kinds.
	Reason string

	// Name is the offending or expected name (property, pseudo-class,
	// at-rule, keyword, function or token name).
	Name string

	// Expected lists accepted keywords or functions.
	Expected []string

	// Min and Max are set for RangeAllowedItems.
	Min, Max int
}

// New returns an error of the given kind.
func New(kind Kind, pos token.Pos) *Error {
	return &Error{Kind: kind, Pos: pos}
}

// Newf returns an error of the given kind with a formatted reason.
func Newf(kind Kind, pos token.Pos, format string, v ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Reason: fmt.Sprintf(format, v...)}
}

// Invalid returns an InvalidSelector error with the given reason.
func Invalid(pos token.Pos, reason string) *Error {
	return &Error{Kind: InvalidSelector, Pos: pos, Reason: reason}
}

// ExpectedToken returns an Expected error naming what was expected.
func ExpectedToken(pos token.Pos, name string) *Error {
	return &Error{Kind: Expected, Pos: pos, Name: name}
}

// Keywords returns an ExpectedKeyword or ExpectedKeywords error.
func Keywords(pos token.Pos, keywords ...string) *Error {
	if len(keywords) == 1 {
		return &Error{Kind: ExpectedKeyword, Pos: pos, Name: keywords[0]}
	}
	return &Error{Kind: ExpectedKeywords, Pos: pos, Expected: keywords}
}

// Functions returns an ExpectedFunction or ExpectedFunctions error.
func Functions(pos token.Pos, names ...string) *Error {
	if len(names) == 1 {
		return &Error{Kind: ExpectedFunction, Pos: pos, Name: names[0]}
	}
	return &Error{Kind: ExpectedFunctions, Pos: pos, Expected: names}
}

// Range returns a RangeAllowedItems error.
func Range(pos token.Pos, min, max int) *Error {
	return &Error{Kind: RangeAllowedItems, Pos: pos, Min: min, Max: max}
}

// Named returns an error of the given kind that refers to a name, such as
// an unknown property or pseudo-class.
func Named(kind Kind, pos token.Pos, name string) *Error {
	return &Error{Kind: kind, Pos: pos, Name: name}
}

// Error returns the formatted error message, without position.
func (e *Error) Error() string {
	return e.Message()
}

// Message returns a human readable description of the error.
func (e *Error) Message() string {
	switch e.Kind {
	case NotImplemented:
		return e.with("not implemented")
	case UnknownSyntax:
		return e.with("unknown syntax")
	case UnknownAtRule:
		return fmt.Sprintf("unknown at-rule @%s", e.Name)
	case UnknownPseudoClass:
		return fmt.Sprintf("unknown pseudo-class :%s", e.Name)
	case UnknownPseudoElement:
		return fmt.Sprintf("unknown pseudo-element ::%s", e.Name)
	case UnknownProperty:
		return fmt.Sprintf("unknown property %q", e.Name)
	case EndOfStream:
		return "unexpected end of input"
	case InvalidHexFormat:
		return e.with("invalid hex color format")
	case InvalidArgument:
		return e.with("invalid argument")
	case ExpectedZero:
		return "expected zero"
	case InvalidSelector:
		return e.with("invalid selector")
	case ExpectedSelector:
		return "expected selector"
	case Expected:
		return fmt.Sprintf("expected %s", e.Name)
	case RangeAllowedItems:
		return fmt.Sprintf("expected between %d and %d items", e.Min, e.Max)
	case ExpectedKeyword:
		return fmt.Sprintf("expected keyword %q", e.Name)
	case ExpectedKeywords:
		return fmt.Sprintf("expected one of the keywords: %s", strings.Join(e.Expected, ", "))
	case ExpectedFunction:
		return fmt.Sprintf("expected function %s()", e.Name)
	case ExpectedFunctions:
		return fmt.Sprintf("expected one of the functions: %s", strings.Join(e.Expected, "(), ")+"()")
	case ExpectedAngle:
		return "expected angle"
	case ExpectedNumber:
		return "expected number"
	case ExpectedInteger:
		return "expected integer"
	case ExpectedLengthOrPercent:
		return "expected length or percentage"
	case ExpectedCombinator:
		return "expected combinator"
	case ExpectedString:
		return "expected string"
	case DuplicateIDSelector:
		return "duplicate id selector"
	case DuplicateElementSelector:
		return "duplicate element selector"
	case InvalidPseudoSelector:
		return e.with("invalid pseudo selector")
	case InvalidColor:
		return "invalid color"
	case InvalidNthFormat:
		return e.with("invalid nth format")
	case InvalidColorKeyword:
		return fmt.Sprintf("invalid color keyword %q", e.Name)
	case UnexpectedCombinator:
		return "unexpected combinator"
	case ExpectedArguments:
		return "expected arguments"
	case BadString:
		return "newline in string"
	case BadURL:
		return e.with("bad url")
	case UnterminatedComment:
		return "unterminated comment"
	case InvalidEscape:
		return "invalid escape"
	}
	return e.with("unknown error")
}

func (e *Error) with(msg string) string {
	if e.Reason == "" {
		return msg
	}
	return msg + ": " + e.Reason
}

// KindOf returns the kind of err if it is an *Error, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsFatal returns true if err is a tokenizer-level error.
func IsFatal(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind.Fatal()
}

// ErrorList represents a list of accumulated, non-fatal errors.
type ErrorList []*Error

// Error returns the formatted string error message.
func (a ErrorList) Error() string {
	switch len(a) {
	case 0:
		return "no errors"
	case 1:
		return a[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", a[0], len(a)-1)
}

// Add appends err to the list. Errors other than *Error are wrapped as
// Unknown at the zero position.
func (a *ErrorList) Add(err error) {
	if err == nil {
		return
	}
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: Unknown, Reason: err.Error()}
	}
	*a = append(*a, e)
}

// Err returns nil if the list is empty, or the list otherwise.
func (a ErrorList) Err() error {
	if len(a) == 0 {
		return nil
	}
	return a
}
