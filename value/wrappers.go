package value

import (
	"fmt"

	"github.com/benbjohnson/cssengine/diag"
	"github.com/benbjohnson/cssengine/scanner"
)

// Global is one of the CSS-wide keywords accepted by every property.
// The zero value means no global keyword was given.
type Global int

const (
	NoGlobal Global = iota
	Inherit
	Initial
	Revert
	RevertLayer
	Unset
)

var globals = [...]string{
	Inherit:     "inherit",
	Initial:     "initial",
	Revert:      "revert",
	RevertLayer: "revert-layer",
	Unset:       "unset",
}

// String returns the keyword text.
func (g Global) String() string {
	if g > NoGlobal && int(g) < len(globals) {
		return globals[g]
	}
	return ""
}

// ParseGlobal parses one of the CSS-wide keywords.
func ParseGlobal(s *scanner.Scanner) (Global, error) {
	name, err := Keyword(s, globals[Inherit:]...)
	if err != nil {
		return NoGlobal, err
	}
	for g := Inherit; g <= Unset; g++ {
		if globals[g] == name {
			return g, nil
		}
	}
	return NoGlobal, nil
}

// GlobalOr is either a CSS-wide keyword or a value of T.
type GlobalOr[T fmt.Stringer] struct {
	Global Global
	Value  T
}

// String returns the keyword if set, otherwise the inner value.
func (v GlobalOr[T]) String() string {
	if v.Global != NoGlobal {
		return v.Global.String()
	}
	return v.Value.String()
}

// ParseGlobalOr returns a parser that tries a global keyword before p.
func ParseGlobalOr[T fmt.Stringer](p Parser[T]) Parser[GlobalOr[T]] {
	return func(s *scanner.Scanner) (GlobalOr[T], error) {
		if g, err := Try(s, ParseGlobal); err == nil {
			return GlobalOr[T]{Global: g}, nil
		} else if diag.IsFatal(err) {
			return GlobalOr[T]{}, err
		}

		v, err := Try(s, p)
		if err != nil {
			return GlobalOr[T]{}, err
		}
		return GlobalOr[T]{Value: v}, nil
	}
}

// AutoOr is either the "auto" keyword or a value of T.
type AutoOr[T fmt.Stringer] struct {
	Auto  bool
	Value T
}

// String returns "auto" or the inner value.
func (v AutoOr[T]) String() string {
	if v.Auto {
		return "auto"
	}
	return v.Value.String()
}

// ParseAutoOr returns a parser that tries "auto" before p.
func ParseAutoOr[T fmt.Stringer](p Parser[T]) Parser[AutoOr[T]] {
	return func(s *scanner.Scanner) (AutoOr[T], error) {
		if ok, err := keyword(s, "auto"); err != nil {
			return AutoOr[T]{}, err
		} else if ok {
			return AutoOr[T]{Auto: true}, nil
		}

		v, err := Try(s, p)
		if err != nil {
			return AutoOr[T]{}, err
		}
		return AutoOr[T]{Value: v}, nil
	}
}

// NoneOr is either the "none" keyword or a value of T.
type NoneOr[T fmt.Stringer] struct {
	None  bool
	Value T
}

// String returns "none" or the inner value.
func (v NoneOr[T]) String() string {
	if v.None {
		return "none"
	}
	return v.Value.String()
}

// ParseNoneOr returns a parser that tries "none" before p.
func ParseNoneOr[T fmt.Stringer](p Parser[T]) Parser[NoneOr[T]] {
	return func(s *scanner.Scanner) (NoneOr[T], error) {
		if ok, err := keyword(s, "none"); err != nil {
			return NoneOr[T]{}, err
		} else if ok {
			return NoneOr[T]{None: true}, nil
		}

		v, err := Try(s, p)
		if err != nil {
			return NoneOr[T]{}, err
		}
		return NoneOr[T]{Value: v}, nil
	}
}

// PercentOr is either a percentage or a value of T.
type PercentOr[T fmt.Stringer] struct {
	IsPercent bool
	Percent   Percent
	Value     T
}

// String returns the percentage or the inner value.
func (v PercentOr[T]) String() string {
	if v.IsPercent {
		return v.Percent.String()
	}
	return v.Value.String()
}

// ParsePercentOr returns a parser that tries a percentage before p.
func ParsePercentOr[T fmt.Stringer](p Parser[T]) Parser[PercentOr[T]] {
	return func(s *scanner.Scanner) (PercentOr[T], error) {
		if pct, err := Try(s, ParsePercent); err == nil {
			return PercentOr[T]{IsPercent: true, Percent: pct}, nil
		} else if diag.IsFatal(err) {
			return PercentOr[T]{}, err
		}

		v, err := Try(s, p)
		if err != nil {
			return PercentOr[T]{}, err
		}
		return PercentOr[T]{Value: v}, nil
	}
}

// Either holds a value of A or, if IsRight is set, a value of B.
type Either[A, B fmt.Stringer] struct {
	Left    A
	Right   B
	IsRight bool
}

// String returns whichever side is set.
func (v Either[A, B]) String() string {
	if v.IsRight {
		return v.Right.String()
	}
	return v.Left.String()
}

// ParseEither returns a parser that tries a and then b. If both fail, the
// error from b is returned.
func ParseEither[A, B fmt.Stringer](a Parser[A], b Parser[B]) Parser[Either[A, B]] {
	return func(s *scanner.Scanner) (Either[A, B], error) {
		if v, err := Try(s, a); err == nil {
			return Either[A, B]{Left: v}, nil
		} else if diag.IsFatal(err) {
			return Either[A, B]{}, err
		}

		v, err := Try(s, b)
		if err != nil {
			return Either[A, B]{}, err
		}
		return Either[A, B]{Right: v, IsRight: true}, nil
	}
}

// keyword consumes name if it is the next token. Only tokenizer errors are
// returned.
func keyword(s *scanner.Scanner, name string) (bool, error) {
	if _, err := Keyword(s, name); err != nil {
		if diag.IsFatal(err) {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
