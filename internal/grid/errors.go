package grid

import (
	"errors"
	"fmt"
)

// ErrParse indicates a pattern block contained a character outside its syntax.
var ErrParse = errors.New("grid: failed to parse grid")

// ParseError locates the offending character of a failed parse.
// Line and Column are 1-based and count every line of the trimmed input.
type ParseError struct {
	Line   int
	Column int
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: unknown character %q at line %d, column %d", ErrParse, e.Char, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
