package tlox

import (
	"fmt"
	"strings"
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by package scanner.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the language.
//
// An example would be a token for a number:
//
//	TokType = Number      // identifier for this kind of tokens
//	Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//	Value   = 3.1416      // is a float64 value
//	Span    = 67…73       // occured from position 67 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Every syntax node
// tracks which input positions it covers. A span denotes a start position and
// the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, which is used for synthesized nodes.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
// A null span does not contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Position converts the start of a span into a 1-based line and column
// within source.
func (s Span) Position(source string) (line, col int) {
	line, col = 1, 1
	end := int(s[0])
	if end > len(source) {
		end = len(source)
	}
	for _, r := range source[:end] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// --- Errors -----------------------------------------------------------

// ErrorList collects the errors of a compile phase (scanning, parsing,
// resolving), which does not stop at the first error.
type ErrorList []error

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d errors:", len(el)))
	for _, e := range el {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Err returns nil for an empty list and the list otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}
