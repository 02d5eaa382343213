/*
Package scanner defines an interface for scanners to be used with the tlox parser,
together with a default token type.

The scanner implementation is an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tlox"
)

// tracer traces with key 'tlox.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.scanner")
}

// Token categories which are independent of a concrete token table.
// Literals and keywords are numbered by the client, starting at FirstUserType.
const (
	EOF     tlox.TokType = -1
	Ident   tlox.TokType = -2
	Number  tlox.TokType = -3
	String  tlox.TokType = -4
	Comment tlox.TokType = -5

	FirstUserType tlox.TokType = 10
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() tlox.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Error is a scanner error at a position of the input.
type Error struct {
	Msg  string
	Span tlox.Span
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Msg, e.Span.From())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the LexMachine
// scanner.
type DefaultToken struct {
	kind   tlox.TokType
	lexeme string
	Val    interface{}
	span   tlox.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ tlox.TokType, lexeme string, span tlox.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() tlox.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() tlox.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q %v>", t.kind, t.lexeme, t.span)
}
