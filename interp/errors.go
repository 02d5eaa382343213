package interp

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/parser"
	"github.com/npillmayer/tlox/resolver"
	"github.com/npillmayer/tlox/scanner"
)

// ErrorKind classifies runtime errors.
type ErrorKind int8

// Kinds of runtime errors.
const (
	TypeError       ErrorKind = iota // bad operand, argument or callee type
	ReferenceError                   // undefined variable or property
	NativeError                      // failure within a native function
	ArithmeticError                  // division by zero
	InternalError                    // interpreter invariant violated
)

var kindNames = [...]string{"TypeError", "ReferenceError", "NativeError", "ArithmeticError", "InternalError"}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Error"
}

// RuntimeError is an error raised during evaluation. Span is the source
// span of the innermost expression or statement which failed.
type RuntimeError struct {
	Kind ErrorKind
	Msg  string
	Span tlox.Span
}

func (e *RuntimeError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func newError(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// at attaches the span of n to a runtime error which does not carry a span yet.
func at(err error, n ast.Node) error {
	var rerr *RuntimeError
	if errors.As(err, &rerr) && rerr.Span.IsNull() {
		rerr.Span = n.Span()
	}
	return err
}

// FormatError renders an error returned by Run, prefixing every single error
// with its line and column within source, if known.
func FormatError(source string, err error) string {
	var errs tlox.ErrorList
	if errors.As(err, &errs) {
		s := ""
		for i, e := range errs {
			if i > 0 {
				s += "\n"
			}
			s += FormatError(source, e)
		}
		return s
	}
	var span tlox.Span
	var rerr *RuntimeError
	var perr *parser.Error
	var serr scanner.Error
	var rslv *resolver.Error
	switch {
	case errors.As(err, &rerr):
		span = rerr.Span
	case errors.As(err, &perr):
		span = perr.Span
	case errors.As(err, &serr):
		span = serr.Span
	case errors.As(err, &rslv):
		span = rslv.Span
	default:
		return err.Error()
	}
	if span.IsNull() {
		return err.Error()
	}
	line, col := span.Position(source)
	return fmt.Sprintf("[%d:%d] %s", line, col, err.Error())
}
