package resolver

import (
	"fmt"

	"github.com/npillmayer/tlox"
)

// ErrorKind classifies resolution errors.
type ErrorKind int

// Kinds of resolution errors.
const (
	DuplicateDeclaration ErrorKind = iota // name declared twice in one scope
	SelfReference                         // variable read in its own initializer
	InvalidThis                           // 'this' outside of a method
	SelfInheritance                       // class naming itself as superclass
	Rebinding                             // internal: occurrence resolved twice
)

// Error is a resolution error.
type Error struct {
	Kind ErrorKind
	Name string
	Span tlox.Span
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case DuplicateDeclaration:
		msg = fmt.Sprintf("'%s' is already declared in this scope", e.Name)
	case SelfReference:
		msg = fmt.Sprintf("cannot read '%s' in its own initializer", e.Name)
	case InvalidThis:
		msg = "'this' cannot be used outside of a method"
	case SelfInheritance:
		msg = fmt.Sprintf("class '%s' cannot inherit from itself", e.Name)
	case Rebinding:
		msg = fmt.Sprintf("internal error: '%s' resolved twice", e.Name)
	default:
		msg = fmt.Sprintf("unknown resolution error for '%s'", e.Name)
	}
	return "resolution error: " + msg
}
