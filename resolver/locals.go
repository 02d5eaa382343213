package resolver

import (
	"fmt"

	"github.com/npillmayer/tlox/ast"
)

// Address is the lexical address of a local variable: the number of parent
// links to cross from the current frame, and the slot within the target frame.
type Address struct {
	Depth int
	Slot  int
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Depth, a.Slot)
}

// Locals is a side table for the syntax tree, mapping name occurrences to
// their lexical addresses. Occurrences without an entry are globals.
//
// An entry is written once and never changes afterwards. A Locals table may
// be shared by successive resolver runs, e.g. for the lines of a REPL session.
type Locals struct {
	addrs map[*ast.Ident]Address
}

// NewLocals creates an empty side table.
func NewLocals() *Locals {
	return &Locals{addrs: make(map[*ast.Ident]Address)}
}

// Lookup returns the address of a name occurrence. ok is false for globals.
func (l *Locals) Lookup(id *ast.Ident) (addr Address, ok bool) {
	addr, ok = l.addrs[id]
	return
}

// Size returns the number of resolved occurrences.
func (l *Locals) Size() int {
	return len(l.addrs)
}

// bind records the address of a name occurrence. Re-binding an occurrence to
// the same address is a no-op (desugaring may share sub-trees), re-binding it
// to a different address is an error.
func (l *Locals) bind(id *ast.Ident, addr Address) error {
	if old, ok := l.addrs[id]; ok {
		if old == addr {
			return nil
		}
		return &Error{Kind: Rebinding, Name: id.Name, Span: id.Span()}
	}
	tracer().Debugf("resolved '%s' %v at %v", id.Name, addr, id.Span())
	l.addrs[id] = addr
	return nil
}
