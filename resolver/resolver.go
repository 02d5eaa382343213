/*
Package resolver implements the static resolution pass of tlox.

The resolver walks the syntax tree once, before any evaluation, keeping a
stack of scopes which mirrors the frames the interpreter will create: one per
block, one per function call (holding the parameters and the body's
declarations) and one holding 'this' for methods. Every local name occurrence
is assigned a lexical address (depth, slot), recorded in a Locals side table.
Names found in no local scope are globals and get no entry.

Static methods are resolved outside of the scope holding 'this', as they are
never bound to an instance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolver

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/runtime"
)

// tracer traces with key 'tlox.resolver'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.resolver")
}

const thisName = "this"

// Resolver computes lexical addresses for a program.
type Resolver struct {
	scopes *runtime.ScopeTree
	locals *Locals
}

// New creates a resolver which records addresses in locals.
func New(locals *Locals) *Resolver {
	r := &Resolver{
		scopes: &runtime.ScopeTree{},
		locals: locals,
	}
	r.scopes.PushNewScope("globals")
	return r
}

// Resolve resolves a program, recording addresses in locals. It is a
// shortcut for New(locals).Resolve(program).
func Resolve(program []ast.Stmt, locals *Locals) error {
	return New(locals).Resolve(program)
}

// Resolve resolves every top-level statement. Resolution of a statement stops
// at its first error, but the remaining statements are still resolved.
// All errors are returned as a tlox.ErrorList.
func (r *Resolver) Resolve(program []ast.Stmt) error {
	var errs tlox.ErrorList
	for _, stmt := range program {
		if err := r.stmt(stmt); err != nil {
			tracer().Infof("%v", err)
			errs = append(errs, err)
			r.scopes.Unwind()
			r.scopes.Globals().Tags().Each(func(_ string, tag *runtime.Tag) {
				tag.Defined = true
			})
		}
	}
	return errs.Err()
}

// --- Scopes ----------------------------------------------------------------

// declare reserves a slot for a name in the current scope. Globals get no
// slot and may be redeclared; a redeclared global keeps its value readable
// within the new initializer.
func (r *Resolver) declare(id *ast.Ident) error {
	tag, ok := r.scopes.Current().Declare(id.Name)
	if r.scopes.IsGlobal() {
		if ok {
			tag.Defined = false // catch 'var a = a;' at top level, too
		}
		return nil
	}
	if !ok {
		return &Error{Kind: DuplicateDeclaration, Name: id.Name, Span: id.Span()}
	}
	return nil
}

// define marks a name as defined and records the declaration site's address.
func (r *Resolver) define(id *ast.Ident) error {
	tag := r.scopes.Current().Define(id.Name)
	if r.scopes.IsGlobal() {
		return nil
	}
	return r.locals.bind(id, Address{Depth: 0, Slot: tag.Slot})
}

// local resolves a name occurrence. If read is set, reading a variable within
// its own initializer is an error.
func (r *Resolver) local(id *ast.Ident, read bool) error {
	tag, depth, scope := r.scopes.Current().Lookup(id.Name)
	if tag == nil {
		tracer().Debugf("'%s' is global", id.Name)
		return nil
	}
	if read && depth == 0 && !tag.Defined {
		return &Error{Kind: SelfReference, Name: id.Name, Span: id.Span()}
	}
	if scope == r.scopes.Globals() {
		return nil
	}
	return r.locals.bind(id, Address{Depth: depth, Slot: tag.Slot})
}

func (r *Resolver) function(fn *ast.Function) error {
	name := "fun"
	if fn.Name != nil {
		name = fn.Name.Name
	}
	r.scopes.PushNewScope(name)
	for _, p := range fn.Params {
		if err := r.declare(p); err != nil {
			return err
		}
		if err := r.define(p); err != nil {
			return err
		}
	}
	if err := r.stmts(fn.Body); err != nil {
		return err
	}
	r.scopes.PopScope()
	return nil
}

// --- Statements ------------------------------------------------------------

func (r *Resolver) stmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := r.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) stmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return r.expr(s.Expr)
	case *ast.Print:
		return r.expr(s.Expr)
	case *ast.Var:
		return r.varDecl(s)
	case *ast.Block:
		r.scopes.PushNewScope("block")
		if err := r.stmts(s.Stmts); err != nil {
			return err
		}
		r.scopes.PopScope()
		return nil
	case *ast.If:
		if err := r.expr(s.Cond); err != nil {
			return err
		}
		if err := r.stmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.stmt(s.Else)
		}
		return nil
	case *ast.While:
		if err := r.expr(s.Cond); err != nil {
			return err
		}
		if err := r.stmt(s.Body); err != nil {
			return err
		}
		if s.Increment != nil {
			return r.expr(s.Increment)
		}
		return nil
	case *ast.Break, *ast.Continue:
		return nil
	case *ast.Return:
		if s.Value != nil {
			return r.expr(s.Value)
		}
		return nil
	case *ast.Class:
		return r.class(s)
	}
	panic("unknown statement type")
}

func (r *Resolver) varDecl(v *ast.Var) error {
	if err := r.declare(v.Name); err != nil {
		return err
	}
	// named functions may call themselves recursively
	if fn, ok := v.Init.(*ast.Function); ok && fn.Name != nil && fn.Name.Name == v.Name.Name {
		if err := r.define(v.Name); err != nil {
			return err
		}
		return r.function(fn)
	}
	if v.Init != nil {
		if err := r.expr(v.Init); err != nil {
			return err
		}
	}
	return r.define(v.Name)
}

func (r *Resolver) class(c *ast.Class) error {
	if err := r.declare(c.Name); err != nil {
		return err
	}
	if err := r.define(c.Name); err != nil {
		return err
	}
	if c.Super != nil {
		if c.Super.Name.Name == c.Name.Name {
			return &Error{Kind: SelfInheritance, Name: c.Name.Name, Span: c.Super.Span()}
		}
		if err := r.local(c.Super.Name, true); err != nil {
			return err
		}
	}
	for _, m := range c.Methods {
		if m.Static {
			if err := r.function(m); err != nil {
				return err
			}
		}
	}
	scope := r.scopes.PushNewScope(c.Name.Name)
	scope.Declare(thisName)
	scope.Define(thisName)
	for _, m := range c.Methods {
		if !m.Static {
			if err := r.function(m); err != nil {
				return err
			}
		}
	}
	r.scopes.PopScope()
	return nil
}

// --- Expressions -----------------------------------------------------------

func (r *Resolver) expr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.Literal:
		return nil
	case *ast.Grouping:
		return r.expr(e.Inner)
	case *ast.Unary:
		return r.expr(e.Right)
	case *ast.Binary:
		if err := r.expr(e.Left); err != nil {
			return err
		}
		return r.expr(e.Right)
	case *ast.Logical:
		if err := r.expr(e.Left); err != nil {
			return err
		}
		return r.expr(e.Right)
	case *ast.Variable:
		return r.local(e.Name, true)
	case *ast.Assign:
		if err := r.expr(e.Value); err != nil {
			return err
		}
		return r.local(e.Name, false)
	case *ast.Call:
		if err := r.expr(e.Callee); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := r.expr(a); err != nil {
				return err
			}
		}
		return nil
	case *ast.Function:
		return r.function(e)
	case *ast.Get:
		return r.expr(e.Object)
	case *ast.Set:
		if err := r.expr(e.Value); err != nil {
			return err
		}
		return r.expr(e.Object)
	case *ast.This:
		if tag, _, _ := r.scopes.Current().Lookup(thisName); tag == nil {
			return &Error{Kind: InvalidThis, Name: thisName, Span: e.Span()}
		}
		return r.local(e.Keyword, true)
	}
	panic("unknown expression type")
}
