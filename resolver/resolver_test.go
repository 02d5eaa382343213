package resolver

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/parser"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", src, err)
	}
	return stmts
}

// reads collects the identifiers of all variable reads and 'this' in source order.
func reads(stmts []ast.Stmt) []*ast.Ident {
	var ids []*ast.Ident
	for _, s := range stmts {
		ast.Inspect(s, func(n ast.Node, _ int) bool {
			switch x := n.(type) {
			case *ast.Variable:
				ids = append(ids, x.Name)
			case *ast.This:
				ids = append(ids, x.Keyword)
			}
			return true
		})
	}
	return ids
}

func resolveOK(t *testing.T, src string) ([]ast.Stmt, *Locals) {
	t.Helper()
	stmts := parse(t, src)
	locals := NewLocals()
	if err := Resolve(stmts, locals); err != nil {
		t.Fatalf("unexpected resolution error for %q: %v", src, err)
	}
	return stmts, locals
}

func expectAddr(t *testing.T, locals *Locals, id *ast.Ident, depth, slot int) {
	t.Helper()
	addr, ok := locals.Lookup(id)
	if !ok {
		t.Errorf("'%s' at %v: expected local (%d,%d), is global", id.Name, id.Span(), depth, slot)
		return
	}
	if addr.Depth != depth || addr.Slot != slot {
		t.Errorf("'%s' at %v: expected (%d,%d), got %v", id.Name, id.Span(), depth, slot, addr)
	}
}

func expectGlobal(t *testing.T, locals *Locals, id *ast.Ident) {
	t.Helper()
	if addr, ok := locals.Lookup(id); ok {
		t.Errorf("'%s' at %v: expected global, got %v", id.Name, id.Span(), addr)
	}
}

func expectKind(t *testing.T, src string, kind ErrorKind) {
	t.Helper()
	err := Resolve(parse(t, src), NewLocals())
	if err == nil {
		t.Errorf("expected resolution error for %q", src)
		return
	}
	var rerr *Error
	if !errors.As(err.(tlox.ErrorList)[0], &rerr) || rerr.Kind != kind {
		t.Errorf("expected error kind %d for %q, got %v", kind, src, err)
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.resolver")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	stmts, locals := resolveOK(t, `{
		var x = 1;
		var a = 10;
		{
			print a;
			var a = 20;
			print a;
		}
		print a;
	}`)
	ids := reads(stmts)
	if len(ids) != 3 {
		t.Fatalf("expected 3 reads, got %d", len(ids))
	}
	expectAddr(t, locals, ids[0], 1, 1) // outer a, seen from inner block
	expectAddr(t, locals, ids[1], 0, 0) // inner a
	expectAddr(t, locals, ids[2], 0, 1) // outer a
}

func TestDeclarationSiteAddress(t *testing.T) {
	stmts, locals := resolveOK(t, "{ var a; var b; }")
	block := stmts[0].(*ast.Block)
	expectAddr(t, locals, block.Stmts[1].(*ast.Var).Name, 0, 1)
}

func TestGlobals(t *testing.T) {
	stmts, locals := resolveOK(t, `
		var a = 1;
		var a = 2;
		fun f() { return a + b; }
		print a;
	`)
	for _, id := range reads(stmts) {
		expectGlobal(t, locals, id)
	}
}

func TestGlobalRedeclarationReadsPrevious(t *testing.T) {
	stmts, locals := resolveOK(t, "var a = 1; var a = a + 1;")
	for _, id := range reads(stmts) {
		expectGlobal(t, locals, id)
	}
	expectKind(t, "var b = b;", SelfReference)
}

func TestClosureAddresses(t *testing.T) {
	stmts, locals := resolveOK(t, `
	fun makeCounter() {
		var i = 0;
		fun count() {
			i = i + 1;
			return i;
		}
		return count;
	}`)
	ids := reads(stmts)
	// i (read in i + 1), i (return i), count (return count)
	if len(ids) != 3 {
		t.Fatalf("expected 3 reads, got %d", len(ids))
	}
	expectAddr(t, locals, ids[0], 1, 0)
	expectAddr(t, locals, ids[1], 1, 0)
	expectAddr(t, locals, ids[2], 0, 1)
	// the assignment target
	var assign *ast.Assign
	ast.Inspect(stmts[0], func(n ast.Node, _ int) bool {
		if a, ok := n.(*ast.Assign); ok {
			assign = a
		}
		return true
	})
	expectAddr(t, locals, assign.Name, 1, 0)
}

func TestParametersAreLocal(t *testing.T) {
	stmts, locals := resolveOK(t, "fun add(a, b) { { return a + b; } }")
	ids := reads(stmts)
	expectAddr(t, locals, ids[0], 1, 0)
	expectAddr(t, locals, ids[1], 1, 1)
}

func TestRecursion(t *testing.T) {
	stmts, locals := resolveOK(t, "{ fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } }")
	for _, id := range reads(stmts) {
		if id.Name == "fib" {
			expectAddr(t, locals, id, 1, 0)
		} else {
			expectAddr(t, locals, id, 0, 0)
		}
	}
}

func TestThisInMethod(t *testing.T) {
	stmts, locals := resolveOK(t, `{
		class A {
			get() { return this; }
			nested() { fun inner() { return this; } return inner; }
		}
	}`)
	ids := reads(stmts)
	expectAddr(t, locals, ids[0], 1, 0) // method frame → this frame
	expectAddr(t, locals, ids[1], 2, 0) // inner → method → this
	expectAddr(t, locals, ids[2], 0, 0) // inner, declared in method frame
}

func TestSuperclassAddress(t *testing.T) {
	stmts, locals := resolveOK(t, "{ class A {} class B < A {} }")
	block := stmts[0].(*ast.Block)
	expectAddr(t, locals, block.Stmts[1].(*ast.Class).Super.Name, 0, 0)
}

func TestResolutionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.resolver")
	defer teardown()
	//
	expectKind(t, "var a = a;", SelfReference)
	expectKind(t, "{ var a = 1; { var a = a + 1; } }", SelfReference)
	expectKind(t, "{ var a; var a; }", DuplicateDeclaration)
	expectKind(t, "fun f(x, x) {}", DuplicateDeclaration)
	expectKind(t, "fun f(x) { var x; }", DuplicateDeclaration)
	expectKind(t, "print this;", InvalidThis)
	expectKind(t, "fun f() { return this; }", InvalidThis)
	expectKind(t, "class A { static make() { return this; } }", InvalidThis)
	expectKind(t, "class A < A {}", SelfInheritance)
}

func TestErrorsAreCollected(t *testing.T) {
	stmts := parse(t, "var a = a; print this; { var b = 1; print b; } print a;")
	locals := NewLocals()
	err := Resolve(stmts, locals)
	var errs tlox.ErrorList
	if !errors.As(err, &errs) || len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", err)
	}
	ids := reads(stmts)
	// a (initializer), this, b, a
	expectAddr(t, locals, ids[2], 0, 0)
	expectGlobal(t, locals, ids[3])
}

func TestLocalsWriteOnce(t *testing.T) {
	locals := NewLocals()
	id := ast.NewIdent("x", tlox.Span{})
	if err := locals.bind(id, Address{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := locals.bind(id, Address{1, 2}); err != nil {
		t.Errorf("re-binding the same address should be accepted: %v", err)
	}
	if err := locals.bind(id, Address{0, 0}); err == nil {
		t.Errorf("re-binding to a different address must fail")
	}
	if addr, _ := locals.Lookup(id); addr != (Address{1, 2}) {
		t.Errorf("address has been overwritten: %v", addr)
	}
}

func TestCompoundPropertyAssignment(t *testing.T) {
	// the object expression is shared between the desugared get and set
	stmts, locals := resolveOK(t, "{ var o; o.count += 1; }")
	for _, id := range reads(stmts) {
		expectAddr(t, locals, id, 0, 0)
	}
}
