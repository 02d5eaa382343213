package runtime

import (
	"testing"

	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
)

func TestTruthy(t *testing.T) {
	falsy := []Value{Nil, Bool(false), nil}
	truthy := []Value{Bool(true), Number(0), String(""), NewClass("A", nil)}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("expected %v to be falsy", v)
		}
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("expected %v to be truthy", v)
		}
	}
}

func TestEqual(t *testing.T) {
	decl := &ast.Function{}
	f1 := NewFunction(decl, nil)
	f2 := NewFunction(decl, nil)
	if Equal(f1, f2) {
		t.Errorf("separately created closures must not be equal")
	}
	if !Equal(f1, f1) {
		t.Errorf("closure should equal itself")
	}
	if Equal(Number(1), String("1")) || Equal(Nil, Bool(false)) {
		t.Errorf("values of different types must not be equal")
	}
	if !Equal(String("a"), String("a")) || !Equal(Nil, nil) {
		t.Errorf("primitives compare by value")
	}
}

func TestStringify(t *testing.T) {
	params := func(names ...string) []*ast.Ident {
		ids := make([]*ast.Ident, len(names))
		for i, n := range names {
			ids[i] = ast.NewIdent(n, tlox.Span{})
		}
		return ids
	}
	cls := NewClass("Point", nil)
	cases := []struct {
		v   Value
		out string
	}{
		{Number(3), "3"},
		{Number(0.5), "0.5"},
		{Number(-12.25), "-12.25"},
		{Number(1e21), "1000000000000000000000"},
		{Bool(true), "true"},
		{Nil, "nil"},
		{String("raw"), "raw"},
		{cls, "[class Point]"},
		{NewInstance(cls), "Point {}"},
		{NewNative("clock", nil), "[native]()"},
		{NewFunction(&ast.Function{}, nil), "function() {}"},
		{NewFunction(&ast.Function{Params: params("a", "b")}, nil), "function(a, b) {}"},
		{NewFunction(&ast.Function{Params: params("a", "b", "c", "d")}, nil), "function(a, b, c, ...) {}"},
	}
	for _, c := range cases {
		if s := Stringify(c.v); s != c.out {
			t.Errorf("expected %q, got %q", c.out, s)
		}
	}
}

func TestTypeName(t *testing.T) {
	if TypeName(Number(1)) != "number" || TypeName(NewInstance(NewClass("A", nil))) != "class instance" {
		t.Errorf("unexpected type names")
	}
}

func TestClassLookup(t *testing.T) {
	base := NewClass("Base", nil)
	derived := NewClass("Derived", base)
	hello := NewFunction(&ast.Function{}, NewFrame("decl", nil))
	over := NewFunction(&ast.Function{}, NewFrame("decl", nil))
	base.Methods["hello"] = hello
	base.Methods["greet"] = hello
	derived.Methods["greet"] = over
	base.Statics["make"] = hello
	base.Init = hello
	if derived.FindMethod("hello") != hello {
		t.Errorf("expected inherited method")
	}
	if derived.FindMethod("greet") != over {
		t.Errorf("expected overriding method")
	}
	if derived.Static("make") != nil {
		t.Errorf("statics must not be inherited")
	}
	if derived.FindInit() != hello {
		t.Errorf("expected inherited initializer")
	}
}

func TestInstanceGetBindsMethods(t *testing.T) {
	cls := NewClass("A", nil)
	decl := NewFrame("decl", nil)
	m := NewFunction(&ast.Function{}, decl)
	cls.Methods["m"] = m
	inst := NewInstance(cls)
	v, ok := inst.Get("m")
	if !ok {
		t.Fatalf("method not found")
	}
	bound := v.(*Function)
	if bound == m || bound.Closure.Parent != decl {
		t.Errorf("expected a bound copy whose frame is a child of the captured frame")
	}
	if this := bound.Closure.GetAt(0, 0); this != inst {
		t.Errorf("expected 'this' in slot 0, got %v", this)
	}
	inst.Set("f", m)
	if v, _ := inst.Get("f"); v != m {
		t.Errorf("functions stored in properties are not bound")
	}
	if _, ok := inst.Get("nope"); ok {
		t.Errorf("unexpected property")
	}
}

func TestGlobalTable(t *testing.T) {
	g := NewGlobalTable()
	if g.Assign("x", Number(1)) {
		t.Errorf("assignment to undeclared global must fail")
	}
	g.Define("x", Number(1))
	g.Define("a", Nil)
	if !g.Assign("x", Number(2)) {
		t.Errorf("assignment to declared global failed")
	}
	if v, ok := g.Lookup("x"); !ok || v != Number(2) {
		t.Errorf("expected x = 2, got %v", v)
	}
	if names := g.Names(); len(names) != 2 || names[0] != "a" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
