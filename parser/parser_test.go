package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/scanner"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.parser")
	defer teardown()
	//
	toks, errs := Tokenize(`var x_1 = 3.5 >= "s"; // comment
	while`)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	expected := []tlox.TokType{Token("var"), scanner.Ident, Token("="), scanner.Number,
		Token(">="), scanner.String, Token(";"), Token("while"), scanner.EOF}
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, tok := range toks {
		if tok.TokType() != expected[i] {
			t.Errorf("token #%d: expected %s, got %s (%q)", i, TokenName(expected[i]),
				TokenName(tok.TokType()), tok.Lexeme())
		}
	}
}

func TestParseDesugarFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.parser")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	stmts, err := Parse("for (var i = 0; i < 3; i += 1) print i;")
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok || len(block.Stmts) != 2 {
		t.Fatalf("expected block of initializer and loop, got %#v", stmts[0])
	}
	loop, ok := block.Stmts[1].(*ast.While)
	if !ok {
		t.Fatalf("expected while loop, got %T", block.Stmts[1])
	}
	assign, ok := loop.Increment.(*ast.Assign)
	if !ok {
		t.Fatalf("expected increment to be an assignment, got %T", loop.Increment)
	}
	bin, ok := assign.Value.(*ast.Binary)
	if !ok || bin.Op != ast.Plus {
		t.Fatalf("expected compound assignment to be desugared into '+', got %#v", assign.Value)
	}
	if read := bin.Left.(*ast.Variable); read.Name == assign.Name {
		t.Errorf("desugared read must not share the identifier of the assignment target")
	}
}

func TestParseForWithoutClauses(t *testing.T) {
	stmts, err := Parse("for (;;) { break; }")
	if err != nil {
		t.Fatal(err)
	}
	loop, ok := stmts[0].(*ast.While)
	if !ok {
		t.Fatalf("expected a bare while loop, got %T", stmts[0])
	}
	if lit, ok := loop.Cond.(*ast.Literal); !ok || lit.Value != true {
		t.Errorf("expected condition to default to true")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts, err := Parse("fun add(a, b) { return a + b; }")
	if err != nil {
		t.Fatal(err)
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("expected function declaration to become a var, got %T", stmts[0])
	}
	fn, ok := v.Init.(*ast.Function)
	if !ok || fn.Name == nil || fn.Name.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected initializer %#v", v.Init)
	}
	if fn.Name == v.Name {
		t.Errorf("function name and variable name must be distinct identifiers")
	}
}

func TestParseClass(t *testing.T) {
	stmts, err := Parse(`class B < A {
		init(x) { this.x = x; }
		static make() { return B(1); }
		get() { return this.x; }
	}`)
	if err != nil {
		t.Fatal(err)
	}
	cls := stmts[0].(*ast.Class)
	if cls.Super == nil || cls.Super.Name.Name != "A" {
		t.Errorf("expected superclass A")
	}
	if len(cls.Methods) != 3 || !cls.Methods[1].Static || cls.Methods[2].Static {
		t.Errorf("unexpected methods %v", cls.Methods)
	}
	ret := cls.Methods[2].Body[0].(*ast.Return)
	if _, ok := ret.Value.(*ast.Get).Object.(*ast.This); !ok {
		t.Errorf("expected 'this.x' to be a get on this")
	}
}

func TestParseSpans(t *testing.T) {
	stmts, err := Parse("print 1 + 22;")
	if err != nil {
		t.Fatal(err)
	}
	p := stmts[0].(*ast.Print)
	if p.Span() != (tlox.Span{0, 13}) {
		t.Errorf("expected print to span (0…13), got %v", p.Span())
	}
	if p.Expr.Span() != (tlox.Span{6, 12}) {
		t.Errorf("expected binary to span (6…12), got %v", p.Expr.Span())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.parser")
	defer teardown()
	//
	inputs := []struct {
		src string
		msg string
	}{
		{"break;", "'break' outside of a loop"},
		{"continue;", "'continue' outside of a loop"},
		{"return 1;", "'return' outside of a function"},
		{"while (true) { fun f() { break; } }", "'break' outside of a loop"},
		{"1 = 2;", "invalid assignment target"},
		{"print super.x;", "'super' is not supported"},
		{"var = 1;", "expected variable name"},
		{"print (1;", "expected ')' after expression"},
		{"print 1", "expected ';' after value"},
	}
	for _, input := range inputs {
		_, err := Parse(input.src)
		if err == nil {
			t.Errorf("expected error for %q", input.src)
			continue
		}
		if !strings.Contains(err.Error(), input.msg) {
			t.Errorf("expected error %q for %q, got %q", input.msg, input.src, err.Error())
		}
	}
}

func TestParseRecovers(t *testing.T) {
	stmts, err := Parse("var a = ; print 1; var = 3; print 2;")
	var errs tlox.ErrorList
	if !errors.As(err, &errs) || len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", err)
	}
	if len(stmts) != 2 {
		t.Errorf("expected both print statements to survive, got %d statements", len(stmts))
	}
	var perr *Error
	if !errors.As(errs[0], &perr) || perr.Lexeme != ";" {
		t.Errorf("expected first error at ';', got %v", errs[0])
	}
}
