/*
Package parser implements a recursive descent parser for tlox.

The parser produces a desugared syntax tree:

	for (init; cond; incr) body   ⇒   { init; while (cond) body /incr/ }
	x += e                         ⇒   x = x + e
	fun f(a) { … }                 ⇒   var f = fun f(a) { … };

The for-loop's increment is kept as a separate part of the while-node, as it
has to be evaluated after a 'continue', too.

Break and continue are only accepted within loops, return only within
functions. Syntax errors do not stop the parser: it synchronizes at the next
statement boundary and collects all errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tlox"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/scanner"
)

// tracer traces with key 'tlox.parser'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.parser")
}

// MaxArgs is the maximum number of arguments of a call and of parameters of a function.
const MaxArgs = 255

// Error is a syntax error.
type Error struct {
	Msg    string
	Lexeme string
	Span   tlox.Span
}

func (e *Error) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("syntax error at end: %s", e.Msg)
	}
	return fmt.Sprintf("syntax error at '%s': %s", e.Lexeme, e.Msg)
}

// errSync is used to unwind to the next statement boundary.
type errSync struct{}

// Parser is a recursive descent parser for a single source text.
type Parser struct {
	tokens    []tlox.Token
	pos       int
	errors    tlox.ErrorList
	loopDepth int // nesting of loops within the current function
	funDepth  int // nesting of functions
}

// Parse parses a complete program. It returns every statement which could be
// parsed, together with a tlox.ErrorList if scanner or parser reported errors.
func Parse(source string) ([]ast.Stmt, error) {
	toks, errs := Tokenize(source)
	if toks == nil {
		return nil, errs.Err()
	}
	p := &Parser{tokens: toks, errors: errs}
	stmts := p.program()
	if len(p.errors) > 0 {
		tracer().Infof("parser found %d error(s)", len(p.errors))
	}
	return stmts, p.errors.Err()
}

func (p *Parser) program() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declarationOrSync(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declarationOrSync parses a declaration and recovers from syntax errors.
func (p *Parser) declarationOrSync() (stmt ast.Stmt) {
	loops, funs := p.loopDepth, p.funDepth
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errSync); !ok {
				panic(r)
			}
			p.loopDepth, p.funDepth = loops, funs
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

// --- Token handling --------------------------------------------------------

func (p *Parser) peek() tlox.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() tlox.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) previous() tlox.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().TokType() == scanner.EOF
}

func (p *Parser) advance() tlox.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) is(tok tlox.Token, name string) bool {
	return tok.TokType() == Token(name)
}

func (p *Parser) check(name string) bool {
	return p.is(p.peek(), name)
}

func (p *Parser) match(names ...string) bool {
	for _, n := range names {
		if p.check(n) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(name string, msg string) tlox.Token {
	if p.check(name) {
		return p.advance()
	}
	panic(p.fail(p.peek(), msg))
}

func (p *Parser) consumeIdent(msg string) *ast.Ident {
	if p.peek().TokType() == scanner.Ident {
		tok := p.advance()
		return ast.NewIdent(tok.Lexeme(), tok.Span())
	}
	panic(p.fail(p.peek(), msg))
}

// report records a syntax error without unwinding.
func (p *Parser) report(tok tlox.Token, msg string) {
	err := &Error{Msg: msg, Lexeme: tok.Lexeme(), Span: tok.Span()}
	tracer().Debugf("%v", err)
	p.errors = append(p.errors, err)
}

// fail records a syntax error and returns the value to panic with.
func (p *Parser) fail(tok tlox.Token, msg string) errSync {
	p.report(tok, msg)
	return errSync{}
}

// synchronize skips tokens until the next statement boundary.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.advance().TokType() == Token(";") {
			return
		}
		switch TokenName(p.peek().TokType()) {
		case "class", "fun", "var", "for", "if", "while", "print", "return":
			return
		}
	}
}

func spanFrom(from tlox.Token, to tlox.Token) tlox.Span {
	return from.Span().Extend(to.Span())
}

// --- Declarations ----------------------------------------------------------

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.check("class"):
		return p.classDecl()
	case p.check("var"):
		return p.varDecl()
	case p.check("fun") && p.peekNext().TokType() == scanner.Ident:
		return p.funDecl()
	}
	return p.statement()
}

func (p *Parser) classDecl() ast.Stmt {
	start := p.advance()
	name := p.consumeIdent("expected class name")
	cls := &ast.Class{Name: name}
	if p.match("<") {
		super := p.consumeIdent("expected superclass name")
		cls.Super = &ast.Variable{Extent: super.Extent, Name: super}
	}
	p.consume("{", "expected '{' before class body")
	for !p.check("}") && !p.atEnd() {
		static := p.match("static")
		mstart := p.peek()
		mname := p.consumeIdent("expected method name")
		fn := p.function(mstart, mname)
		fn.Static = static
		cls.Methods = append(cls.Methods, fn)
	}
	end := p.consume("}", "expected '}' after class body")
	cls.At = spanFrom(start, end)
	return cls
}

func (p *Parser) varDecl() ast.Stmt {
	start := p.advance()
	name := p.consumeIdent("expected variable name")
	v := &ast.Var{Name: name}
	if p.match("=") {
		v.Init = p.expression()
	}
	end := p.consume(";", "expected ';' after variable declaration")
	v.At = spanFrom(start, end)
	return v
}

// funDecl desugars a function declaration into a variable declaration.
func (p *Parser) funDecl() ast.Stmt {
	start := p.advance()
	name := p.consumeIdent("expected function name")
	fn := p.function(start, ast.NewIdent(name.Name, name.At))
	tracer().Debugf("desugaring function declaration '%s'", name.Name)
	return &ast.Var{Extent: fn.Extent, Name: name, Init: fn}
}

// function parses parameters and body of a function. The function keyword and
// the name, if any, have already been consumed.
func (p *Parser) function(start tlox.Token, name *ast.Ident) *ast.Function {
	fn := &ast.Function{Name: name}
	p.consume("(", "expected '(' before parameters")
	if !p.check(")") {
		for {
			if len(fn.Params) >= MaxArgs {
				p.report(p.peek(), fmt.Sprintf("can't have more than %d parameters", MaxArgs))
			}
			fn.Params = append(fn.Params, p.consumeIdent("expected parameter name"))
			if !p.match(",") {
				break
			}
		}
	}
	p.consume(")", "expected ')' after parameters")
	p.consume("{", "expected '{' before function body")
	loops := p.loopDepth
	p.loopDepth = 0
	p.funDepth++
	fn.Body = p.blockStmts()
	p.funDepth--
	p.loopDepth = loops
	fn.At = spanFrom(start, p.previous())
	return fn
}

// --- Statements ------------------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.check("print"):
		start := p.advance()
		e := p.expression()
		end := p.consume(";", "expected ';' after value")
		return &ast.Print{Extent: ast.Extent{At: spanFrom(start, end)}, Expr: e}
	case p.check("{"):
		start := p.advance()
		stmts := p.blockStmts()
		return &ast.Block{Extent: ast.Extent{At: spanFrom(start, p.previous())}, Stmts: stmts}
	case p.check("if"):
		return p.ifStmt()
	case p.check("while"):
		return p.whileStmt()
	case p.check("for"):
		return p.forStmt()
	case p.check("break"):
		tok := p.advance()
		if p.loopDepth == 0 {
			p.report(tok, "'break' outside of a loop")
		}
		end := p.consume(";", "expected ';' after 'break'")
		return &ast.Break{Extent: ast.Extent{At: spanFrom(tok, end)}}
	case p.check("continue"):
		tok := p.advance()
		if p.loopDepth == 0 {
			p.report(tok, "'continue' outside of a loop")
		}
		end := p.consume(";", "expected ';' after 'continue'")
		return &ast.Continue{Extent: ast.Extent{At: spanFrom(tok, end)}}
	case p.check("return"):
		tok := p.advance()
		if p.funDepth == 0 {
			p.report(tok, "'return' outside of a function")
		}
		ret := &ast.Return{}
		if !p.check(";") {
			ret.Value = p.expression()
		}
		end := p.consume(";", "expected ';' after return value")
		ret.At = spanFrom(tok, end)
		return ret
	}
	e := p.expression()
	end := p.consume(";", "expected ';' after expression")
	return &ast.ExprStmt{Extent: ast.Extent{At: e.Span().Extend(end.Span())}, Expr: e}
}

// blockStmts parses declarations up to and including the closing brace.
func (p *Parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check("}") && !p.atEnd() {
		if s := p.declarationOrSync(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume("}", "expected '}' after block")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	start := p.advance()
	p.consume("(", "expected '(' after 'if'")
	cond := p.expression()
	p.consume(")", "expected ')' after if condition")
	s := &ast.If{Cond: cond, Then: p.statement()}
	if p.match("else") {
		s.Else = p.statement()
	}
	s.At = spanFrom(start, p.previous())
	return s
}

func (p *Parser) whileStmt() ast.Stmt {
	start := p.advance()
	p.consume("(", "expected '(' after 'while'")
	cond := p.expression()
	p.consume(")", "expected ')' after condition")
	p.loopDepth++
	body := p.statement()
	p.loopDepth--
	return &ast.While{Extent: ast.Extent{At: spanFrom(start, p.previous())}, Cond: cond, Body: body}
}

// forStmt desugars a for-loop into a while-loop, wrapped into a block if an
// initializer is present.
func (p *Parser) forStmt() ast.Stmt {
	start := p.advance()
	p.consume("(", "expected '(' after 'for'")
	var init ast.Stmt
	switch {
	case p.match(";"):
	case p.check("var"):
		init = p.varDecl()
	default:
		e := p.expression()
		end := p.consume(";", "expected ';' after loop initializer")
		init = &ast.ExprStmt{Extent: ast.Extent{At: e.Span().Extend(end.Span())}, Expr: e}
	}
	var cond ast.Expr
	if !p.check(";") {
		cond = p.expression()
	}
	semi := p.consume(";", "expected ';' after loop condition")
	if cond == nil {
		cond = &ast.Literal{Extent: ast.Extent{At: semi.Span()}, Value: true}
	}
	var incr ast.Expr
	if !p.check(")") {
		incr = p.expression()
	}
	p.consume(")", "expected ')' after for clauses")
	p.loopDepth++
	body := p.statement()
	p.loopDepth--
	span := spanFrom(start, p.previous())
	loop := &ast.While{Extent: ast.Extent{At: span}, Cond: cond, Body: body, Increment: incr}
	tracer().Debugf("desugaring for-loop at %v", span)
	if init == nil {
		return loop
	}
	return &ast.Block{Extent: ast.Extent{At: span}, Stmts: []ast.Stmt{init, loop}}
}

// --- Expressions -----------------------------------------------------------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

var compoundOps = map[string]ast.Operator{
	"+=": ast.Plus,
	"-=": ast.Minus,
	"*=": ast.Star,
	"/=": ast.Slash,
}

func (p *Parser) assignment() ast.Expr {
	target := p.or()
	if !p.match("=", "+=", "-=", "*=", "/=") {
		return target
	}
	optok := p.previous()
	value := p.assignment()
	span := target.Span().Extend(value.Span())
	op, compound := compoundOps[optok.Lexeme()]
	switch t := target.(type) {
	case *ast.Variable:
		if compound {
			read := &ast.Variable{Extent: t.Extent, Name: ast.NewIdent(t.Name.Name, t.Name.At)}
			value = &ast.Binary{Extent: ast.Extent{At: span}, Left: read, Op: op, Right: value}
		}
		return &ast.Assign{Extent: ast.Extent{At: span}, Name: t.Name, Value: value}
	case *ast.Get:
		if compound {
			read := &ast.Get{Extent: t.Extent, Object: t.Object, Name: ast.NewIdent(t.Name.Name, t.Name.At)}
			value = &ast.Binary{Extent: ast.Extent{At: span}, Left: read, Op: op, Right: value}
		}
		return &ast.Set{Extent: ast.Extent{At: span}, Object: t.Object, Name: t.Name, Value: value}
	}
	p.report(optok, "invalid assignment target")
	return target
}

func (p *Parser) or() ast.Expr {
	e := p.and()
	for p.match("or") {
		right := p.and()
		e = &ast.Logical{Extent: ast.Extent{At: e.Span().Extend(right.Span())}, Left: e, Op: ast.Or, Right: right}
	}
	return e
}

func (p *Parser) and() ast.Expr {
	e := p.equality()
	for p.match("and") {
		right := p.equality()
		e = &ast.Logical{Extent: ast.Extent{At: e.Span().Extend(right.Span())}, Left: e, Op: ast.And, Right: right}
	}
	return e
}

var binaryOps = map[string]ast.Operator{
	"==": ast.Equal, "!=": ast.NotEqual,
	"<": ast.Less, "<=": ast.LessEqual, ">": ast.Greater, ">=": ast.GreaterEqual,
	"+": ast.Plus, "-": ast.Minus, "*": ast.Star, "/": ast.Slash,
}

// binary parses a left-associative chain of operators on one precedence level.
func (p *Parser) binary(next func() ast.Expr, ops ...string) ast.Expr {
	e := next()
	for p.match(ops...) {
		op := binaryOps[p.previous().Lexeme()]
		right := next()
		e = &ast.Binary{Extent: ast.Extent{At: e.Span().Extend(right.Span())}, Left: e, Op: op, Right: right}
	}
	return e
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, "==", "!=")
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, "<", "<=", ">", ">=")
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, "+", "-")
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, "*", "/")
}

func (p *Parser) unary() ast.Expr {
	if p.match("!", "-") {
		optok := p.previous()
		op := ast.Minus
		if optok.Lexeme() == "!" {
			op = ast.Bang
		}
		right := p.unary()
		return &ast.Unary{Extent: ast.Extent{At: optok.Span().Extend(right.Span())}, Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	e := p.primary()
	for {
		switch {
		case p.match("("):
			c := &ast.Call{Callee: e}
			if !p.check(")") {
				for {
					if len(c.Args) >= MaxArgs {
						p.report(p.peek(), fmt.Sprintf("can't have more than %d arguments", MaxArgs))
					}
					c.Args = append(c.Args, p.expression())
					if !p.match(",") {
						break
					}
				}
			}
			end := p.consume(")", "expected ')' after arguments")
			c.At = e.Span().Extend(end.Span())
			e = c
		case p.match("."):
			name := p.consumeIdent("expected property name after '.'")
			e = &ast.Get{Extent: ast.Extent{At: e.Span().Extend(name.At)}, Object: e, Name: name}
		default:
			return e
		}
	}
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	at := ast.Extent{At: tok.Span()}
	switch {
	case p.match("false"):
		return &ast.Literal{Extent: at, Value: false}
	case p.match("true"):
		return &ast.Literal{Extent: at, Value: true}
	case p.match("nil"):
		return &ast.Literal{Extent: at, Value: nil}
	case p.match("this"):
		return &ast.This{Extent: at, Keyword: ast.NewIdent("this", tok.Span())}
	case p.match("super"):
		panic(p.fail(tok, "'super' is not supported"))
	case p.match("("):
		inner := p.expression()
		end := p.consume(")", "expected ')' after expression")
		return &ast.Grouping{Extent: ast.Extent{At: spanFrom(tok, end)}, Inner: inner}
	case p.match("fun"):
		var name *ast.Ident
		if p.peek().TokType() == scanner.Ident {
			name = p.consumeIdent("expected function name")
		}
		return p.function(tok, name)
	}
	switch tok.TokType() {
	case scanner.Number:
		p.advance()
		n, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil {
			p.report(tok, "invalid number")
		}
		return &ast.Literal{Extent: at, Value: n}
	case scanner.String:
		p.advance()
		lx := tok.Lexeme()
		return &ast.Literal{Extent: at, Value: lx[1 : len(lx)-1]}
	case scanner.Ident:
		p.advance()
		return &ast.Variable{Extent: at, Name: ast.NewIdent(tok.Lexeme(), tok.Span())}
	}
	panic(p.fail(tok, "expected expression"))
}
