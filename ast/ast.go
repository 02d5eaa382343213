package ast

import (
	"github.com/npillmayer/tlox"
)

// Node is the common interface of expressions and statements.
type Node interface {
	Span() tlox.Span
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Extent is embedded into every node and records its source span.
type Extent struct {
	At tlox.Span
}

// Span returns the source span of a node.
func (e Extent) Span() tlox.Span {
	return e.At
}

// Ident is a single occurrence of a name in the source.
type Ident struct {
	Extent
	Name string
}

// NewIdent creates a name occurrence.
func NewIdent(name string, span tlox.Span) *Ident {
	return &Ident{Extent: Extent{span}, Name: name}
}

func (id *Ident) String() string {
	return id.Name
}

// --- Operators -------------------------------------------------------------

// Operator denotes unary, binary and logical operators.
type Operator int8

// Operators of the language.
const (
	NoOp Operator = iota
	Plus
	Minus
	Star
	Slash
	Bang
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
)

var opNames = [...]string{"?", "+", "-", "*", "/", "!", "==", "!=", "<", "<=", ">", ">=", "and", "or"}

func (op Operator) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "?"
}

// --- Expressions -----------------------------------------------------------

// Literal is a number (float64), string, boolean or nil constant.
type Literal struct {
	Extent
	Value interface{}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Extent
	Inner Expr
}

// Unary is a prefix operation, either '-' or '!'.
type Unary struct {
	Extent
	Op    Operator
	Right Expr
}

// Binary is an arithmetic, comparison or equality operation.
type Binary struct {
	Extent
	Left  Expr
	Op    Operator
	Right Expr
}

// Logical is a short-circuit 'and' or 'or'.
type Logical struct {
	Extent
	Left  Expr
	Op    Operator
	Right Expr
}

// Variable reads a variable.
type Variable struct {
	Extent
	Name *Ident
}

// Assign writes a variable and yields the assigned value.
type Assign struct {
	Extent
	Name  *Ident
	Value Expr
}

// Call calls a function, a native or a class.
type Call struct {
	Extent
	Callee Expr
	Args   []Expr
}

// Function is a function literal. Named function declarations are desugared
// into a variable declaration holding a named function literal. Methods are
// function literals, too.
type Function struct {
	Extent
	Name   *Ident // nil for anonymous functions
	Params []*Ident
	Body   []Stmt
	Static bool // static class method
}

// Get reads a property.
type Get struct {
	Extent
	Object Expr
	Name   *Ident
}

// Set writes a property and yields the assigned value.
type Set struct {
	Extent
	Object Expr
	Name   *Ident
	Value  Expr
}

// This is the receiver of a method.
type This struct {
	Extent
	Keyword *Ident
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Function) exprNode() {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}

// --- Statements ------------------------------------------------------------

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	Extent
	Expr Expr
}

// Print writes the string representation of a value.
type Print struct {
	Extent
	Expr Expr
}

// Var declares a variable, Init may be nil.
type Var struct {
	Extent
	Name *Ident
	Init Expr
}

// Block is a braced statement list and opens a new scope.
type Block struct {
	Extent
	Stmts []Stmt
}

// If is a conditional, Else may be nil.
type If struct {
	Extent
	Cond Expr
	Then Stmt
	Else Stmt
}

// While is a loop. For-loops are desugared into a block containing the
// initializer and a While; Increment holds the for-loop's increment
// expression (or nil) and is evaluated after every iteration, including
// iterations ended by 'continue'.
type While struct {
	Extent
	Cond      Expr
	Body      Stmt
	Increment Expr
}

// Break leaves the innermost loop.
type Break struct {
	Extent
}

// Continue ends the current iteration of the innermost loop.
type Continue struct {
	Extent
}

// Return leaves the innermost function, Value may be nil.
type Return struct {
	Extent
	Value Expr
}

// Class declares a class. Super may be nil.
type Class struct {
	Extent
	Name    *Ident
	Super   *Variable
	Methods []*Function
}

func (*ExprStmt) stmtNode() {}
func (*Print) stmtNode()    {}
func (*Var) stmtNode()      {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
func (*Class) stmtNode()    {}

// InitializerName is the name of a class's designated initializer method.
const InitializerName = "init"
