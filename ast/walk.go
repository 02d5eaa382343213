package ast

import (
	"fmt"
	"strings"
)

// Inspect traverses a node in depth-first order, calling f for every node
// together with its nesting level. If f returns false, the children of the
// node are skipped. Nil nodes are not visited.
func Inspect(n Node, f func(Node, int) bool) {
	inspect(n, 0, f)
}

func inspect(n Node, level int, f func(Node, int) bool) {
	if isNil(n) || !f(n, level) {
		return
	}
	for _, ch := range Children(n) {
		inspect(ch, level+1, f)
	}
}

func isNil(n Node) bool {
	return n == nil || nilPtr(n)
}

// Children returns the direct sub-nodes of a node, in source order.
func Children(n Node) []Node {
	var ch []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if !isNil(c) {
				ch = append(ch, c)
			}
		}
	}
	switch x := n.(type) {
	case *Grouping:
		add(x.Inner)
	case *Unary:
		add(x.Right)
	case *Binary:
		add(x.Left, x.Right)
	case *Logical:
		add(x.Left, x.Right)
	case *Assign:
		add(x.Value)
	case *Call:
		add(x.Callee)
		for _, a := range x.Args {
			add(a)
		}
	case *Function:
		for _, s := range x.Body {
			add(s)
		}
	case *Get:
		add(x.Object)
	case *Set:
		add(x.Object, x.Value)
	case *ExprStmt:
		add(x.Expr)
	case *Print:
		add(x.Expr)
	case *Var:
		add(x.Init)
	case *Block:
		for _, s := range x.Stmts {
			add(s)
		}
	case *If:
		add(x.Cond, x.Then, x.Else)
	case *While:
		add(x.Cond, x.Body, x.Increment)
	case *Return:
		add(x.Value)
	case *Class:
		add(x.Super)
		for _, m := range x.Methods {
			add(m)
		}
	}
	return ch
}

// nilPtr catches typed nil pointers stored in an interface, e.g. a nil
// *Variable passed as Expr.
func nilPtr(n Node) bool {
	switch x := n.(type) {
	case *Variable:
		return x == nil
	case *Block:
		return x == nil
	case *Function:
		return x == nil
	}
	return false
}

// Label returns a short one-line description of a node, without its children.
func Label(n Node) string {
	switch x := n.(type) {
	case *Literal:
		switch v := x.Value.(type) {
		case nil:
			return "nil"
		case string:
			return fmt.Sprintf("%q", v)
		default:
			return fmt.Sprintf("%v", v)
		}
	case *Grouping:
		return "( )"
	case *Unary:
		return x.Op.String()
	case *Binary:
		return x.Op.String()
	case *Logical:
		return x.Op.String()
	case *Variable:
		return x.Name.Name
	case *Assign:
		return x.Name.Name + " ="
	case *Call:
		return "call"
	case *Function:
		var b strings.Builder
		if x.Static {
			b.WriteString("static ")
		}
		b.WriteString("fun")
		if x.Name != nil {
			b.WriteString(" " + x.Name.Name)
		}
		names := make([]string, len(x.Params))
		for i, p := range x.Params {
			names[i] = p.Name
		}
		b.WriteString("(" + strings.Join(names, ", ") + ")")
		return b.String()
	case *Get:
		return "." + x.Name.Name
	case *Set:
		return "." + x.Name.Name + " ="
	case *This:
		return "this"
	case *ExprStmt:
		return "expr"
	case *Print:
		return "print"
	case *Var:
		return "var " + x.Name.Name
	case *Block:
		return "{ }"
	case *If:
		return "if"
	case *While:
		return "while"
	case *Break:
		return "break"
	case *Continue:
		return "continue"
	case *Return:
		return "return"
	case *Class:
		if x.Super != nil {
			return "class " + x.Name.Name + " < " + x.Super.Name.Name
		}
		return "class " + x.Name.Name
	}
	return fmt.Sprintf("%T", n)
}
