package runtime

import (
	"strings"

	"github.com/npillmayer/tlox/ast"
)

// Function is a closure: a function literal together with the frame it has
// been created in. Calling a function creates a frame whose parent is
// Closure, never the caller's frame.
type Function struct {
	Name    string
	Decl    *ast.Function
	Closure *Frame
}

// NewFunction creates a closure for a function literal.
func NewFunction(decl *ast.Function, closure *Frame) *Function {
	f := &Function{Decl: decl, Closure: closure}
	if decl.Name != nil {
		f.Name = decl.Name.Name
	}
	return f
}

// Params returns the parameter names of the function.
func (f *Function) Params() []*ast.Ident {
	return f.Decl.Params
}

// Bind creates a bound method. The new closure captures a fresh frame
// holding 'this', which is a child of the method's captured frame.
func (f *Function) Bind(this *Instance) *Function {
	frame := NewFrame("this", f.Closure)
	frame.Declare("this")
	frame.Define("this", this)
	return &Function{Name: f.Name, Decl: f.Decl, Closure: frame}
}

// String prints at most three parameter names.
func (f *Function) String() string {
	var b strings.Builder
	b.WriteString("function(")
	for i, p := range f.Decl.Params {
		if i == 3 {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(") {}")
	return b.String()
}
