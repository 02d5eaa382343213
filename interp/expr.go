package interp

import (
	"fmt"

	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/runtime"
)

func (in *Interpreter) eval(e ast.Expr) (runtime.Value, error) {
	v, err := in.evalExpr(e)
	if err != nil {
		return nil, at(err, e)
	}
	return v, nil
}

func (in *Interpreter) evalExpr(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literal(e.Value), nil
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Unary:
		r, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return unary(e.Op, r)
	case *ast.Binary:
		l, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return binary(e.Op, l, r)
	case *ast.Logical:
		l, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(l) == (e.Op == ast.Or) {
			return l, nil
		}
		return in.eval(e.Right)
	case *ast.Variable:
		return in.lookup(e.Name)
	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		return v, in.assign(e.Name, v)
	case *ast.Call:
		return in.call(e)
	case *ast.Function:
		return runtime.NewFunction(e, in.frames().Current()), nil
	case *ast.Get:
		return in.get(e)
	case *ast.Set:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*runtime.Instance)
		if !ok {
			return nil, newError(TypeError, "cannot set property '%s' of non instance type '%s'",
				e.Name.Name, runtime.TypeName(obj))
		}
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Name, v)
		return v, nil
	case *ast.This:
		return in.lookup(e.Keyword)
	}
	panic(fmt.Sprintf("unknown expression type %T", expr))
}

func literal(v interface{}) runtime.Value {
	switch x := v.(type) {
	case float64:
		return runtime.Number(x)
	case string:
		return runtime.String(x)
	case bool:
		return runtime.Bool(x)
	}
	return runtime.Nil
}

// lookup reads a variable, by address for locals and by name for globals.
func (in *Interpreter) lookup(id *ast.Ident) (runtime.Value, error) {
	if addr, ok := in.locals.Lookup(id); ok {
		return in.frames().Current().GetAt(addr.Depth, addr.Slot), nil
	}
	if v, ok := in.rt.Globals.Lookup(id.Name); ok {
		return v, nil
	}
	return nil, newError(ReferenceError, "undeclared identifier '%s'", id.Name)
}

// assign writes a variable. Globals have to be declared before.
func (in *Interpreter) assign(id *ast.Ident, v runtime.Value) error {
	if addr, ok := in.locals.Lookup(id); ok {
		in.frames().Current().SetAt(addr.Depth, addr.Slot, v)
		return nil
	}
	if !in.rt.Globals.Assign(id.Name, v) {
		return newError(ReferenceError, "undeclared identifier '%s'", id.Name)
	}
	return nil
}

// get reads a property of an instance or a static method of a class.
func (in *Interpreter) get(e *ast.Get) (runtime.Value, error) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	name := e.Name.Name
	switch o := obj.(type) {
	case *runtime.Instance:
		if v, ok := o.Get(name); ok {
			return v, nil
		}
	case *runtime.Class:
		if fn := o.Static(name); fn != nil {
			return fn, nil
		}
	default:
		return nil, newError(TypeError, "cannot access property '%s' of non object type '%s'",
			name, runtime.TypeName(obj))
	}
	return nil, newError(ReferenceError, "undefined property '%s'", name)
}
