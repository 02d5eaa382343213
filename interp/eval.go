package interp

import (
	"fmt"

	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/resolver"
	"github.com/npillmayer/tlox/runtime"
)

// Control tells whether a statement completed normally or issued a control
// signal.
type Control int8

// Control signals.
const (
	Normal Control = iota
	Break
	Continue
	Return
)

// Eval is the result of executing a statement. Val carries the value of a
// Return signal.
type Eval struct {
	Ctrl Control
	Val  runtime.Value
}

var normal = Eval{}

func (in *Interpreter) exec(stmt ast.Stmt) (Eval, error) {
	ev, err := in.execStmt(stmt)
	if err != nil {
		return ev, at(err, stmt)
	}
	return ev, nil
}

func (in *Interpreter) execStmt(stmt ast.Stmt) (Eval, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(s.Expr)
		return normal, err
	case *ast.Print:
		v, err := in.eval(s.Expr)
		if err != nil {
			return normal, err
		}
		if _, err = fmt.Fprintln(in.out, runtime.Stringify(v)); err != nil {
			return normal, newError(InternalError, "cannot print: %v", err)
		}
		return normal, nil
	case *ast.Var:
		var v runtime.Value = runtime.Nil
		if s.Init != nil {
			var err error
			if v, err = in.eval(s.Init); err != nil {
				return normal, err
			}
		}
		in.declare(s.Name, v)
		return normal, nil
	case *ast.Block:
		return in.block(s.Stmts)
	case *ast.If:
		c, err := in.eval(s.Cond)
		if err != nil {
			return normal, err
		}
		if runtime.Truthy(c) {
			return in.exec(s.Then)
		} else if s.Else != nil {
			return in.exec(s.Else)
		}
		return normal, nil
	case *ast.While:
		return in.loop(s)
	case *ast.Break:
		return Eval{Ctrl: Break}, nil
	case *ast.Continue:
		return Eval{Ctrl: Continue}, nil
	case *ast.Return:
		var v runtime.Value = runtime.Nil
		if s.Value != nil {
			var err error
			if v, err = in.eval(s.Value); err != nil {
				return normal, err
			}
		}
		return Eval{Ctrl: Return, Val: v}, nil
	case *ast.Class:
		return normal, in.class(s)
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

// execAll executes statements until one of them issues a control signal.
func (in *Interpreter) execAll(stmts []ast.Stmt) (Eval, error) {
	for _, s := range stmts {
		ev, err := in.exec(s)
		if err != nil || ev.Ctrl != Normal {
			return ev, err
		}
	}
	return normal, nil
}

// block executes statements within a new frame, which is popped on every exit.
func (in *Interpreter) block(stmts []ast.Stmt) (Eval, error) {
	in.frames().PushNewMemoryFrame("block")
	defer in.frames().PopMemoryFrame()
	return in.execAll(stmts)
}

// loop consumes Break and Continue, and passes Return on.
func (in *Interpreter) loop(w *ast.While) (Eval, error) {
	for {
		c, err := in.eval(w.Cond)
		if err != nil {
			return normal, err
		}
		if !runtime.Truthy(c) {
			return normal, nil
		}
		ev, err := in.exec(w.Body)
		if err != nil {
			return normal, err
		}
		switch ev.Ctrl {
		case Break:
			return normal, nil
		case Return:
			return ev, nil
		}
		if w.Increment != nil {
			if _, err := in.eval(w.Increment); err != nil {
				return normal, err
			}
		}
	}
}

// declare binds a value to a declared name: locals get the next slot of the
// current frame, which has to be the slot the resolver reserved for them.
// Names without an address are globals.
func (in *Interpreter) declare(id *ast.Ident, v runtime.Value) {
	addr, ok := in.locals.Lookup(id)
	if !ok {
		in.rt.Globals.Define(id.Name, v)
		return
	}
	frame := in.frames().Current()
	slot := frame.Declare(id.Name)
	if addr.Depth != 0 || addr.Slot != slot {
		diverged(frame, addr, slot)
	}
	frame.Define(id.Name, v)
}

func diverged(frame *runtime.Frame, addr resolver.Address, slot int) {
	tracer().Errorf("'%s': resolved to %v, declared at slot %d", frame.Name, addr, slot)
	panic(&runtime.DivergenceError{Frame: frame.Name, Depth: addr.Depth, Slot: addr.Slot})
}

// class evaluates a class declaration. Methods capture the current frame.
func (in *Interpreter) class(c *ast.Class) error {
	var super *runtime.Class
	if c.Super != nil {
		v, err := in.eval(c.Super)
		if err != nil {
			return err
		}
		var ok bool
		if super, ok = v.(*runtime.Class); !ok {
			return at(newError(TypeError, "superclass of '%s' must be a class, is %s",
				c.Name.Name, runtime.TypeName(v)), c.Super)
		}
	}
	cls := runtime.NewClass(c.Name.Name, super)
	closure := in.frames().Current()
	for _, m := range c.Methods {
		fn := runtime.NewFunction(m, closure)
		switch {
		case m.Static:
			cls.Statics[fn.Name] = fn
		case fn.Name == ast.InitializerName:
			cls.Init = fn
		default:
			cls.Methods[fn.Name] = fn
		}
	}
	tracer().Debugf("class %s with %d methods", cls.Name, len(c.Methods))
	in.declare(c.Name, cls)
	return nil
}
