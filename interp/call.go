package interp

import (
	"errors"

	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/runtime"
)

// call evaluates callee and arguments from left to right and dispatches on
// the kind of the callee.
func (in *Interpreter) call(c *ast.Call) (runtime.Value, error) {
	callee, err := in.eval(c.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, len(c.Args))
	for i, a := range c.Args {
		if args[i], err = in.eval(a); err != nil {
			return nil, err
		}
	}
	switch fn := callee.(type) {
	case *runtime.Native:
		return in.callNative(fn, args)
	case *runtime.Function:
		return in.callFunction(fn, args)
	case *runtime.Class:
		return in.instantiate(fn, args)
	}
	return nil, newError(TypeError, "type '%s' is not callable", runtime.TypeName(callee))
}

func (in *Interpreter) callNative(fn *runtime.Native, args []runtime.Value) (runtime.Value, error) {
	v, err := fn.Fn(in, args)
	if err != nil {
		var rerr *RuntimeError
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, newError(NativeError, "%s", err.Error())
	}
	if v == nil {
		return runtime.Nil, nil
	}
	return v, nil
}

// callFunction calls a closure within a new frame, child of the closure's
// captured frame. Missing arguments are nil, surplus arguments are ignored.
func (in *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	name := fn.Name
	if name == "" {
		name = "fun"
	}
	tracer().Debugf("call %s with %d argument(s)", name, len(args))
	saved := in.frames().Enter(runtime.NewFrame(name, fn.Closure))
	defer in.frames().Leave(saved)
	for i, p := range fn.Params() {
		var v runtime.Value = runtime.Nil
		if i < len(args) {
			v = args[i]
		}
		in.declare(p, v)
	}
	ev, err := in.execAll(fn.Decl.Body)
	if err != nil {
		return nil, err
	}
	if ev.Ctrl == Return {
		return ev.Val, nil
	}
	return runtime.Nil, nil
}

// instantiate creates an instance and runs the initializer of the class or of
// its nearest ancestor having one. The initializer's result is discarded.
func (in *Interpreter) instantiate(cls *runtime.Class, args []runtime.Value) (runtime.Value, error) {
	inst := runtime.NewInstance(cls)
	if init := cls.FindInit(); init != nil {
		if _, err := in.callFunction(init.Bind(inst), args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
