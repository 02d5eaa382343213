package interp

import (
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/runtime"
)

// unary implements prefix operators '-' and '!'.
func unary(op ast.Operator, v runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.Minus:
		n, ok := v.(runtime.Number)
		if !ok {
			return nil, newError(TypeError, "invalid type %s for prefix %s", runtime.TypeName(v), op)
		}
		return -n, nil
	case ast.Bang:
		return runtime.Bool(!runtime.Truthy(v)), nil
	}
	return nil, newError(InternalError, "unknown prefix operator %s", op)
}

// binary implements arithmetic, comparison and equality operators.
// Equality never fails, all other operators require numbers, with the
// exception of '+', which concatenates strings, too.
func binary(op ast.Operator, l, r runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.Equal:
		return runtime.Bool(runtime.Equal(l, r)), nil
	case ast.NotEqual:
		return runtime.Bool(!runtime.Equal(l, r)), nil
	case ast.Plus:
		return add(l, r)
	}
	a, b, err := numbers(op, l, r)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.Minus:
		return a - b, nil
	case ast.Star:
		return a * b, nil
	case ast.Slash:
		if b == 0 {
			return nil, newError(ArithmeticError, "division by zero")
		}
		return a / b, nil
	case ast.Less:
		return runtime.Bool(a < b), nil
	case ast.LessEqual:
		return runtime.Bool(a <= b), nil
	case ast.Greater:
		return runtime.Bool(a > b), nil
	case ast.GreaterEqual:
		return runtime.Bool(a >= b), nil
	}
	return nil, newError(InternalError, "unknown binary operator %s", op)
}

// numbers checks both operands to be numbers, reporting the side which
// is not.
func numbers(op ast.Operator, l, r runtime.Value) (runtime.Number, runtime.Number, error) {
	a, ok := l.(runtime.Number)
	if !ok {
		return 0, 0, newError(TypeError, "lefthand side incorrect type '%s' for op %s", runtime.TypeName(l), op)
	}
	b, ok := r.(runtime.Number)
	if !ok {
		return 0, 0, newError(TypeError, "righthand side incorrect type '%s' for op %s", runtime.TypeName(r), op)
	}
	return a, b, nil
}

// add implements '+': number + number and string + string.
func add(l, r runtime.Value) (runtime.Value, error) {
	switch a := l.(type) {
	case runtime.Number:
		if b, ok := r.(runtime.Number); ok {
			return a + b, nil
		}
	case runtime.String:
		if b, ok := r.(runtime.String); ok {
			return a + b, nil
		}
	}
	return nil, newError(TypeError, "cannot add '%s' + '%s'", runtime.TypeName(l), runtime.TypeName(r))
}
