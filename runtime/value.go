package runtime

import (
	"strconv"
)

// Value is a runtime value. The set of value types is closed: Number, String,
// Bool, NilValue, *Function, *Native, *Class and *Instance.
type Value interface {
	String() string
	isValue()
}

// Number is the only numeric type.
type Number float64

// String is a string value.
type String string

// Bool is a boolean value.
type Bool bool

// NilValue is the type of Nil.
type NilValue struct{}

// Nil is the nil value. Fresh slots hold Nil.
var Nil = NilValue{}

func (Number) isValue()    {}
func (String) isValue()    {}
func (Bool) isValue()      {}
func (NilValue) isValue()  {}
func (*Function) isValue() {}
func (*Native) isValue()   {}
func (*Class) isValue()    {}
func (*Instance) isValue() {}

// String formats numbers as shortest decimal representation, without
// exponent: 3, 0.5, 1000000.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (NilValue) String() string {
	return "nil"
}

// Stringify returns the textual representation of a value, as printed by
// the print statement.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// TypeName returns the name of the type of a value, for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case NilValue, nil:
		return "nil"
	case *Function:
		return "function"
	case *Native:
		return "native function"
	case *Class:
		return "class"
	case *Instance:
		return "class instance"
	}
	panic("unknown value type")
}

// Truthy decides the truth of a value: nil and false are falsy, everything
// else is truthy, including the number 0 and the empty string.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil, NilValue:
		return false
	case Bool:
		return bool(x)
	}
	return true
}

// Equal compares primitives by value and functions, natives, classes and
// instances by identity. Values of different types are never equal.
func Equal(a, b Value) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	case *Native:
		y, ok := b.(*Native)
		return ok && x == y
	case *Class:
		y, ok := b.(*Class)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	}
	return false
}
