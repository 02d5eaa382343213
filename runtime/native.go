package runtime

import "io"

// Host is the interpreter, as seen by native functions.
type Host interface {
	Output() io.Writer
}

// NativeFn is the signature of host-provided functions. An error returned
// by a native function is reported as a native error by the interpreter.
type NativeFn func(host Host, args []Value) (Value, error)

// Native is a host-provided function.
type Native struct {
	Name string
	Fn   NativeFn
}

// NewNative wraps a Go function as a runtime value.
func NewNative(name string, fn NativeFn) *Native {
	return &Native{Name: name, Fn: fn}
}

func (n *Native) String() string {
	return "[native]()"
}
