/*
Package interp implements the tree-walking evaluator of tlox.

Programs are parsed, resolved as a whole and then evaluated statement by
statement. Local variables are accessed by the lexical address the resolver
has computed; the interpreter's frames are laid out exactly like the
resolver's scopes:

	block             one frame, child of the current frame
	function call     one frame, child of the function's captured frame
	bound method      one frame holding 'this', child of the method's captured frame

Break, continue and return are passed up as control signals in the result of
statement execution; loops and calls consume the signals meant for them.
The first runtime error aborts the run.

Configuration

If 'panic-on-frame-divergence' is set, an access to a frame slot which does
not exist panics. Otherwise it is reported as an internal error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tlox/ast"
	"github.com/npillmayer/tlox/parser"
	"github.com/npillmayer/tlox/resolver"
	"github.com/npillmayer/tlox/runtime"
)

// tracer traces with key 'tlox.interp'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.interp")
}

// Interpreter evaluates programs. Globals and resolved addresses persist
// between runs, so an interpreter may serve the successive lines of a REPL.
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	rt     *runtime.Runtime
	locals *resolver.Locals
	out    io.Writer
}

var _ runtime.Host = (*Interpreter)(nil)

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer for print statements. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithNatives binds additional native functions into the global table.
func WithNatives(natives ...*runtime.Native) Option {
	return func(in *Interpreter) {
		for _, n := range natives {
			in.rt.Globals.Define(n.Name, n)
		}
	}
}

// New creates an interpreter with the standard natives bound.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		rt:     runtime.NewRuntimeEnvironment(),
		locals: resolver.NewLocals(),
		out:    os.Stdout,
	}
	for _, n := range Natives() {
		in.rt.Globals.Define(n.Name, n)
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Output is part of interface runtime.Host.
func (in *Interpreter) Output() io.Writer {
	return in.out
}

// Globals returns the global bindings.
func (in *Interpreter) Globals() *runtime.GlobalTable {
	return in.rt.Globals
}

func (in *Interpreter) frames() *runtime.MemoryFrameStack {
	return in.rt.MemFrameStack
}

// Run parses, resolves and evaluates source. Syntax and resolution errors are
// returned as a tlox.ErrorList, nothing is evaluated then. A runtime error is
// returned as *RuntimeError.
func (in *Interpreter) Run(source string) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	if err := in.Resolve(program); err != nil {
		return err
	}
	return in.Interpret(program)
}

// Resolve computes the lexical addresses of a program.
func (in *Interpreter) Resolve(program []ast.Stmt) error {
	return resolver.Resolve(program, in.locals)
}

// Interpret evaluates a resolved program, statement by statement, and stops
// at the first error.
func (in *Interpreter) Interpret(program []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			derr, ok := r.(*runtime.DivergenceError)
			if !ok {
				panic(r)
			}
			if gconf.GetBool("panic-on-frame-divergence") {
				panic("post-mortem: " + derr.Error())
			}
			tracer().Errorf("%v", derr)
			err = newError(InternalError, "%s", derr.Error())
		}
		in.frames().Reset()
	}()
	for _, stmt := range program {
		if _, e := in.exec(stmt); e != nil {
			tracer().Debugf("run aborted: %v", e)
			return e
		}
	}
	return nil
}
