/*
Package runtime implements an interpreter runtime, consisting of
scopes, memory frames, global bindings and runtime values.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

This module implements data structures for scope trees and symbol tables
attached to them. They are used during static analysis only: the resolver
reserves a slot for every local variable and records whether its declaration
is complete.

Memory Frames

This module implements memory frames and a stack of them.
Memory frames are used by an interpreter to allocate local storage
for active scopes. A frame is a slot-indexed array of values, linked to the
frame it was created in. Frames are laid out exactly as the scopes of the
resolver, so a variable is addressed by (depth, slot) without a name lookup.

Values

Runtime values form a closed set of types: numbers, strings, booleans, nil,
functions (closures), native functions, classes and class instances.

Globals

Names which are not resolved to a local slot live in a flat global table.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tlox.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("tlox.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	MemFrameStack *MemoryFrameStack // runtime stack of memory frames
	Globals       *GlobalTable      // bindings not resolved to a frame slot
}

// NewRuntimeEnvironment constructs a new runtime environment, with an empty
// root frame and an empty global table.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.MemFrameStack = NewMemoryFrameStack("root") // initialize memory frame stack
	rt.Globals = NewGlobalTable()
	return rt
}
