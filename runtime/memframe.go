package runtime

import (
	"fmt"
)

// This module implements memory frames and a stack of memory frames.
// Memory frames are used by an interpreter to allocate local storage
// for active scopes. Frames mirror the scopes of the resolver: one frame
// per block, one per function call, one for the receiver of a bound method.
//
// Frames are shared between the call stack and closures having captured them.
// Writes into a frame are visible to every holder.

// Frame is a memory frame, representing a piece of memory for a scope.
type Frame struct {
	Name   string
	Parent *Frame
	values []Value
	slots  map[string]int
}

// NewFrame creates a new memory frame as a child of parent.
func NewFrame(nm string, parent *Frame) *Frame {
	mf := &Frame{
		Name:   nm,
		Parent: parent,
	}
	return mf
}

func (mf *Frame) String() string {
	return fmt.Sprintf("<mem %s #%d>", mf.Name, len(mf.values))
}

// IsRoot is a predicate: Is this a root frame?
func (mf *Frame) IsRoot() bool {
	return (mf.Parent == nil)
}

// Size returns the number of slots of the frame.
func (mf *Frame) Size() int {
	return len(mf.values)
}

// Declare appends a slot holding nil and records it for name.
// Returns the index of the new slot.
func (mf *Frame) Declare(name string) int {
	if mf.slots == nil {
		mf.slots = make(map[string]int)
	}
	slot := len(mf.values)
	mf.values = append(mf.values, Nil)
	mf.slots[name] = slot
	return slot
}

// Define overwrites the slot previously declared for name.
// Returns false if name has not been declared in this frame.
func (mf *Frame) Define(name string, v Value) bool {
	slot, ok := mf.slots[name]
	if !ok {
		return false
	}
	mf.values[slot] = v
	return true
}

// Slot returns the slot declared for name in this frame.
func (mf *Frame) Slot(name string) (int, bool) {
	slot, ok := mf.slots[name]
	return slot, ok
}

// Names returns a slot-ordered list of names declared in this frame.
func (mf *Frame) Names() []string {
	names := make([]string, len(mf.values))
	for name, slot := range mf.slots {
		names[slot] = name
	}
	return names
}

// DivergenceError signals an access to a frame slot which does not exist.
// This may only happen if resolver and interpreter disagree on the frame layout,
// which is an implementation error.
type DivergenceError struct {
	Frame string
	Depth int
	Slot  int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("frame divergence: no slot %d at depth %d from frame %s", e.Slot, e.Depth, e.Frame)
}

// Ancestor walks up depth parent links. It panics with a *DivergenceError if
// the chain is too short.
func (mf *Frame) Ancestor(depth int) *Frame {
	f := mf
	for i := 0; i < depth; i++ {
		if f.Parent == nil {
			panic(&DivergenceError{Frame: mf.Name, Depth: depth, Slot: -1})
		}
		f = f.Parent
	}
	return f
}

// GetAt reads slot of the frame depth parent links up. It panics with a
// *DivergenceError if the address does not exist.
func (mf *Frame) GetAt(depth, slot int) Value {
	f := mf.Ancestor(depth)
	if slot < 0 || slot >= len(f.values) {
		panic(&DivergenceError{Frame: mf.Name, Depth: depth, Slot: slot})
	}
	return f.values[slot]
}

// SetAt writes slot of the frame depth parent links up. It panics with a
// *DivergenceError if the address does not exist.
func (mf *Frame) SetAt(depth, slot int, v Value) {
	f := mf.Ancestor(depth)
	if slot < 0 || slot >= len(f.values) {
		panic(&DivergenceError{Frame: mf.Name, Depth: depth, Slot: slot})
	}
	f.values[slot] = v
}

// ---------------------------------------------------------------------------

// MemoryFrameStack is a (call-)stack of memory frames.
//
// The stack's TOS is the current frame. Blocks push and pop frames, calls
// switch to a frame whose parent is the callee's captured frame and switch
// back afterwards (see Enter and Leave).
type MemoryFrameStack struct {
	memoryFrameBase *Frame
	memoryFrameTOS  *Frame
}

// NewMemoryFrameStack creates a stack with a root frame.
func NewMemoryFrameStack(nm string) *MemoryFrameStack {
	mfst := &MemoryFrameStack{}
	mfst.PushNewMemoryFrame(nm)
	return mfst
}

// Current gets the current memory frame of a stack (TOS).
func (mfst *MemoryFrameStack) Current() *Frame {
	if mfst.memoryFrameTOS == nil {
		panic("attempt to access memory frame from empty stack")
	}
	return mfst.memoryFrameTOS
}

// Globals gets the outermost memory frame.
func (mfst *MemoryFrameStack) Globals() *Frame {
	if mfst.memoryFrameBase == nil {
		panic("attempt to access global memory frame from empty stack")
	}
	return mfst.memoryFrameBase
}

// PushNewMemoryFrame pushes a new memory frame as TOS.
// A frame is constructed, having the recent TOS as its parent.
func (mfst *MemoryFrameStack) PushNewMemoryFrame(nm string) *Frame {
	mfp := mfst.memoryFrameTOS
	newmf := NewFrame(nm, mfp)
	if mfp == nil { // the new frame is the global frame
		mfst.memoryFrameBase = newmf // make new mf anchor
	}
	mfst.memoryFrameTOS = newmf // new frame now TOS
	tracer().P("mem", newmf.Name).Debugf("pushing new memory frame")
	return newmf
}

// PopMemoryFrame pops the top-most memory frame. Returns the popped frame.
func (mfst *MemoryFrameStack) PopMemoryFrame() *Frame {
	if mfst.memoryFrameTOS == nil {
		panic("attempt to pop memory frame from empty call stack")
	}
	mf := mfst.memoryFrameTOS
	tracer().Debugf("popping memory frame [%s]", mf.Name)
	mfst.memoryFrameTOS = mfst.memoryFrameTOS.Parent
	return mf
}

// Enter makes frame the TOS and returns the previous TOS. Clients use it
// for calls, where the new frame is not a child of the caller's frame.
func (mfst *MemoryFrameStack) Enter(frame *Frame) (saved *Frame) {
	saved = mfst.memoryFrameTOS
	tracer().P("mem", frame.Name).Debugf("entering memory frame")
	mfst.memoryFrameTOS = frame
	return saved
}

// Leave restores a TOS previously returned by Enter.
func (mfst *MemoryFrameStack) Leave(saved *Frame) {
	tracer().Debugf("leaving memory frame [%s]", mfst.memoryFrameTOS.Name)
	mfst.memoryFrameTOS = saved
}

// Reset drops every frame above the root frame.
func (mfst *MemoryFrameStack) Reset() {
	mfst.memoryFrameTOS = mfst.memoryFrameBase
}
