package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFrameDeclareDefine(t *testing.T) {
	f := NewFrame("block", nil)
	if slot := f.Declare("a"); slot != 0 {
		t.Errorf("expected slot 0, got %d", slot)
	}
	if v := f.GetAt(0, 0); v != Nil {
		t.Errorf("expected declared slot to hold nil, got %v", v)
	}
	f.Declare("b")
	if !f.Define("b", Number(2)) {
		t.Errorf("define of declared name failed")
	}
	if f.Define("c", Number(3)) {
		t.Errorf("define of undeclared name should fail")
	}
	if v := f.GetAt(0, 1); v != Number(2) {
		t.Errorf("expected 2, got %v", v)
	}
	if names := f.Names(); len(names) != 2 || names[1] != "b" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestFrameAddressing(t *testing.T) {
	outer := NewFrame("outer", nil)
	outer.Declare("x")
	outer.Define("x", String("outer"))
	inner := NewFrame("inner", outer)
	inner.Declare("x")
	inner.Define("x", String("inner"))
	if v := inner.GetAt(1, 0); v != String("outer") {
		t.Errorf("expected outer x, got %v", v)
	}
	inner.SetAt(1, 0, String("changed"))
	if v := outer.GetAt(0, 0); v != String("changed") {
		t.Errorf("write through child frame not visible in parent: %v", v)
	}
}

func TestFrameDivergence(t *testing.T) {
	f := NewFrame("lonely", nil)
	defer func() {
		r := recover()
		if _, ok := r.(*DivergenceError); !ok {
			t.Errorf("expected a divergence panic, got %v", r)
		}
	}()
	f.GetAt(2, 0)
}

func TestMemoryFrameStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tlox.runtime")
	defer teardown()
	//
	st := NewMemoryFrameStack("root")
	root := st.Current()
	if root != st.Globals() || !root.IsRoot() {
		t.Fatalf("expected root frame as TOS")
	}
	block := st.PushNewMemoryFrame("block")
	if block.Parent != root {
		t.Errorf("block frame should be child of root")
	}
	closure := NewFrame("closure", root)
	saved := st.Enter(NewFrame("call", closure))
	if saved != block || st.Current().Parent != closure {
		t.Errorf("call frame should be child of the closure frame")
	}
	st.Leave(saved)
	if st.PopMemoryFrame() != block || st.Current() != root {
		t.Errorf("expected to be back at root")
	}
}
