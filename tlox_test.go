package tlox

import (
	"fmt"
	"testing"
)

func TestSpanExtend(t *testing.T) {
	s := Span{4, 7}.Extend(Span{2, 5})
	if s != (Span{2, 7}) {
		t.Errorf("expected (2…7), got %v", s)
	}
	if s = (Span{}).Extend(Span{3, 4}); s != (Span{3, 4}) {
		t.Errorf("null span should not contribute, got %v", s)
	}
	if s.Len() != 1 {
		t.Errorf("expected length 1, got %d", s.Len())
	}
}

func TestSpanPosition(t *testing.T) {
	src := "var a;\n  print a;"
	line, col := Span{9, 14}.Position(src)
	if line != 2 || col != 3 {
		t.Errorf("expected 2:3, got %d:%d", line, col)
	}
}

func TestErrorList(t *testing.T) {
	var el ErrorList
	if el.Err() != nil {
		t.Errorf("empty error list should yield nil error")
	}
	el = append(el, fmt.Errorf("first"), fmt.Errorf("second"))
	if el.Err() == nil || el.Error() != "2 errors:\n\tfirst\n\tsecond" {
		t.Errorf("unexpected error text %q", el.Error())
	}
}
