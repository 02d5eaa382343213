package interp

import (
	"fmt"
	"time"

	"github.com/npillmayer/tlox/runtime"
)

// Natives returns the native functions bound into every interpreter's
// global table:
//
//	clock()    seconds since the Unix epoch
//	string(v)  textual representation of v, as print would output it
func Natives() []*runtime.Native {
	return []*runtime.Native{
		runtime.NewNative("clock", clock),
		runtime.NewNative("string", toString),
	}
}

func clock(runtime.Host, []runtime.Value) (runtime.Value, error) {
	return runtime.Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
}

func toString(_ runtime.Host, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("string() takes exactly one argument, got %d", len(args))
	}
	return runtime.String(runtime.Stringify(args[0])), nil
}
