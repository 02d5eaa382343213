package runtime

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// GlobalTable is a flat name → value mapping for bindings which are not
// resolved to a frame slot. Names are kept sorted.
type GlobalTable struct {
	m *treemap.Map
}

// NewGlobalTable creates an empty global table.
func NewGlobalTable() *GlobalTable {
	return &GlobalTable{m: treemap.NewWithStringComparator()}
}

// Define binds a name, replacing an existing binding.
func (g *GlobalTable) Define(name string, v Value) {
	tracer().Debugf("define global %s", name)
	g.m.Put(name, v)
}

// Lookup finds the value bound to a name.
func (g *GlobalTable) Lookup(name string) (Value, bool) {
	v, found := g.m.Get(name)
	if !found {
		return nil, false
	}
	return v.(Value), true
}

// Assign overwrites an existing binding. It returns false if name has never
// been defined.
func (g *GlobalTable) Assign(name string, v Value) bool {
	if _, found := g.m.Get(name); !found {
		return false
	}
	g.m.Put(name, v)
	return true
}

// Size returns the number of global bindings.
func (g *GlobalTable) Size() int {
	return g.m.Size()
}

// Names returns the names of all global bindings, in sorted order.
func (g *GlobalTable) Names() []string {
	keys := g.m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Each calls f for every global binding, in sorted order of names.
func (g *GlobalTable) Each(f func(string, Value)) {
	g.m.Each(func(k interface{}, v interface{}) {
		f(k.(string), v.(Value))
	})
}
