package runtime

// Class is a class value. Single inheritance only.
type Class struct {
	Name    string
	Super   *Class
	Init    *Function // designated initializer, may be nil
	Methods map[string]*Function
	Statics map[string]*Function
}

// NewClass creates a class without methods.
func NewClass(name string, super *Class) *Class {
	return &Class{
		Name:    name,
		Super:   super,
		Methods: make(map[string]*Function),
		Statics: make(map[string]*Function),
	}
}

// FindMethod looks up an instance method, walking the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	for cl := c; cl != nil; cl = cl.Super {
		if m, ok := cl.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// FindInit finds the initializer of the class or of the nearest ancestor
// which has one.
func (c *Class) FindInit() *Function {
	for cl := c; cl != nil; cl = cl.Super {
		if cl.Init != nil {
			return cl.Init
		}
	}
	return nil
}

// Static looks up a static method of this class. Neither instance methods nor
// statics of superclasses are considered.
func (c *Class) Static(name string) *Function {
	return c.Statics[name]
}

func (c *Class) String() string {
	return "[class " + c.Name + "]"
}

// ---------------------------------------------------------------------------

// Instance is an instance of a class.
type Instance struct {
	Class *Class
	props map[string]Value
}

// NewInstance creates an instance without properties.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, props: make(map[string]Value)}
}

// Get looks up a property: own properties first, then methods of the class
// and its ancestors. Methods are returned bound to the instance. Functions
// stored as properties are returned as they are.
func (inst *Instance) Get(name string) (Value, bool) {
	if v, ok := inst.props[name]; ok {
		return v, true
	}
	if m := inst.Class.FindMethod(name); m != nil {
		return m.Bind(inst), true
	}
	return nil, false
}

// Set writes a property.
func (inst *Instance) Set(name string, v Value) {
	inst.props[name] = v
}

// Properties returns the number of own properties.
func (inst *Instance) Properties() int {
	return len(inst.props)
}

func (inst *Instance) String() string {
	return inst.Class.Name + " {}"
}
