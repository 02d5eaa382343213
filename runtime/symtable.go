package runtime

import (
	"fmt"
)

// Symbol tables are attached to scopes. The resolver builds a path of
// scopes while walking the syntax tree and discards scopes it leaves.

// --- Tags -------------------------------------------------------

// Tag is the type of entries in symbol tables. A tag records the slot
// reserved for a variable within its frame, and whether the variable's
// declaration has completed (i.e., its initializer has been resolved).
type Tag struct {
	name    string
	Slot    int
	Defined bool
}

// NewTag creates a new tag, not yet defined and without a slot.
func NewTag(nm string) *Tag {
	return &Tag{name: nm, Slot: -1}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'@%d defined=%v>", s.name, s.Slot, s.Defined)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable maps names to tags.
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Tag)}
}

// ResolveTag returns the tag for a name, or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag creates a new tag and stores it into the symbol table,
// replacing a tag of the same name. The name may not be empty.
// Returns the new tag and the replaced one (or nil).
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.Table[tagname]
	t.Table[tagname] = tag
	return tag, old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each calls f for every tag in the table, in no particular order.
func (t *SymbolTable) Each(f func(string, *Tag)) {
	for k, v := range t.Table {
		f(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link back to a
// parent scope, forming a tree.
//
// Every scope besides the global one corresponds to exactly one runtime frame.
// Slots are handed out in declaration order, starting at 0, the same way
// Frame.Declare does at runtime.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
	slots  int
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// Declare reserves the next slot for a name in this scope. The new tag is not
// yet defined. If the name has already been declared within this scope, the
// existing tag is returned and ok is false.
func (s *Scope) Declare(tagname string) (tag *Tag, ok bool) {
	if tag = s.symtab.ResolveTag(tagname); tag != nil {
		return tag, false
	}
	tag, _ = s.symtab.DefineTag(tagname)
	tag.Slot = s.slots
	s.slots++
	return tag, true
}

// Define marks a declared name as defined. Returns nil if the name has not
// been declared in this scope.
func (s *Scope) Define(tagname string) *Tag {
	tag := s.symtab.ResolveTag(tagname)
	if tag != nil {
		tag.Defined = true
	}
	return tag
}

// Slots returns the number of slots reserved in this scope.
func (s *Scope) Slots() int {
	return s.slots
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	tag, _, scope := s.Lookup(tagname)
	return tag, scope
}

// Lookup finds a tag, searching outwards from s. Returns the tag (or nil), the
// number of parent links crossed and the scope the tag was found in.
func (s *Scope) Lookup(tagname string) (*Tag, int, *Scope) {
	depth := 0
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(tagname); tag != nil {
			return tag, depth, sc
		}
		depth++
	}
	return nil, -1, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus
// building a tree from scopes which are pushed an popped to/from the stack.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// IsGlobal is true if the TOS is the global scope.
func (scst *ScopeTree) IsGlobal() bool {
	return scst.ScopeTOS != nil && scst.ScopeTOS == scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is constructed, including a symbol table
// for variable declarations.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}

// Unwind pops every scope but the global one.
func (scst *ScopeTree) Unwind() {
	scst.ScopeTOS = scst.ScopeBase
}
