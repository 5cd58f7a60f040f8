package pass

import (
	"fmt"

	"github.com/gramlang/gram/ir"
)

// SymbolTable is the side table mapping symbol indices to declaration
// nodes. Indices are the stable handles a resolution pass writes into
// the tree (the binding property); the pointers here are non-owning and
// a later pass may rebind an index to a replacement declaration.
type SymbolTable struct {
	decls []*ir.Node
	index map[*ir.Node]int64
}

// NewSymbolTable builds an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: map[*ir.Node]int64{}}
}

// Intern returns the symbol index for decl, assigning the next free
// index on first sight.
func (t *SymbolTable) Intern(decl *ir.Node) int64 {
	if sym, ok := t.index[decl]; ok {
		return sym
	}
	sym := int64(len(t.decls))
	t.decls = append(t.decls, decl)
	t.index[decl] = sym
	return sym
}

// Decl returns the declaration bound to sym.
func (t *SymbolTable) Decl(sym int64) (*ir.Node, bool) {
	if sym < 0 || sym >= int64(len(t.decls)) {
		return nil, false
	}
	return t.decls[sym], true
}

// Rebind points sym at a replacement declaration, e.g. after a pass
// substituted the original node.
func (t *SymbolTable) Rebind(sym int64, decl *ir.Node) error {
	if sym < 0 || sym >= int64(len(t.decls)) {
		return fmt.Errorf("rebind of unknown symbol %d", sym)
	}
	delete(t.index, t.decls[sym])
	t.decls[sym] = decl
	t.index[decl] = sym
	return nil
}

// Len returns the number of interned symbols.
func (t *SymbolTable) Len() int { return len(t.decls) }

// Scope is one lexical level of visible declarations. Lookups fall
// through to the parent.
type Scope struct {
	parent *Scope
	syms   map[string]*ir.Node
}

// NewScope builds a scope nested under parent; parent may be nil for
// the root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, syms: map[string]*ir.Node{}}
}

// Declare makes decl visible under id in this scope. Redeclaring an id
// within one scope is an error; shadowing an outer scope is not.
func (s *Scope) Declare(id string, decl *ir.Node) error {
	if _, ok := s.syms[id]; ok {
		return fmt.Errorf("duplicate declaration of %q", id)
	}
	s.syms[id] = decl
	return nil
}

// Lookup finds the nearest declaration of id, walking outward.
func (s *Scope) Lookup(id string) (*ir.Node, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if d, ok := sc.syms[id]; ok {
			return d, true
		}
	}
	return nil, false
}
