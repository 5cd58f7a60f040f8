package pass

import (
	"github.com/gramlang/gram/debug"
	"github.com/gramlang/gram/ir"
)

// Resolve binds name expressions to the declarations they refer to.
// A successful binding writes the declaration's symbol index into the
// node's binding property and records the declaration in the context's
// symbol table; the tree itself never holds a pointer to the
// declaration. Unresolved names get an error diagnostic and are left
// unchanged so later passes can keep going.
type Resolve struct {
	diagnosed map[*ir.Node]bool
}

// NewResolve builds the resolution pass.
func NewResolve() *Resolve {
	return &Resolve{diagnosed: map[*ir.Node]bool{}}
}

func (*Resolve) Name() string { return "resolve" }

func (r *Resolve) Run(ctx *Context, root *ir.Node) (bool, error) {
	changed := r.resolve(ctx, NewScope(nil), root)
	return changed, nil
}

func (r *Resolve) resolve(ctx *Context, scope *Scope, n *ir.Node) bool {
	if n.PruneWalk() {
		return false
	}
	changed := false
	if opensScope(n.Kind()) {
		scope = NewScope(scope)
		// Hoist immediate child declarations so later siblings, and
		// forward references at module level, can see them.
		for _, c := range n.Children() {
			d, ok := c.AsDeclaration()
			if !ok {
				continue
			}
			if id := d.ID(); id != "" {
				if err := scope.Declare(id, c); err != nil && !r.diagnosed[c] {
					r.diagnosed[c] = true
					ctx.Diags.Errorf(c.Location(), "%v", err)
				}
			}
		}
	}
	if n.Kind() == ir.KindFunctionDecl {
		// Parameters live in the function's own scope, visible to the
		// result type and body.
		scope = NewScope(scope)
		for _, c := range n.Children() {
			if c.Kind() != ir.KindParamDecl {
				continue
			}
			d, _ := c.AsDeclaration()
			if id := d.ID(); id != "" {
				if err := scope.Declare(id, c); err != nil && !r.diagnosed[c] {
					r.diagnosed[c] = true
					ctx.Diags.Errorf(c.Location(), "%v", err)
				}
			}
		}
	}
	if n.Kind() == ir.KindName {
		if r.bind(ctx, scope, n) {
			changed = true
		}
	}
	for i := 0; i < len(n.Children()); i++ {
		if r.resolve(ctx, scope, n.Children()[i]) {
			changed = true
		}
	}
	return changed
}

func (r *Resolve) bind(ctx *Context, scope *Scope, n *ir.Node) bool {
	rv, ok := n.AsResolvable()
	if !ok {
		return false
	}
	if _, bound := rv.Binding(); bound {
		return false
	}
	id := rv.ID()
	decl, ok := scope.Lookup(id)
	if !ok {
		if !r.diagnosed[n] {
			r.diagnosed[n] = true
			ctx.Diags.Errorf(n.Location(), "cannot resolve %q", id)
		}
		return false
	}
	sym := ctx.Symbols.Intern(decl)
	n.SetProp(ir.PropBinding, ir.IntValue(sym))
	if debug.Resolve() {
		debug.Logf("resolve: bound %q to symbol %d\n", id, sym)
	}
	return true
}

// opensScope reports whether a node introduces a lexical level whose
// immediate declarations are visible throughout it.
func opensScope(k ir.Kind) bool {
	switch k {
	case ir.KindModule, ir.KindBlock, ir.KindUnitDecl:
		return true
	}
	return false
}
