package pass

import (
	"github.com/gramlang/gram/debug"
	"github.com/gramlang/gram/ir"
)

// Sweep removes dead statements: nops, effect-free expression
// statements, code behind a return, and branches whose condition folded
// to a constant. It runs after Fold in the standard pipeline so the two
// iterate to a fixed point together.
type Sweep struct{}

// NewSweep builds the dead-code elimination pass.
func NewSweep() *Sweep { return &Sweep{} }

func (*Sweep) Name() string { return "sweep" }

func (s *Sweep) Run(ctx *Context, root *ir.Node) (bool, error) {
	return s.sweep(root), nil
}

func (s *Sweep) sweep(n *ir.Node) bool {
	if n.PruneWalk() {
		return false
	}
	changed := false
	if n.Kind() == ir.KindBlock {
		if s.sweepBlock(n) {
			changed = true
		}
	}
	for i := 0; i < n.NumChildren(); i++ {
		if s.sweep(n.Child(i)) {
			changed = true
		}
	}
	return changed
}

func (s *Sweep) sweepBlock(blk *ir.Node) bool {
	changed := false
	for i := 0; i < blk.NumChildren(); {
		stmt := blk.Child(i)
		if dead(stmt) {
			if err := blk.RemoveChild(i); err != nil {
				panic(err)
			}
			if debug.Sweep() {
				debug.Logf("sweep: removed %s\n", stmt.String())
			}
			changed = true
			continue
		}
		if repl := liveBranch(stmt); repl != nil {
			if err := blk.SetChild(i, repl); err != nil {
				panic(err)
			}
			if debug.Sweep() {
				debug.Logf("sweep: reduced %s to %s\n", stmt.String(), repl.String())
			}
			changed = true
			continue
		}
		if stmt.Kind() == ir.KindReturn && i+1 < blk.NumChildren() {
			// Everything behind a return is unreachable.
			for blk.NumChildren() > i+1 {
				if err := blk.RemoveChild(blk.NumChildren() - 1); err != nil {
					panic(err)
				}
			}
			changed = true
		}
		i++
	}
	return changed
}

// dead reports whether a statement can be dropped outright.
func dead(stmt *ir.Node) bool {
	switch stmt.Kind() {
	case ir.KindNop:
		return true
	case ir.KindExprStmt:
		// A bare constant has no effect.
		_, isConst := stmt.Child(0).AsConstant()
		return isConst
	case ir.KindWhile:
		cond := stmt.Child(0)
		if cond.Kind() == ir.KindBoolLit {
			v, _ := cond.Prop(ir.PropValue)
			b, _ := v.AsBool()
			return !b
		}
	case ir.KindIf:
		// if false with no else branch.
		cond := stmt.Child(0)
		if cond.Kind() == ir.KindBoolLit && stmt.NumChildren() == 2 {
			v, _ := cond.Prop(ir.PropValue)
			b, _ := v.AsBool()
			return !b
		}
	}
	return false
}

// liveBranch returns the branch an if-statement with a constant
// condition reduces to, or nil.
func liveBranch(stmt *ir.Node) *ir.Node {
	if stmt.Kind() != ir.KindIf {
		return nil
	}
	cond := stmt.Child(0)
	if cond.Kind() != ir.KindBoolLit {
		return nil
	}
	v, _ := cond.Prop(ir.PropValue)
	b, _ := v.AsBool()
	if b {
		return stmt.Child(1)
	}
	if stmt.NumChildren() == 3 {
		return stmt.Child(2)
	}
	return nil
}
