package pass

import (
	"github.com/gramlang/gram/debug"
	"github.com/gramlang/gram/ir"
)

// Fold rewrites constant expressions to their literal value, bottom up.
// A folded literal replaces the expression in its parent slot, keeps
// the expression's meta, and is marked prune-walk so generic traversal
// treats it as final. Invalid operations (division by zero) produce a
// diagnostic and leave the subtree unchanged.
type Fold struct {
	diagnosed map[*ir.Node]bool
}

// NewFold builds the constant folding pass.
func NewFold() *Fold {
	return &Fold{diagnosed: map[*ir.Node]bool{}}
}

func (*Fold) Name() string { return "fold" }

func (f *Fold) Run(ctx *Context, root *ir.Node) (bool, error) {
	return f.fold(ctx, root), nil
}

// fold recurses into n's children first, then tries to replace each
// child slot with a folded form.
func (f *Fold) fold(ctx *Context, n *ir.Node) bool {
	if n.PruneWalk() {
		return false
	}
	changed := false
	for i := 0; i < n.NumChildren(); i++ {
		child := n.Child(i)
		if child.PruneWalk() {
			continue
		}
		if f.fold(ctx, child) {
			changed = true
		}
		repl := f.foldExpr(ctx, child)
		if repl == nil {
			continue
		}
		if err := n.SetChild(i, repl); err != nil {
			// The loop bound tracks NumChildren, so this slot exists.
			panic(err)
		}
		if debug.Fold() {
			debug.Logf("fold: %s -> %s\n", child.String(), repl.String())
		}
		changed = true
	}
	return changed
}

// foldExpr returns the folded replacement for n, or nil when n is not
// foldable.
func (f *Fold) foldExpr(ctx *Context, n *ir.Node) *ir.Node {
	switch n.Kind() {
	case ir.KindGrouping:
		inner := n.Child(0)
		if _, ok := inner.AsConstant(); ok {
			return inner
		}
	case ir.KindUnaryOp:
		return f.foldUnary(n)
	case ir.KindBinaryOp:
		return f.foldBinary(ctx, n)
	case ir.KindConditional:
		cond := n.Child(0)
		if cond.Kind() == ir.KindBoolLit {
			v, _ := cond.Prop(ir.PropValue)
			if b, _ := v.AsBool(); b {
				return n.Child(1)
			}
			return n.Child(2)
		}
	}
	return nil
}

func (f *Fold) foldUnary(n *ir.Node) *ir.Node {
	opv, _ := n.Prop(ir.PropOp)
	op, _ := opv.AsString()
	operand := n.Child(0)
	v, ok := operand.Prop(ir.PropValue)
	if !ok {
		return nil
	}
	switch {
	case op == "-" && operand.Kind() == ir.KindIntLit:
		i, _ := v.AsInt()
		return folded(ir.IntLit(-i), n)
	case op == "!" && operand.Kind() == ir.KindBoolLit:
		b, _ := v.AsBool()
		return folded(ir.BoolLit(!b), n)
	}
	return nil
}

func (f *Fold) foldBinary(ctx *Context, n *ir.Node) *ir.Node {
	opv, _ := n.Prop(ir.PropOp)
	op, _ := opv.AsString()
	l, r := n.Child(0), n.Child(1)
	if l.Kind() != r.Kind() {
		return nil
	}
	switch l.Kind() {
	case ir.KindIntLit:
		lv, _ := l.Prop(ir.PropValue)
		rv, _ := r.Prop(ir.PropValue)
		li, _ := lv.AsInt()
		ri, _ := rv.AsInt()
		return f.foldIntOp(ctx, n, op, li, ri)
	case ir.KindBoolLit:
		lv, _ := l.Prop(ir.PropValue)
		rv, _ := r.Prop(ir.PropValue)
		lb, _ := lv.AsBool()
		rb, _ := rv.AsBool()
		switch op {
		case "&&":
			return folded(ir.BoolLit(lb && rb), n)
		case "||":
			return folded(ir.BoolLit(lb || rb), n)
		case "==":
			return folded(ir.BoolLit(lb == rb), n)
		case "!=":
			return folded(ir.BoolLit(lb != rb), n)
		}
	case ir.KindStringLit:
		if op == "+" {
			lv, _ := l.Prop(ir.PropValue)
			rv, _ := r.Prop(ir.PropValue)
			ls, _ := lv.AsString()
			rs, _ := rv.AsString()
			return folded(ir.StringLit(ls+rs), n)
		}
	}
	return nil
}

func (f *Fold) foldIntOp(ctx *Context, n *ir.Node, op string, l, r int64) *ir.Node {
	switch op {
	case "+":
		return folded(ir.IntLit(l+r), n)
	case "-":
		return folded(ir.IntLit(l-r), n)
	case "*":
		return folded(ir.IntLit(l*r), n)
	case "/", "%":
		if r == 0 {
			if !f.diagnosed[n] {
				f.diagnosed[n] = true
				ctx.Diags.Errorf(n.Location(), "division by zero in constant expression")
			}
			return nil
		}
		if op == "/" {
			return folded(ir.IntLit(l/r), n)
		}
		return folded(ir.IntLit(l%r), n)
	case "==":
		return folded(ir.BoolLit(l == r), n)
	case "!=":
		return folded(ir.BoolLit(l != r), n)
	case "<":
		return folded(ir.BoolLit(l < r), n)
	case "<=":
		return folded(ir.BoolLit(l <= r), n)
	case ">":
		return folded(ir.BoolLit(l > r), n)
	case ">=":
		return folded(ir.BoolLit(l >= r), n)
	}
	return nil
}

// folded finishes a freshly computed literal: it inherits the folded
// expression's provenance and is marked final for traversal.
func folded(lit, orig *ir.Node) *ir.Node {
	lit.SetMeta(orig.Meta())
	lit.SetPruneWalk(true)
	return lit
}
