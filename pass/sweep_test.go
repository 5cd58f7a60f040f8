package pass

import (
	"testing"

	"github.com/gramlang/gram/ir"
)

func runSweep(t *testing.T, root *ir.Node) bool {
	t.Helper()
	changed, err := NewSweep().Run(NewContext(), root)
	if err != nil {
		t.Fatal(err)
	}
	return changed
}

func TestSweepRemovesNops(t *testing.T) {
	root := ir.Block(ir.Nop(), ir.Return(nil), ir.Nop())
	if !runSweep(t, root) {
		t.Fatal("sweep reported no change")
	}
	if got := root.NumChildren(); got != 1 {
		t.Fatalf("block has %d statements, want 1", got)
	}
	if root.Child(0).Kind() != ir.KindReturn {
		t.Error("return statement removed")
	}
}

func TestSweepConstantExprStatement(t *testing.T) {
	root := ir.Block(ir.ExprStmt(ir.IntLit(5)), ir.ExprStmt(ir.Call(ir.Name("f"))))
	runSweep(t, root)
	if got := root.NumChildren(); got != 1 {
		t.Fatalf("block has %d statements, want 1", got)
	}
	if root.Child(0).Child(0).Kind() != ir.KindCall {
		t.Error("call statement removed; calls may have effects")
	}
}

func TestSweepDeadBranches(t *testing.T) {
	thenBlk := ir.Block(ir.Return(ir.IntLit(1)))
	elseBlk := ir.Block(ir.Return(ir.IntLit(2)))

	t.Run("if true", func(t *testing.T) {
		root := ir.Block(ir.If(ir.BoolLit(true), thenBlk.Clone(), elseBlk.Clone()))
		runSweep(t, root)
		if !ir.Equal(root.Child(0), thenBlk) {
			t.Errorf("reduced to %s, want then branch", root.Child(0))
		}
	})
	t.Run("if false with else", func(t *testing.T) {
		root := ir.Block(ir.If(ir.BoolLit(false), thenBlk.Clone(), elseBlk.Clone()))
		runSweep(t, root)
		if !ir.Equal(root.Child(0), elseBlk) {
			t.Errorf("reduced to %s, want else branch", root.Child(0))
		}
	})
	t.Run("if false without else", func(t *testing.T) {
		root := ir.Block(ir.If(ir.BoolLit(false), thenBlk.Clone(), nil), ir.Return(nil))
		runSweep(t, root)
		if got := root.NumChildren(); got != 1 {
			t.Errorf("block has %d statements, want 1", got)
		}
	})
	t.Run("while false", func(t *testing.T) {
		root := ir.Block(ir.While(ir.BoolLit(false), thenBlk.Clone()), ir.Return(nil))
		runSweep(t, root)
		if got := root.NumChildren(); got != 1 {
			t.Errorf("block has %d statements, want 1", got)
		}
	})
	t.Run("dynamic condition kept", func(t *testing.T) {
		root := ir.Block(ir.If(ir.Name("flag"), thenBlk.Clone(), nil))
		if runSweep(t, root) {
			t.Error("sweep changed an if with a dynamic condition")
		}
	})
}

func TestSweepUnreachableAfterReturn(t *testing.T) {
	root := ir.Block(
		ir.Return(ir.IntLit(1)),
		ir.ExprStmt(ir.Call(ir.Name("f"))),
		ir.Return(ir.IntLit(2)),
	)
	runSweep(t, root)
	if got := root.NumChildren(); got != 1 {
		t.Fatalf("block has %d statements after return, want 1", got)
	}
}

func TestSweepSkipsPrunedSubtrees(t *testing.T) {
	frozen := ir.Block(ir.Nop()).WithPruneWalk(true)
	root := ir.Block(frozen)
	if runSweep(t, root) {
		t.Error("sweep descended into a pruned subtree")
	}
	if frozen.NumChildren() != 1 {
		t.Error("pruned block rewritten")
	}
}
