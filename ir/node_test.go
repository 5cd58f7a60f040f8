package ir

import (
	"errors"
	"testing"
)

func TestChildMutation(t *testing.T) {
	blk := Block(Nop(), ExprStmt(IntLit(1)), Nop())
	if got := blk.NumChildren(); got != 3 {
		t.Fatalf("NumChildren() = %d, want 3", got)
	}

	if err := blk.SetChild(1, Return(nil)); err != nil {
		t.Fatalf("SetChild(1) = %v", err)
	}
	if got := blk.Child(1).Kind(); got != KindReturn {
		t.Errorf("Child(1).Kind() = %s, want %s", got, KindReturn)
	}

	if err := blk.SetChild(3, Nop()); !errors.Is(err, ErrIndex) {
		t.Errorf("SetChild(3) = %v, want ErrIndex", err)
	}
	if err := blk.SetChild(-1, Nop()); !errors.Is(err, ErrIndex) {
		t.Errorf("SetChild(-1) = %v, want ErrIndex", err)
	}

	if err := blk.RemoveChild(0); err != nil {
		t.Fatalf("RemoveChild(0) = %v", err)
	}
	if got := blk.NumChildren(); got != 2 {
		t.Errorf("NumChildren() after remove = %d, want 2", got)
	}
	if err := blk.RemoveChild(2); !errors.Is(err, ErrIndex) {
		t.Errorf("RemoveChild(2) = %v, want ErrIndex", err)
	}

	if err := blk.InsertChild(0, Nop()); err != nil {
		t.Fatalf("InsertChild(0) = %v", err)
	}
	if got := blk.Child(0).Kind(); got != KindNop {
		t.Errorf("Child(0).Kind() = %s, want %s", got, KindNop)
	}
	if err := blk.InsertChild(blk.NumChildren()+1, Nop()); !errors.Is(err, ErrIndex) {
		t.Errorf("InsertChild(past end) = %v, want ErrIndex", err)
	}
}

func TestSetMetaIdempotent(t *testing.T) {
	n := IntLit(7)
	m := NewMeta(Location{File: "a.gram", Line: 3, Col: 9}).WithComment("seven")
	n.SetMeta(m)
	n.SetMeta(m)
	if got := n.Meta().Location().String(); got != "a.gram:3:9" {
		t.Errorf("Location() = %q, want %q", got, "a.gram:3:9")
	}
	if got := n.Meta().Comment(); got != "seven" {
		t.Errorf("Comment() = %q, want %q", got, "seven")
	}
	if n.Kind() != KindIntLit || n.NumChildren() != 0 {
		t.Error("SetMeta affected kind or children")
	}
}

func TestPropsSnapshot(t *testing.T) {
	n := Name("x")
	snap := n.Props()
	snap.set("id", StringValue("mutated"))
	v, _ := n.Prop(PropID)
	if s, _ := v.AsString(); s != "x" {
		t.Errorf("Prop(id) = %q after snapshot mutation, want %q", s, "x")
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := Block(
		ExprStmt(BinaryOp("+", IntLit(1), Name("x"))),
		Return(IntLit(2)),
	)
	orig.Child(0).SetPruneWalk(true)
	orig.SetMeta(NewMeta(Location{File: "u.gram", Line: 1, Col: 1}))

	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatal("clone not content-equal to original")
	}
	if clone == orig || clone.Child(0) == orig.Child(0) {
		t.Fatal("clone aliases original nodes")
	}
	if !clone.Child(0).PruneWalk() {
		t.Error("clone dropped prune flag")
	}
	if got := clone.Meta().Location().File; got != "u.gram" {
		t.Errorf("clone meta file = %q, want %q", got, "u.gram")
	}

	// Deep independence: mutating the clone leaves the original alone.
	if err := clone.SetChild(1, Nop()); err != nil {
		t.Fatal(err)
	}
	clone.Child(0).Child(0).SetProp("x", BoolValue(true))
	if orig.Child(1).Kind() != KindReturn {
		t.Error("mutating clone children affected original")
	}
	if orig.Child(0).Child(0).Props().Has("x") {
		t.Error("mutating clone props affected original")
	}
}

func TestAcyclicity(t *testing.T) {
	// A tree built only through the owning-child API never reaches a
	// node from itself.
	root := Module("m",
		ConstDecl("a", IntLit(1)),
		FunctionDecl("f",
			[]*Node{ParamDecl("p", New(KindTypeUInt32))},
			New(KindTypeBool),
			Block(Return(BoolLit(true)))),
	)
	seen := map[*Node]bool{}
	Walk(root, func(n *Node) bool {
		if seen[n] {
			t.Fatalf("node %s reachable from itself", n)
		}
		seen[n] = true
		return true
	})
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"bare", Nop(), "nop"},
		{"one prop", IntLit(3), "int-lit(value=3)"},
		{"sorted props", New(KindBinaryOp).
			WithProp("z", BoolValue(false)).
			WithProp("a", StringValue("s")), `binary-op(a="s", z=false)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := BinaryOp("+", IntLit(1), IntLit(2))
	b := BinaryOp("+", IntLit(1), IntLit(2))
	c := BinaryOp("+", IntLit(2), IntLit(1))
	if a.Hash() != b.Hash() {
		t.Error("equal nodes hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Error("operand order ignored by hash")
	}
}

func TestHashStableWithinProcess(t *testing.T) {
	n := BinaryOp("+", IntLit(1), IntLit(2))
	first := n.Hash()
	for i := 0; i < 4; i++ {
		if got := n.Hash(); got != first {
			t.Fatalf("call %d hashed %x, first call hashed %x", i+2, got, first)
		}
	}
	if got := n.Clone().Hash(); got != first {
		t.Errorf("clone hashed %x, original hashed %x", got, first)
	}
}
