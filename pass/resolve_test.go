package pass

import (
	"strings"
	"testing"

	"github.com/gramlang/gram/ir"
)

func binding(t *testing.T, n *ir.Node) int64 {
	t.Helper()
	rv, ok := n.AsResolvable()
	if !ok {
		t.Fatalf("%s node is not resolvable", n.Kind())
	}
	sym, bound := rv.Binding()
	if !bound {
		t.Fatalf("%s not bound", n)
	}
	return sym
}

func TestResolveModuleLevel(t *testing.T) {
	use := ir.Name("limit")
	// Forward reference: the use precedes the declaration.
	root := ir.Module("m",
		ir.FunctionDecl("f", nil, ir.New(ir.KindTypeUInt32),
			ir.Block(ir.Return(use))),
		ir.ConstDecl("limit", ir.IntLit(1024)),
	)
	ctx := NewContext()
	changed, err := NewResolve().Run(ctx, root)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("resolve reported no change")
	}
	if ctx.Diags.HasErrors() {
		t.Fatalf("diagnostics: %v", ctx.Diags.Diagnostics())
	}
	sym := binding(t, use)
	decl, ok := ctx.Symbols.Decl(sym)
	if !ok || decl != root.Child(1) {
		t.Error("binding does not reach the const declaration")
	}
}

func TestResolveShadowing(t *testing.T) {
	inner := ir.Name("x")
	root := ir.Module("m",
		ir.ConstDecl("x", ir.IntLit(1)),
		ir.FunctionDecl("f",
			[]*ir.Node{ir.ParamDecl("x", ir.New(ir.KindTypeBool))},
			ir.New(ir.KindTypeBool),
			ir.Block(ir.Return(inner))),
	)
	ctx := NewContext()
	if _, err := NewResolve().Run(ctx, root); err != nil {
		t.Fatal(err)
	}
	sym := binding(t, inner)
	decl, _ := ctx.Symbols.Decl(sym)
	if decl.Kind() != ir.KindParamDecl {
		t.Errorf("inner x bound to %s, want the shadowing parameter", decl.Kind())
	}
}

func TestResolveUnresolved(t *testing.T) {
	bad := ir.Name("ghost")
	bad.SetMeta(ir.NewMeta(ir.Location{File: "g.gram", Line: 3, Col: 1}))
	root := ir.Module("m", ir.ConstDecl("c", bad))

	ctx := NewContext()
	res := NewResolve()
	changed, err := res.Run(ctx, root)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("resolve reported change with nothing bound")
	}
	if !ctx.Diags.HasErrors() {
		t.Fatal("unresolved name produced no diagnostic")
	}
	d := ctx.Diags.Diagnostics()[0]
	if !strings.Contains(d.Message, `"ghost"`) || d.Loc.String() != "g.gram:3:1" {
		t.Errorf("diagnostic = %v", d)
	}
	// The offending subtree is left in place, and a later round does
	// not re-report it.
	if root.Child(0).Child(0) != bad {
		t.Error("unresolved subtree was substituted")
	}
	if _, err := res.Run(ctx, root); err != nil {
		t.Fatal(err)
	}
	if got := ctx.Diags.Len(); got != 1 {
		t.Errorf("diagnostics after second run = %d, want 1", got)
	}
}

func TestResolveDuplicateDeclaration(t *testing.T) {
	root := ir.Module("m",
		ir.ConstDecl("twice", ir.IntLit(1)),
		ir.ConstDecl("twice", ir.IntLit(2)),
	)
	ctx := NewContext()
	if _, err := NewResolve().Run(ctx, root); err != nil {
		t.Fatal(err)
	}
	if !ctx.Diags.HasErrors() {
		t.Error("duplicate declaration produced no diagnostic")
	}
}

func TestResolveIdempotent(t *testing.T) {
	use := ir.Name("a")
	root := ir.Module("m",
		ir.ConstDecl("a", ir.IntLit(1)),
		ir.ConstDecl("b", use),
	)
	ctx := NewContext()
	res := NewResolve()
	if _, err := res.Run(ctx, root); err != nil {
		t.Fatal(err)
	}
	changed, err := res.Run(ctx, root)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("second resolve run reported change")
	}
}

func TestSymbolTableRebind(t *testing.T) {
	tab := NewSymbolTable()
	old := ir.ConstDecl("c", ir.IntLit(1))
	sym := tab.Intern(old)

	repl := ir.ConstDecl("c", ir.IntLit(3))
	if err := tab.Rebind(sym, repl); err != nil {
		t.Fatal(err)
	}
	got, ok := tab.Decl(sym)
	if !ok || got != repl {
		t.Error("rebind did not take")
	}
	if tab.Intern(repl) != sym {
		t.Error("interning the replacement minted a new symbol")
	}
	if err := tab.Rebind(99, repl); err == nil {
		t.Error("rebind of unknown symbol succeeded")
	}
}
