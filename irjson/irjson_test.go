package irjson

import (
	"errors"
	"strings"
	"testing"

	"github.com/gramlang/gram/ir"
)

func sample() *ir.Node {
	return ir.Module("m",
		ir.ConstDecl("answer", ir.IntLit(42).WithMeta(
			ir.NewMeta(ir.Location{File: "m.gram", Line: 3, Col: 16}))),
		ir.ExprStmt(ir.BinaryOp("+", ir.Name("answer"), ir.IntLit(1))),
	)
}

func TestJSONRoundTrip(t *testing.T) {
	orig := sample()
	d, err := ToJSON(orig)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !ir.Equal(orig, back) {
		t.Errorf("round trip changed the tree:\norig: %s\nback: %s", orig, back)
	}
	if got := back.Child(0).Child(0).Location().String(); got != "m.gram:3:16" {
		t.Errorf("location after round trip = %q", got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig := sample()
	d, err := ToYAML(orig)
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if !strings.Contains(string(d), "kind: module") {
		t.Errorf("yaml output missing kind line:\n%s", d)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !ir.Equal(orig, back) {
		t.Errorf("round trip changed the tree:\norig: %s\nback: %s", orig, back)
	}
}

func TestFromJSONRejectsUnknownKind(t *testing.T) {
	_, err := FromJSON([]byte(`{"kind":"flux-capacitor"}`))
	if !errors.Is(err, ir.ErrBadIR) {
		t.Fatalf("err = %v, want ErrBadIR", err)
	}
}

func TestFromJSONRejectsWrongArity(t *testing.T) {
	in := []byte(`{"kind":"module","children":[{"kind":"expr-stmt"}]}`)
	_, err := FromJSON(in)
	if !errors.Is(err, ir.ErrBadIR) {
		t.Fatalf("err = %v, want ErrBadIR", err)
	}
}

func TestApplyPatchReplacesValue(t *testing.T) {
	patch := []byte(`[
		{"op": "replace", "path": "/children/0/children/0/props/value/i", "value": 7}
	]`)
	got, err := ApplyPatch(sample(), patch)
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	lit := got.Child(0).Child(0)
	v, ok := lit.Prop(ir.PropValue)
	if !ok {
		t.Fatal("patched literal lost its value")
	}
	if i, _ := v.AsInt(); i != 7 {
		t.Errorf("patched value = %d, want 7", i)
	}
}

func TestApplyPatchRemovesChild(t *testing.T) {
	got, err := ApplyPatch(sample(), []byte(`[
		{"op": "remove", "path": "/children/1"}
	]`))
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if got.NumChildren() != 1 {
		t.Fatalf("got %d children, want 1", got.NumChildren())
	}
	if got.Child(0).Kind() != ir.KindConstDecl {
		t.Errorf("remaining child kind = %s", got.Child(0).Kind())
	}
}

func TestApplyPatchRejectsBadResult(t *testing.T) {
	_, err := ApplyPatch(sample(), []byte(`[
		{"op": "replace", "path": "/kind", "value": "no-such-kind"}
	]`))
	if !errors.Is(err, ir.ErrBadIR) {
		t.Fatalf("err = %v, want ErrBadIR", err)
	}
}

func TestApplyPatchRejectsMalformedPatch(t *testing.T) {
	if _, err := ApplyPatch(sample(), []byte(`{"not": "a patch"}`)); err == nil {
		t.Fatal("malformed patch accepted")
	}
}
