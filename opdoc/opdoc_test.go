package opdoc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/gramlang/gram/ir"
)

func addOp(kind ir.Kind, symbol string) *ir.Node {
	typ := func() *ir.Node { return ir.New(kind) }
	return ir.OperatorDecl(symbol,
		[]*ir.Node{ir.ParamDecl("lhs", typ()), ir.ParamDecl("rhs", typ())},
		typ()).
		WithProp(ir.PropDoc, ir.StringValue("Computes the "+symbol+" of its operands.")).
		WithProp(ir.PropCommutative, ir.BoolValue(symbol == "+")).
		WithProp(ir.PropConst, ir.BoolValue(true))
}

func testModule() *ir.Node {
	return ir.Module("ops",
		addOp(ir.KindTypeUInt32, "+"),
		addOp(ir.KindTypeInt64, "-"),
		addOp(ir.KindTypeBool, "&&"),
		ir.ConstDecl("unrelated", ir.IntLit(1)),
	)
}

func TestCollectSortsByNamespaceThenSymbol(t *testing.T) {
	ops := Collect(testModule())
	if len(ops) != 3 {
		t.Fatalf("got %d operators, want 3", len(ops))
	}

	// "bool" sorts before "integer"; within "integer", "+" before "-".
	wantOrder := []struct{ ns, sym string }{
		{"bool", "&&"},
		{"integer", "+"},
		{"integer", "-"},
	}
	for i, want := range wantOrder {
		if ops[i].Namespace != want.ns || ops[i].Symbol != want.sym {
			t.Errorf("ops[%d] = %s/%s, want %s/%s",
				i, ops[i].Namespace, ops[i].Symbol, want.ns, want.sym)
		}
	}
}

func TestCollectRecordsOperandAndResultTypes(t *testing.T) {
	ops := Collect(ir.Module("m", addOp(ir.KindTypeUInt32, "+")))
	if len(ops) != 1 {
		t.Fatalf("got %d operators, want 1", len(ops))
	}
	op := ops[0]
	if len(op.Operands) != 2 {
		t.Fatalf("got %d operands, want 2", len(op.Operands))
	}
	if op.Operands[0].ID != "lhs" || op.Operands[1].ID != "rhs" {
		t.Errorf("operand ids = %q, %q", op.Operands[0].ID, op.Operands[1].ID)
	}
	for i, od := range op.Operands {
		if od.Type != "uint32" {
			t.Errorf("operand %d type = %q, want uint32", i, od.Type)
		}
	}
	if op.Result != "uint32" {
		t.Errorf("result = %q, want uint32", op.Result)
	}
	if !op.Commutative || !op.Const {
		t.Errorf("flags = commutative %v, const %v", op.Commutative, op.Const)
	}
	if !strings.Contains(op.Doc, "Computes") {
		t.Errorf("doc = %q", op.Doc)
	}
}

func TestCollectDescendsIntoPrunedSubtrees(t *testing.T) {
	unit := ir.UnitDecl("u", addOp(ir.KindTypeBytes, "in"))
	unit.SetPruneWalk(true)
	ops := Collect(ir.Module("m", unit))
	if len(ops) != 1 || ops[0].Symbol != "in" {
		t.Fatalf("got %+v, want the operator inside the pruned unit", ops)
	}
}

func TestEncodeYAMLRoundTrips(t *testing.T) {
	ops := Collect(testModule())
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, ops); err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	var back []Operator
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back) != len(ops) {
		t.Fatalf("round trip: got %d operators, want %d", len(back), len(ops))
	}
	for i := range ops {
		if back[i].Namespace != ops[i].Namespace || back[i].Symbol != ops[i].Symbol {
			t.Errorf("round trip [%d]: got %s/%s, want %s/%s",
				i, back[i].Namespace, back[i].Symbol, ops[i].Namespace, ops[i].Symbol)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	ops := Collect(ir.Module("m", addOp(ir.KindTypeUInt32, "+")))
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, ops); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	var back []Operator
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back) != 1 || back[0].Result != "uint32" {
		t.Fatalf("round trip: %+v", back)
	}
}
