// Package opdoc extracts operator metadata from a tree for the
// external documentation generator. The dump is a plain serializable
// structure — the generator that turns it into reference-manual pages
// lives outside the toolchain.
package opdoc

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gramlang/gram/ir"
)

// Operand describes one operand of an operator.
type Operand struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Type string `json:"type" yaml:"type"`
}

// Operator is the dump record for one operator declaration.
type Operator struct {
	Namespace   string    `json:"namespace" yaml:"namespace"`
	Symbol      string    `json:"symbol" yaml:"symbol"`
	Operands    []Operand `json:"operands,omitempty" yaml:"operands,omitempty"`
	Result      string    `json:"result" yaml:"result"`
	Doc         string    `json:"doc,omitempty" yaml:"doc,omitempty"`
	Commutative bool      `json:"commutative,omitempty" yaml:"commutative,omitempty"`
	Const       bool      `json:"const,omitempty" yaml:"const,omitempty"`
}

// Collect walks the whole tree — prune flags are traversal advice for
// passes, not for inspection — and returns every operator declaration's
// metadata in a deterministic order: namespace, then symbol, then
// operand types.
func Collect(root *ir.Node) []Operator {
	var ops []Operator
	root.Visit(func(n *ir.Node, post bool) (bool, error) {
		if post {
			return false, nil
		}
		if op, ok := n.AsOperator(); ok {
			ops = append(ops, record(op))
		}
		return true, nil
	})
	slices.SortFunc(ops, func(a, b Operator) int {
		if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
			return c
		}
		if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
			return c
		}
		return cmp.Compare(operandKey(a), operandKey(b))
	})
	return ops
}

func record(op ir.Operator) Operator {
	rec := Operator{
		Symbol:      op.Symbol(),
		Doc:         op.Doc(),
		Commutative: op.Commutative(),
		Const:       op.Const(),
		Result:      typeName(op.Result().Node),
	}
	operands := op.Operands()
	for d := range operands.All() {
		o := Operand{ID: d.ID()}
		if d.NumChildren() > 0 {
			o.Type = typeName(d.Child(0))
		}
		rec.Operands = append(rec.Operands, o)
	}
	rec.Namespace = namespaceOf(op)
	return rec
}

// namespaceOf groups the operator under its first operand's type
// namespace, so signed and unsigned integer operand types all land in
// "integer". Nullary operators fall back to "global".
func namespaceOf(op ir.Operator) string {
	operands := op.Operands()
	if operands.Empty() {
		return "global"
	}
	first := operands.Node(0)
	if first.NumChildren() == 0 {
		return "global"
	}
	return first.Child(0).Kind().Namespace()
}

// typeName renders a type node for documentation, e.g. type-uint32
// becomes "uint32".
func typeName(n *ir.Node) string {
	return strings.TrimPrefix(n.Kind().String(), "type-")
}

func operandKey(o Operator) string {
	parts := make([]string, len(o.Operands))
	for i, od := range o.Operands {
		parts[i] = od.Type
	}
	return strings.Join(parts, ",")
}

// EncodeYAML writes the dump as YAML.
func EncodeYAML(w io.Writer, ops []Operator) error {
	d, err := yaml.Marshal(ops)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// EncodeJSON writes the dump as indented JSON.
func EncodeJSON(w io.Writer, ops []Operator) error {
	d, err := json.MarshalIndent(ops, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
