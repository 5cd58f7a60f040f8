// Package query evaluates boolean expressions against nodes, so tools
// can select parts of a tree without writing traversal code. Queries
// are ordinary expr-lang expressions over a per-node environment:
//
//	kind == "const-decl" && props.id == "answer"
//	is_expression && children == 0
//	line > 10 && namespace == "integer"
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gramlang/gram/debug"
	"github.com/gramlang/gram/ir"
)

// Query is a compiled node predicate, safe for concurrent use.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles a predicate. Unknown names evaluate to nil at match
// time rather than failing compilation, so queries can probe properties
// that only some nodes carry.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return &Query{src: src, prog: prog}, nil
}

// Source returns the query's source text.
func (q *Query) Source() string { return q.src }

// Match evaluates the predicate against a single node. A predicate
// that evaluates to something other than a boolean — possible when it
// probes an undefined name, which evaluates to nil — is an evaluation
// error, not a match.
func (q *Query) Match(n *ir.Node) (bool, error) {
	out, err := expr.Run(q.prog, env(n))
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("query %q evaluated to %T, want bool", q.src, out)
	}
	return b, nil
}

// Select walks the whole tree — prune flags do not hide nodes from
// queries — and returns every node the predicate matches, in pre-order.
// Evaluation stops at the first evaluation error.
func (q *Query) Select(root *ir.Node) ([]*ir.Node, error) {
	var hits []*ir.Node
	err := root.Visit(func(n *ir.Node, post bool) (bool, error) {
		if post {
			return false, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			hits = append(hits, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query %q matched %d nodes", q.src, len(hits))
	}
	return hits, nil
}

// env builds the evaluation environment for one node.
func env(n *ir.Node) map[string]any {
	props := map[string]any{}
	snap := n.Props()
	for _, name := range snap.Names() {
		v, _ := snap.Get(name)
		if s, ok := v.AsString(); ok {
			props[name] = s
		} else if i, ok := v.AsInt(); ok {
			props[name] = i
		} else if b, ok := v.AsBool(); ok {
			props[name] = b
		}
	}
	loc := n.Location()
	return map[string]any{
		"kind":      n.Kind().String(),
		"namespace": n.Kind().Namespace(),
		"children":  n.NumChildren(),
		"prune":     n.PruneWalk(),
		"props":     props,
		"file":      loc.File,
		"line":      loc.Line,
		"col":       loc.Col,

		"is_type":        n.Implements(ir.CapType),
		"is_expression":  n.Implements(ir.CapExpression),
		"is_declaration": n.Implements(ir.CapDeclaration),
		"is_statement":   n.Implements(ir.CapStatement),
		"is_constant":    n.Implements(ir.CapConstant),
		"is_resolvable":  n.Implements(ir.CapResolvable),
		"is_operator":    n.Implements(ir.CapOperator),
	}
}
