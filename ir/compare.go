package ir

import (
	"cmp"
	"strings"
)

// Equal reports content equality: same kind, same properties and
// pairwise-equal children. Meta and the prune flag are provenance and
// traversal advice, not content, and do not participate.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes, giving the tree a
// deterministic total order for side tables and dump output. The
// result is 0 if a==b, -1 if a < b, and +1 if a > b. Kinds order by
// definition order, then properties by sorted name, then children
// pairwise.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if c := compareProps(a.props, b.props); c != 0 {
		return c
	}
	return compareChildren(a, b)
}

func compareProps(a, b Properties) int {
	an, bn := a.Names(), b.Names()
	minLen := min(len(an), len(bn))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(an[i], bn[i]); c != 0 {
			return c
		}
		av, _ := a.Get(an[i])
		bv, _ := b.Get(bn[i])
		if c := compareValues(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(an), len(bn))
}

func compareValues(a, b Value) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	switch a.kind {
	case ValueString:
		return strings.Compare(a.s, b.s)
	case ValueInt:
		return cmp.Compare(a.i, b.i)
	case ValueBool:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	}
	return 0
}

func compareChildren(a, b *Node) int {
	lenA := len(a.children)
	lenB := len(b.children)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
