package ir

import (
	"fmt"
	"iter"
)

// view connects a typed view (Type, Expression, ...) to its capability
// recovery, letting ranges dereference generically.
type view[T any] interface {
	viewOf(n *Node) (T, bool)
}

// Range is a read-only, capability-typed window over a span of an
// existing child slice. It never owns or copies the nodes it covers.
// Construction does not validate that every element satisfies T; that
// check happens at dereference, where a mismatch fails loudly.
//
// A range is invalidated by any mutation of the underlying child slice
// during its lifetime; iterating across such a mutation is a
// precondition violation with undefined behavior, not a detected error.
// Iteration order is exactly child order; a range never reorders or
// deduplicates.
type Range[T view[T]] struct {
	nodes []*Node
}

// FullRange views an entire node slice.
func FullRange[T view[T]](nodes []*Node) Range[T] {
	return Range[T]{nodes: nodes}
}

// SpanRange views the sub-span [i, j) of a node slice. Out-of-range
// bounds are a precondition violation and panic.
func SpanRange[T view[T]](nodes []*Node, i, j int) Range[T] {
	if i < 0 || j < i || j > len(nodes) {
		panic(fmt.Sprintf("ir: span [%d, %d) of %d nodes", i, j, len(nodes)))
	}
	return Range[T]{nodes: nodes[i:j]}
}

// ChildRange views all children of n as T.
func ChildRange[T view[T]](n *Node) Range[T] {
	return FullRange[T](n.children)
}

// ChildSpan views children [i, j) of n as T.
func ChildSpan[T view[T]](n *Node, i, j int) Range[T] {
	return SpanRange[T](n.children, i, j)
}

// Size returns the number of nodes the range covers.
func (r Range[T]) Size() int { return len(r.nodes) }

// Empty reports whether the range covers no nodes.
func (r Range[T]) Empty() bool { return len(r.nodes) == 0 }

// Front dereferences the first node. Calling Front on an empty range is
// a precondition violation.
func (r Range[T]) Front() T { return r.At(0) }

// At dereferences the i'th node. Both an out-of-range index and an
// element that does not satisfy T are precondition violations and
// panic.
func (r Range[T]) At(i int) T {
	if i < 0 || i >= len(r.nodes) {
		panic(fmt.Sprintf("ir: range index %d of %d", i, len(r.nodes)))
	}
	return assertView[T](r.nodes[i])
}

// Node returns the i'th underlying node without capability recovery.
func (r Range[T]) Node(i int) *Node {
	if i < 0 || i >= len(r.nodes) {
		panic(fmt.Sprintf("ir: range index %d of %d", i, len(r.nodes)))
	}
	return r.nodes[i]
}

// Slice narrows the range to the sub-span [i, j).
func (r Range[T]) Slice(i, j int) Range[T] {
	return SpanRange[T](r.nodes, i, j)
}

// Copy returns a new slice of deep clones of every node the range
// covers, detaching the region from the original tree. Clones carry
// fresh identity but preserve meta, properties and prune flags.
func (r Range[T]) Copy() []*Node {
	res := make([]*Node, len(r.nodes))
	for i, n := range r.nodes {
		res[i] = n.Clone()
	}
	return res
}

// Equal reports whether both ranges have the same length and pairwise
// content-equal nodes.
func (r Range[T]) Equal(o Range[T]) bool {
	if len(r.nodes) != len(o.nodes) {
		return false
	}
	for i, n := range r.nodes {
		if !Equal(n, o.nodes[i]) {
			return false
		}
	}
	return true
}

// All yields the range's typed elements in child order, for use with
// range-over-func. Dereference asserts apply per element.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, n := range r.nodes {
			if !yield(assertView[T](n)) {
				return
			}
		}
	}
}

// Nodes yields the underlying nodes without capability recovery.
func (r Range[T]) Nodes() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, n := range r.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Begin returns an iterator at the range's first position.
func (r Range[T]) Begin() RangeIterator[T] {
	return RangeIterator[T]{nodes: r.nodes}
}

// End returns an iterator one past the range's last position.
func (r Range[T]) End() RangeIterator[T] {
	return RangeIterator[T]{nodes: r.nodes, pos: len(r.nodes)}
}

// RangeIterator is a positional cursor over a range. Arithmetic is
// unchecked, matching span semantics: the caller keeps positions inside
// [begin, end] and dereferences only inside [begin, end).
type RangeIterator[T view[T]] struct {
	nodes []*Node
	pos   int
}

// Deref recovers the typed view at the current position. A position
// outside the span or an element not satisfying T is a precondition
// violation and panics.
func (it RangeIterator[T]) Deref() T {
	if it.pos < 0 || it.pos >= len(it.nodes) {
		panic(fmt.Sprintf("ir: dereference at %d of %d", it.pos, len(it.nodes)))
	}
	return assertView[T](it.nodes[it.pos])
}

// Node returns the node at the current position without capability
// recovery.
func (it RangeIterator[T]) Node() *Node {
	if it.pos < 0 || it.pos >= len(it.nodes) {
		panic(fmt.Sprintf("ir: dereference at %d of %d", it.pos, len(it.nodes)))
	}
	return it.nodes[it.pos]
}

// Next advances the iterator one position.
func (it *RangeIterator[T]) Next() { it.pos++ }

// Advance moves the iterator by d positions, like += on an iterator.
func (it *RangeIterator[T]) Advance(d int) { it.pos += d }

// Add returns an iterator d positions ahead.
func (it RangeIterator[T]) Add(d int) RangeIterator[T] {
	it.pos += d
	return it
}

// Sub returns an iterator d positions back.
func (it RangeIterator[T]) Sub(d int) RangeIterator[T] {
	it.pos -= d
	return it
}

// Diff returns the signed distance from o to it.
func (it RangeIterator[T]) Diff(o RangeIterator[T]) int { return it.pos - o.pos }

// Equal reports whether both iterators sit at the same position of the
// same span.
func (it RangeIterator[T]) Equal(o RangeIterator[T]) bool {
	return it.pos == o.pos && len(it.nodes) == len(o.nodes) &&
		(len(it.nodes) == 0 || &it.nodes[0] == &o.nodes[0])
}

// Done reports whether the iterator has passed the last position.
func (it RangeIterator[T]) Done() bool { return it.pos >= len(it.nodes) }
