package ir

import (
	"fmt"
	"strings"
)

// Node is the single polymorphic unit of the intermediate tree. A node
// owns its children: each child occupies exactly one parent slot. Side
// tables (symbol scopes, type caches) keep non-owning references that
// must not outlive the tree and must tolerate a later pass substituting
// the referent.
//
// Nodes are not safe for concurrent mutation; the pass pipeline runs
// single-threaded per tree.
type Node struct {
	kind      Kind
	children  []*Node
	meta      Meta
	props     Properties
	pruneWalk bool
}

// New builds a node of the given kind owning the given children.
func New(kind Kind, children ...*Node) *Node {
	return &Node{kind: kind, children: children}
}

// WithMeta sets the node's meta and returns the node, for chaining
// during tree construction.
func (n *Node) WithMeta(m Meta) *Node {
	n.meta = m
	return n
}

// WithProp sets a property and returns the node, for chaining during
// tree construction.
func (n *Node) WithProp(name string, v Value) *Node {
	n.props.set(name, v)
	return n
}

// WithPruneWalk sets the prune flag and returns the node.
func (n *Node) WithPruneWalk(prune bool) *Node {
	n.pruneWalk = prune
	return n
}

// Kind returns the node's kind. It never changes after construction.
func (n *Node) Kind() Kind { return n.kind }

// Children returns the node's child slice in order. The slice is the
// node's own storage: callers must treat it as read-only and go through
// SetChild, AppendChild, InsertChild and RemoveChild for mutation.
// Mutating children invalidates any Range currently iterating them.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i'th child. An out-of-range index is a
// precondition violation and panics.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("ir: child %d of %d on %s node", i, len(n.children), n.kind))
	}
	return n.children[i]
}

// SetChild replaces the child in slot i with c, dropping the previous
// occupant from the tree. It fails with ErrIndex when i is out of
// range.
func (n *Node) SetChild(i int, c *Node) error {
	if i < 0 || i >= len(n.children) {
		return fmt.Errorf("%w: child %d of %d on %s node", ErrIndex, i, len(n.children), n.kind)
	}
	n.children[i] = c
	return nil
}

// AppendChild adds c as the last child.
func (n *Node) AppendChild(c *Node) {
	n.children = append(n.children, c)
}

// InsertChild inserts c before slot i; i may equal NumChildren to
// append. It fails with ErrIndex when i is out of range.
func (n *Node) InsertChild(i int, c *Node) error {
	if i < 0 || i > len(n.children) {
		return fmt.Errorf("%w: insert at %d of %d on %s node", ErrIndex, i, len(n.children), n.kind)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return nil
}

// RemoveChild removes the child in slot i; later children shift down.
// It fails with ErrIndex when i is out of range.
func (n *Node) RemoveChild(i int) error {
	if i < 0 || i >= len(n.children) {
		return fmt.Errorf("%w: remove %d of %d on %s node", ErrIndex, i, len(n.children), n.kind)
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	return nil
}

// Props returns a snapshot of the node's properties. Mutating the
// snapshot does not affect the node.
func (n *Node) Props() Properties { return n.props.clone() }

// Prop returns the named property without copying the bag.
func (n *Node) Prop(name string) (Value, bool) { return n.props.Get(name) }

// SetProp sets a property on the node, e.g. a resolution pass filling
// in a binding.
func (n *Node) SetProp(name string, v Value) { n.props.set(name, v) }

// Meta returns the node's provenance record.
func (n *Node) Meta() Meta { return n.meta }

// SetMeta replaces the node's meta. It always succeeds, is idempotent,
// and touches neither kind nor children.
func (n *Node) SetMeta(m Meta) { n.meta = m }

// Location is shorthand for the meta's source coordinates.
func (n *Node) Location() Location { return n.meta.Location() }

// PruneWalk reports whether generic traversal must not descend into the
// node's children. The flag is advisory to traversal only; it never
// restricts mutation.
func (n *Node) PruneWalk() bool { return n.pruneWalk }

// SetPruneWalk marks the node's children as not-to-be-walked, e.g. an
// optimizer marking a folded subtree as final.
func (n *Node) SetPruneWalk(prune bool) { n.pruneWalk = prune }

// Clone returns a deep, independent copy of the subtree rooted at n.
// The clone has fresh identity, shares no storage with the original,
// and preserves meta, properties and the prune flag.
func (n *Node) Clone() *Node {
	return n.CloneTo(&Node{})
}

// CloneTo deep-copies n into dst and returns dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.kind = n.kind
	dst.meta = n.meta
	dst.props = n.props.clone()
	dst.pruneWalk = n.pruneWalk
	if n.children == nil {
		dst.children = nil
		return dst
	}
	dst.children = make([]*Node, len(n.children))
	for i, c := range n.children {
		dst.children[i] = c.CloneTo(&Node{})
	}
	return dst
}

// String renders a one-line summary: kind plus sorted properties.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.props.Len() == 0 {
		return n.kind.String()
	}
	var sb strings.Builder
	sb.WriteString(n.kind.String())
	sb.WriteByte('(')
	for i, name := range n.props.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := n.props.Get(name)
		fmt.Fprintf(&sb, "%s=%s", name, v)
	}
	sb.WriteByte(')')
	return sb.String()
}
