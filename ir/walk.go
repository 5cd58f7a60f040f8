package ir

// Visit is the traversal primitive: f is called on n before its
// children (post=false) and again after them (post=true). Diving into
// children is controlled by the pre-call's first return value; the
// post-call's is ignored. Visit does not consult PruneWalk — that
// policy belongs to Walker.
//
// The child slice is re-read by index before each descent, so a visitor
// substituting children ahead of the current position sees its rewrites
// walked; positions already behind are not revisited. Removing the node
// currently being visited out of its parent is a precondition
// violation.
func (n *Node) Visit(f func(n *Node, post bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for i := 0; i < len(n.children); i++ {
			if err := n.children[i].Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Walk traverses pre-order, honoring PruneWalk. fn returning false
// prunes the branch below the node just visited.
func Walk(root *Node, fn func(*Node) bool) {
	root.Visit(func(n *Node, post bool) (bool, error) {
		if post {
			return false, nil
		}
		dive := fn(n)
		return dive && !n.pruneWalk, nil
	})
}

// Order selects where the Walker's visit callback fires relative to a
// node's children.
type Order int

const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota
	// PostOrder visits a node after its children.
	PostOrder
)

// Walker is the generic depth-first traversal every pass builds on. It
// visits each node once in the configured order and honors PruneWalk: a
// pruned node is itself visited but its children are skipped.
//
// Termination is guaranteed because ownership forbids cycles; a tree
// built only through the child-slot API is acyclic.
type Walker struct {
	Order Order
}

// Walk runs the traversal from root, stopping at the first error.
func (w Walker) Walk(root *Node, visit func(*Node) error) error {
	return root.Visit(func(n *Node, post bool) (bool, error) {
		if post == (w.Order == PostOrder) {
			if err := visit(n); err != nil {
				return false, err
			}
		}
		return !n.pruneWalk, nil
	})
}
