// Package ir provides the intermediate representation for the gram
// toolchain: the node model every compiler pass runs on.
//
// # Overview
//
// A gram tree represents one compilation unit of a binary-format
// grammar. The whole intermediate language — declarations, types,
// expressions, statements — is carried by the single polymorphic Node
// type: a kind tag, an ordered slice of owned children, a provenance
// Meta, a Properties bag for kind-specific scalars, and an advisory
// prune flag for traversal.
//
// The tree is produced by an external front-end (this package does not
// parse text), rewritten in place by the pass pipeline, and handed to
// an external backend once the pipeline stabilizes.
//
// # Ownership
//
// A child node is owned by exactly one parent slot. Everything else —
// symbol scopes, type caches, query results — holds non-owning
// references that must not outlive the tree and must tolerate a later
// pass substituting the referent. Rewriting a construct never mutates a
// node's kind; it builds a replacement and swaps it into the parent
// slot with SetChild. Ownership forbids cycles, which is what makes
// every traversal finite.
//
// # Capabilities
//
// Whether a node "is a type", "is an expression", and so on is a pure
// function of its kind, fixed in a definition-time table. The As*
// queries (AsType, AsExpression, ...) return a borrowed typed view plus
// an ok flag; a failed query is a normal absent result. There is no
// other downcast mechanism.
//
// Kinds additionally group under a presentation namespace — all signed
// and unsigned integer types map to "integer" — used by documentation
// tooling, layered over the capability table rather than part of it.
//
// # Ranges
//
// Range[T] gives a pass a capability-typed, read-only window over a
// span of a node's children without copying:
//
//	exprs := ir.ChildRange[ir.Expression](call)
//	for e := range exprs.All() {
//	    ...
//	}
//
// Construction never validates the span; dereference recovers the view
// and panics on a mismatch, because selecting the wrong range type for
// a span is a caller bug, not a runtime condition. Mutating the
// underlying children while a range is live is likewise a documented
// precondition violation.
//
// # Traversal
//
// Visit is the primitive: pre and post callbacks with a dive flag.
// Walker layers the pass-facing policy on top — pre- or post-order, and
// nodes with PruneWalk set are visited without descending into their
// children. The walker re-reads the child slice before each descent, so
// rewrites ahead of the cursor are observed and rewrites behind are not
// revisited.
//
// # Concurrency
//
// Nodes are not safe for concurrent use. The pipeline is single
// threaded per tree; parallelism in the surrounding toolchain is across
// independent compilation units only.
package ir
