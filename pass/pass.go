// Package pass runs tree-to-tree transformations over the IR. Passes
// rewrite nodes in place by child substitution; the pipeline runs them
// in declared order to a fixed point, bounded by an iteration cap.
package pass

import (
	"github.com/gramlang/gram/diag"
	"github.com/gramlang/gram/ir"
)

// Pass is one transformation over a tree. Run reports whether it
// changed anything; structural problems go to the context's diagnostic
// bag rather than the error return, which is reserved for toolchain
// failures.
type Pass interface {
	Name() string
	Run(ctx *Context, root *ir.Node) (bool, error)
}

// Context carries the state shared across passes of one compilation:
// the diagnostic sink and the symbol side table. Handles stored here
// are non-owning; they must not outlive the tree.
type Context struct {
	Diags   *diag.Bag
	Symbols *SymbolTable
}

// NewContext builds a fresh per-compilation context.
func NewContext() *Context {
	return &Context{
		Diags:   &diag.Bag{},
		Symbols: NewSymbolTable(),
	}
}
