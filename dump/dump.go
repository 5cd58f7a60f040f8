// Package dump renders IR trees as stable, human-readable text. The
// rendering is deterministic — kind names and sorted properties only —
// so downstream tooling (golden tests, tree diffs, documentation
// output) can depend on byte-identical output for equal trees.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/gramlang/gram/ir"
)

// Options control rendering.
type Options struct {
	// Color enables ANSI colors.
	Color bool
	// Locations appends source coordinates to nodes that have them.
	Locations bool
}

// Dump writes the subtree rooted at n to w, one node per line,
// children indented under their parent. The prune flag renders as a
// trailing marker; dump always descends regardless of it, since the
// flag is advice to passes, not to inspection.
func Dump(n *ir.Node, w io.Writer, opts Options) error {
	c := colors(opts.Color)
	return dumpNode(n, w, c, opts, 0)
}

// String renders n with default options.
func String(n *ir.Node) string {
	var sb strings.Builder
	Dump(n, &sb, Options{})
	return sb.String()
}

func dumpNode(n *ir.Node, w io.Writer, c *palette, opts Options, depth int) error {
	if _, err := io.WriteString(w, strings.Repeat("  ", depth)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, c.kind(n.Kind().String())); err != nil {
		return err
	}
	for _, name := range n.Props().Names() {
		v, _ := n.Prop(name)
		if _, err := fmt.Fprintf(w, " %s=%s", c.field(name), c.value(v.String())); err != nil {
			return err
		}
	}
	if n.PruneWalk() {
		if _, err := io.WriteString(w, " "+c.marker("[prune]")); err != nil {
			return err
		}
	}
	if opts.Locations {
		if loc := n.Location(); loc.IsValid() {
			if _, err := io.WriteString(w, " "+c.loc("@"+loc.String())); err != nil {
				return err
			}
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := dumpNode(child, w, c, opts, depth+1); err != nil {
			return err
		}
	}
	return nil
}
