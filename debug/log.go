package debug

import (
	"fmt"
	"os"

	"github.com/gramlang/gram/dump"
	"github.com/gramlang/gram/ir"
)

// Logf writes a debug line to stderr, rendering *ir.Node arguments
// through the dump package so trees come out readable.
func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*ir.Node); ok {
			args[i] = "\n" + dump.String(n)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
