package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var severityColors = map[Severity]func(format string, a ...any) string{
	SeverityError:   color.RedString,
	SeverityWarning: color.YellowString,
	SeverityNote:    color.CyanString,
}

// Print renders diagnostics to w, one per line, optionally colorized.
func Print(w io.Writer, diags []Diagnostic, colorize bool) {
	for _, d := range diags {
		if !colorize {
			fmt.Fprintln(w, d)
			continue
		}
		sev := severityColors[d.Severity]("%s", d.Severity)
		if d.Loc.IsValid() {
			fmt.Fprintf(w, "%s: %s: %s\n", color.New(color.Bold).Sprint(d.Loc), sev, d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s\n", sev, d.Message)
		}
	}
}
