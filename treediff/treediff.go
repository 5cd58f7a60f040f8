// Package treediff renders a line-oriented diff between two trees, for
// inspecting what a pass or a patch changed. Both trees are printed
// with the dump package and the dumps are diffed line by line, so the
// output reads like the familiar textual diff of two dumps.
package treediff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gramlang/gram/dump"
	"github.com/gramlang/gram/ir"
)

// Op classifies one hunk of the diff.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Hunk is a run of dump lines sharing one op. Lines keeps its trailing
// newlines as printed by dump.
type Hunk struct {
	Op    Op
	Lines string
}

// Diff compares two trees and returns the hunks of their dump diff. Two
// equal trees produce a single OpEqual hunk (or none for empty dumps).
func Diff(before, after *ir.Node) []Hunk {
	dmp := diffmatchpatch.New()
	a, b := dump.String(before), dump.String(after)

	// Diff at line granularity: map lines to runes, diff the runes,
	// then map back.
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	hunks := make([]Hunk, 0, len(diffs))
	for _, d := range diffs {
		h := Hunk{Lines: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			h.Op = OpDelete
		case diffmatchpatch.DiffInsert:
			h.Op = OpInsert
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// Changed reports whether the two trees dump differently.
func Changed(hunks []Hunk) bool {
	for _, h := range hunks {
		if h.Op != OpEqual {
			return true
		}
	}
	return false
}

// Format renders hunks in unified style, prefixing each line with " ",
// "-" or "+".
func Format(hunks []Hunk) string {
	var sb strings.Builder
	for _, h := range hunks {
		prefix := " "
		switch h.Op {
		case OpDelete:
			prefix = "-"
		case OpInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(h.Lines, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
