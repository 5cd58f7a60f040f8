package ir

import "fmt"

// Location is a source coordinate range. The zero Location means "no
// location".
type Location struct {
	File    string
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// IsValid reports whether the location carries real coordinates.
func (l Location) IsValid() bool { return l.Line > 0 }

// String renders file:line:col for diagnostics.
func (l Location) String() string {
	if !l.IsValid() {
		return "<no location>"
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Meta is the provenance record attached to a node: source coordinates
// plus a free-text comment. Meta is a value type, copied rather than
// aliased, and immutable once built; a node swaps in a whole new Meta
// through SetMeta.
type Meta struct {
	loc     Location
	comment string
}

// NewMeta builds a Meta for a source location.
func NewMeta(loc Location) Meta { return Meta{loc: loc} }

// WithComment returns a copy of m carrying the comment.
func (m Meta) WithComment(c string) Meta {
	m.comment = c
	return m
}

// Location returns the source coordinates.
func (m Meta) Location() Location { return m.loc }

// Comment returns the attached comment, if any.
func (m Meta) Comment() string { return m.comment }
