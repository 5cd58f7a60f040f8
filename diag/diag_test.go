package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gramlang/gram/ir"
)

func TestBag(t *testing.T) {
	var b Bag
	if b.HasErrors() {
		t.Error("zero bag has errors")
	}
	loc := ir.Location{File: "u.gram", Line: 4, Col: 7}
	b.Warnf(loc, "unused local %q", "tmp")
	b.Errorf(loc, "cannot resolve %q", "frob")
	b.Notef(ir.Location{}, "while resolving module %q", "u")

	if got := b.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if !b.HasErrors() {
		t.Error("HasErrors() = false with an error reported")
	}
	if got := b.Diagnostics()[1].String(); got != `u.gram:4:7: error: cannot resolve "frob"` {
		t.Errorf("String() = %q", got)
	}
	if got := b.Diagnostics()[2].String(); got != `note: while resolving module "u"` {
		t.Errorf("String() without loc = %q", got)
	}
}

func TestPrintPlain(t *testing.T) {
	var b Bag
	b.Errorf(ir.Location{File: "a.gram", Line: 1, Col: 1}, "boom")
	var buf bytes.Buffer
	Print(&buf, b.Diagnostics(), false)
	if got := buf.String(); !strings.Contains(got, "a.gram:1:1: error: boom") {
		t.Errorf("Print output = %q", got)
	}
}
