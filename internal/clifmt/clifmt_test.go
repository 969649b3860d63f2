package clifmt

import (
	"bytes"
	"testing"
)

func TestPrinter_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Headerf("Notes for %d", 42)
	p.Linef("%s %s", p.Key("1)"), p.Dim("buy milk"))

	want := "Notes for 42\n1) buy milk\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestPrinter_PaintWhenEnabled(t *testing.T) {
	p := &Printer{color: true}
	if got := p.Success("ok"); got != "\x1b[32mok\x1b[0m" {
		t.Fatalf("unexpected painted text %q", got)
	}
	if got := p.Warn("careful"); got != "\x1b[33mcareful\x1b[0m" {
		t.Fatalf("unexpected painted text %q", got)
	}
}
