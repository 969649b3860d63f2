package clifmt

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Printer writes CLI output, coloring it only when the destination is a
// terminal and NO_COLOR is unset.
type Printer struct {
	w     io.Writer
	color bool
}

func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, color: useColor(w)}
}

func (p *Printer) Headerf(format string, args ...any) {
	fmt.Fprintln(p.w, p.paint("1;36", fmt.Sprintf(format, args...)))
}

func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

func (p *Printer) Success(text string) string { return p.paint("32", text) }

func (p *Printer) Warn(text string) string { return p.paint("33", text) }

func (p *Printer) Dim(text string) string { return p.paint("2", text) }

func (p *Printer) Key(text string) string { return p.paint("1;33", text) }

func (p *Printer) paint(code string, text string) string {
	if !p.color {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
