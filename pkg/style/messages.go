package style

import (
	"fmt"
	"io"
	"os"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// IsColorTerminal reports whether f is a terminal that can show colours.
// NO_COLOR always wins.
func IsColorTerminal(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Printer writes one-line status messages, prefixed with pterm labels when
// colour is enabled.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) Info(format string, args ...interface{}) {
	p.line(pterm.Info, "", format, args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	p.line(pterm.Success, "", format, args...)
}

func (p *Printer) Warning(format string, args ...interface{}) {
	p.line(pterm.Warning, "Warning: ", format, args...)
}

// Error prints err as a single "Error: <cause>" line.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	msg := errors.UserMessage(err)
	if !p.color {
		_, _ = fmt.Fprintf(p.w, "Error: %s\n", msg)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", ErrorStyle.Render("Error:"), msg)
}

func (p *Printer) line(prefix pterm.PrefixPrinter, plain, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !p.color {
		_, _ = fmt.Fprintf(p.w, "%s%s\n", plain, msg)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", prefix.Prefix.Style.Sprint(" "+prefix.Prefix.Text+" "), prefix.MessageStyle.Sprint(msg))
}
