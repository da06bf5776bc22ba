package report

import (
	"io"
	"os"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/style"
)

// Format represents the output format type
type Format string

const (
	// FormatAuto picks FormatTerm on a colour terminal and FormatText otherwise
	FormatAuto Format = "auto"
	FormatTerm Format = "term"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerm, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// Resolve turns FormatAuto into a concrete format for w.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok && style.IsColorTerminal(file) {
		return FormatTerm
	}
	return FormatText
}

// Renderer writes a Report.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// New returns the renderer for f. FormatAuto must be resolved first.
func New(f Format) (Renderer, error) {
	switch f {
	case FormatTerm:
		return termRenderer{}, nil
	case FormatText:
		return textRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "no renderer for format %q", f)
	}
}
