package karabinercli

import (
	"os"
	"strings"
	"text/template"

	"github.com/Oliyy/karabiner-cli/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// templateFuncs are available to the usage and help templates.
var templateFuncs = template.FuncMap{
	"bold":      bold,
	"upper":     strings.ToUpper,
	"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
}

// bold emphasises s when stdout is a colour terminal.
func bold(s string) string {
	if !style.IsColorTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(templateFuncs)
}
