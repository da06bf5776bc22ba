package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/style"
)

type termRenderer struct{}

func (termRenderer) Render(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(style.TitleStyle.Render("Complex Modifications for profile:"))
	b.WriteString(" ")
	b.WriteString(style.SuccessStyle.Render(r.Profile))
	b.WriteString("\n")
	if r.Path != "" {
		b.WriteString(style.PathStyle.Render(r.Path))
		b.WriteString("\n")
	}
	if len(r.Rules) == 0 {
		b.WriteString(style.MutedStyle.Render(noRules))
		b.WriteString("\n")
	}

	for _, rule := range r.Rules {
		b.WriteString("\n")
		b.WriteString(style.IndexStyle.Render(fmt.Sprintf("[%d]", rule.Index)))
		b.WriteString(" ")
		b.WriteString(style.DescriptionStyle.Render(rule.Description))
		b.WriteString("\n")

		for _, m := range rule.Manipulators {
			for _, d := range m.Devices {
				line := fmt.Sprintf("%s %s", style.DeviceStyle.Render(d.Description),
					style.MutedStyle.Render(fmt.Sprintf("(VendorID: %d, ProductID: %d)", d.VendorID, d.ProductID)))
				writeField(&b, "Device:", line)
			}
			writeField(&b, "From:", style.FromStyle.Render(m.From))
			if len(m.To) > 0 {
				writeField(&b, "To:", style.ToStyle.Render(strings.Join(m.To, ", ")))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(style.Indent(style.LabelStyle.Render(label), 2))
	b.WriteString(value)
	b.WriteString("\n")
}
