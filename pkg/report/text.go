package report

import (
	"fmt"
	"io"
	"strings"
)

const noRules = "  No complex modifications found."

type textRenderer struct{}

func (textRenderer) Render(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nComplex Modifications for profile: %q:\n", r.Profile)
	if len(r.Rules) == 0 {
		b.WriteString(noRules + "\n")
	}

	for _, rule := range r.Rules {
		fmt.Fprintf(&b, "\n[%d] %s\n", rule.Index, rule.Description)
		for _, m := range rule.Manipulators {
			for _, d := range m.Devices {
				fmt.Fprintf(&b, "    Device: %s (VendorID: %d, ProductID: %d)\n", d.Description, d.VendorID, d.ProductID)
			}
			fmt.Fprintf(&b, "    From: %s\n", m.From)
			if len(m.To) > 0 {
				fmt.Fprintf(&b, "    To: %s\n", strings.Join(m.To, ", "))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
