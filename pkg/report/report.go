package report

import (
	"github.com/Oliyy/karabiner-cli/pkg/builder"
	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// Report is the read-only view of a profile's rules.
type Report struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Profile string `json:"profile" yaml:"profile"`
	Rules   []Rule `json:"rules" yaml:"rules"`
}

type Rule struct {
	Index        int           `json:"index" yaml:"index"`
	Description  string        `json:"description" yaml:"description"`
	Manipulators []Manipulator `json:"manipulators" yaml:"manipulators"`
}

type Manipulator struct {
	Devices []Device `json:"devices,omitempty" yaml:"devices,omitempty"`
	From    string   `json:"from" yaml:"from"`
	To      []string `json:"to,omitempty" yaml:"to,omitempty"`
}

type Device struct {
	Description string `json:"description" yaml:"description"`
	VendorID    int    `json:"vendor_id" yaml:"vendor_id"`
	ProductID   int    `json:"product_id" yaml:"product_id"`
}

// Build converts rules into a Report. Rule indexes start at 1.
func Build(path string, profile *types.Profile, rules []types.Rule) Report {
	r := Report{
		Path:  path,
		Rules: make([]Rule, 0, len(rules)),
	}
	if profile != nil {
		r.Profile = profile.Name
	}

	for i, rule := range rules {
		view := Rule{
			Index:        i + 1,
			Description:  rule.Description,
			Manipulators: make([]Manipulator, 0, len(rule.Manipulators)),
		}
		for _, m := range rule.Manipulators {
			view.Manipulators = append(view.Manipulators, buildManipulator(m))
		}
		r.Rules = append(r.Rules, view)
	}

	return r
}

func buildManipulator(m types.Manipulator) Manipulator {
	out := Manipulator{From: builder.FormatFrom(m.From)}

	for _, id := range m.DeviceIdentifiers() {
		desc := id.Description
		if desc == "" {
			desc = "N/A"
		}
		out.Devices = append(out.Devices, Device{
			Description: desc,
			VendorID:    id.VendorID,
			ProductID:   id.ProductID,
		})
	}

	for _, e := range m.To {
		out.To = append(out.To, builder.FormatToEvent(e))
	}

	return out
}
