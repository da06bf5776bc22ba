// Package builder composes complex-modification rules from a target
// device, a source key and an output combination.
package builder

import (
	"fmt"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// ModifierChoices are the modifiers offered for manual output entry.
var ModifierChoices = []string{
	"left_command", "left_option", "left_control", "left_shift",
	"right_command", "right_option", "right_control", "right_shift",
	"caps_lock", "fn",
}

// Build returns a rule with a single basic manipulator: fromKey with any
// modifiers held, sending toKey with toModifiers, only on device. An empty
// description is replaced with AutoDescription.
func Build(device types.DevicePreset, fromKey, toKey string, toModifiers []string, description string) types.Rule {
	to := types.ToEvent{
		KeyCode:   toKey,
		Modifiers: append(types.ModifierList{}, toModifiers...),
	}

	if strings.TrimSpace(description) == "" {
		description = AutoDescription(fromKey, to, device)
	}

	return types.Rule{
		Description: description,
		Manipulators: []types.Manipulator{
			{
				Type: types.ManipulatorBasic,
				From: &types.From{
					KeyCode: fromKey,
					Modifiers: &types.Modifiers{
						Optional: types.ModifierList{types.ModifierAny},
					},
				},
				To: []types.ToEvent{to},
				Conditions: []types.Condition{
					{
						Type:        types.ConditionDeviceIf,
						Identifiers: []types.DeviceIdentifier{device.Identifier()},
					},
				},
			},
		},
	}
}

// AutoDescription describes a mapping as "<from> to <output> for <device>".
func AutoDescription(fromKey string, to types.ToEvent, device types.DevicePreset) string {
	return fmt.Sprintf("%s to %s for %s", fromKey, FormatToEvent(to), device.DisplayName())
}

// FormatToEvent renders an output event as "L-command+L-shift+a".
func FormatToEvent(e types.ToEvent) string {
	output := e.Action()
	if len(e.Modifiers) == 0 {
		return output
	}
	return FormatModifiers(e.Modifiers) + "+" + output
}

// FormatModifiers abbreviates sided modifiers and joins them with "+".
func FormatModifiers(modifiers []string) string {
	short := make([]string, len(modifiers))
	for i, m := range modifiers {
		switch {
		case strings.HasPrefix(m, "left_"):
			short[i] = "L-" + strings.TrimPrefix(m, "left_")
		case strings.HasPrefix(m, "right_"):
			short[i] = "R-" + strings.TrimPrefix(m, "right_")
		default:
			short[i] = m
		}
	}
	return strings.Join(short, "+")
}

// FormatFrom renders the source of a manipulator, prefixed with "Any+"
// when it fires regardless of held modifiers.
func FormatFrom(f *types.From) string {
	key := f.KeyName()
	if key == "" {
		key = "N/A"
	}
	if f.AcceptsAnyModifier() {
		return "Any+" + key
	}
	return key
}
