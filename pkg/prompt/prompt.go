// Package prompt collects the answers the add command needs.
package prompt

import (
	"strconv"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// Prompter asks the user for the pieces of a new rule.
type Prompter interface {
	// SelectDevice picks one of presets. custom is true when the user asked
	// to enter a device by hand instead.
	SelectDevice(presets []types.DevicePreset) (device types.DevicePreset, custom bool, err error)

	// CustomDevice asks for a description, vendor ID and product ID.
	CustomDevice() (types.DevicePreset, error)

	// FromKey asks for the source key code.
	FromKey() (string, error)

	// ConfirmSuggestion asks whether the formatted suggestion should be used.
	ConfirmSuggestion(formatted string) (bool, error)

	// ManualTo asks for the output key code and a subset of choices.
	ManualTo(choices []string) (key string, modifiers []string, err error)

	// Description asks for the rule description, prefilled with def.
	Description(def string) (string, error)
}

// ValidateKeyCode rejects empty key codes and codes containing whitespace.
func ValidateKeyCode(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New(errors.ErrInvalidInput, "key code is required")
	}
	if strings.ContainsAny(s, " \t") {
		return errors.Newf(errors.ErrInvalidInput, "key code %q must not contain spaces", s)
	}
	return nil
}

// ParseID parses a USB vendor or product ID.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 0 {
		return 0, errors.Newf(errors.ErrInvalidInput, "%q is not a valid ID", s)
	}
	return id, nil
}

// ValidateID is ParseID for form validators.
func ValidateID(s string) error {
	_, err := ParseID(s)
	return err
}
