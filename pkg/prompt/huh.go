package prompt

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/charmbracelet/huh"
)

const customChoice = -1

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct {
	input      io.Reader
	output     io.Writer
	accessible bool
}

// NewHuhPrompter creates a prompter reading from in and drawing on out.
// Accessible mode replaces the TUI with plain line prompts.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{input: in, output: out, accessible: accessible}
}

func (p *HuhPrompter) run(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(p.accessible)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return errors.New(errors.ErrPrompt, "aborted")
		}
		return errors.Wrap(err, errors.ErrPrompt, "prompt failed")
	}
	return nil
}

func (p *HuhPrompter) SelectDevice(presets []types.DevicePreset) (types.DevicePreset, bool, error) {
	options := make([]huh.Option[int], 0, len(presets)+1)
	for i, d := range presets {
		options = append(options, huh.NewOption(d.Label(), i))
	}
	options = append(options, huh.NewOption("Custom Device", customChoice))

	choice := customChoice
	if len(presets) > 0 {
		choice = 0
	}
	err := p.run(huh.NewSelect[int]().
		Title("Select a device preset:").
		Options(options...).
		Value(&choice))
	if err != nil {
		return types.DevicePreset{}, false, err
	}

	if choice == customChoice {
		return types.DevicePreset{}, true, nil
	}
	return presets[choice], false, nil
}

func (p *HuhPrompter) CustomDevice() (types.DevicePreset, error) {
	var description, vendor, product string
	err := p.run(
		huh.NewInput().
			Title("Enter device description (e.g., My Keyboard):").
			Value(&description).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New(errors.ErrInvalidInput, "description is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Enter Vendor ID:").
			Value(&vendor).
			Validate(ValidateID),
		huh.NewInput().
			Title("Enter Product ID:").
			Value(&product).
			Validate(ValidateID),
	)
	if err != nil {
		return types.DevicePreset{}, err
	}

	vendorID, err := ParseID(vendor)
	if err != nil {
		return types.DevicePreset{}, err
	}
	productID, err := ParseID(product)
	if err != nil {
		return types.DevicePreset{}, err
	}

	description = strings.TrimSpace(description)
	return types.DevicePreset{
		Name:        description,
		Description: description,
		VendorID:    vendorID,
		ProductID:   productID,
	}, nil
}

func (p *HuhPrompter) FromKey() (string, error) {
	var key string
	err := p.run(huh.NewInput().
		Title(`Enter the "from" key_code (e.g., a, keypad_1, f1):`).
		Value(&key).
		Validate(ValidateKeyCode))
	return strings.TrimSpace(key), err
}

func (p *HuhPrompter) ConfirmSuggestion(formatted string) (bool, error) {
	use := true
	err := p.run(huh.NewConfirm().
		Title("Suggested 'to' mapping: " + formatted + ". Use this?").
		Affirmative("Yes").
		Negative("No").
		Value(&use))
	return use, err
}

func (p *HuhPrompter) ManualTo(choices []string) (string, []string, error) {
	var (
		key  string
		mods []string
	)
	err := p.run(
		huh.NewInput().
			Title(`Enter the "to" key_code:`).
			Value(&key).
			Validate(ValidateKeyCode),
		huh.NewMultiSelect[string]().
			Title(`Select "to" modifiers (optional):`).
			Options(huh.NewOptions(choices...)...).
			Value(&mods),
	)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(key), mods, nil
}

func (p *HuhPrompter) Description(def string) (string, error) {
	description := def
	err := p.run(huh.NewInput().
		Title("Enter a description for this rule:").
		Value(&description))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(description) == "" {
		return def, nil
	}
	return description, nil
}
