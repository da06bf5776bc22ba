package add

import (
	"github.com/Oliyy/karabiner-cli/pkg/builder"
	"github.com/Oliyy/karabiner-cli/pkg/commands/internal"
	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/prompt"
	"github.com/Oliyy/karabiner-cli/pkg/store"
	"github.com/Oliyy/karabiner-cli/pkg/suggest"
	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// NoSuggestionMessage is shown before manual entry when every hyper
// combination is already in use.
const NoSuggestionMessage = "Could not find an available Hyper key combination automatically."

// AddRuleOptions defines the options for the AddRule command.
type AddRuleOptions struct {
	internal.Target

	// Presets are offered in the device picker.
	Presets []types.DevicePreset

	// Prompter collects the answers.
	Prompter prompt.Prompter

	// Notify, if set, receives informational messages for the user.
	Notify func(msg string)
}

// AddRuleResult reports the rule that was written.
type AddRuleResult struct {
	Profile   string
	Rule      types.Rule
	Suggested bool
	Save      *store.SaveResult
}

// AddRule asks for a device, a source key and an output combination, then
// appends the new rule to the active profile and saves the file.
func AddRule(opts AddRuleOptions) (*AddRuleResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "AddRule").Str("path", opts.Path).Msg("Executing command")

	if opts.Prompter == nil {
		return nil, errors.New(errors.ErrInternal, "no prompter configured")
	}

	opened, err := internal.Open(opts.Target)
	if err != nil {
		return nil, err
	}
	rules := opened.Session.Rules(opened.Profile)

	device, err := chooseDevice(opts)
	if err != nil {
		return nil, err
	}

	fromKey, err := opts.Prompter.FromKey()
	if err != nil {
		return nil, err
	}
	if err := prompt.ValidateKeyCode(fromKey); err != nil {
		return nil, err
	}

	toKey, toModifiers, suggested, err := chooseOutput(opts, rules)
	if err != nil {
		return nil, err
	}

	auto := builder.AutoDescription(fromKey, types.ToEvent{KeyCode: toKey, Modifiers: toModifiers}, device)
	description, err := opts.Prompter.Description(auto)
	if err != nil {
		return nil, err
	}

	rule := builder.Build(device, fromKey, toKey, toModifiers, description)
	opened.Session.AppendRule(opened.Profile, rule)

	saved, err := opened.Session.Save(opened.Config, opts.Path)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "AddRule").
		Str("profile", opened.Profile.Name).
		Str("rule", rule.Description).
		Bool("suggested", suggested).
		Msg("Command finished")

	return &AddRuleResult{
		Profile:   opened.Profile.Name,
		Rule:      rule,
		Suggested: suggested,
		Save:      saved,
	}, nil
}

func chooseDevice(opts AddRuleOptions) (types.DevicePreset, error) {
	device, custom, err := opts.Prompter.SelectDevice(opts.Presets)
	if err != nil {
		return types.DevicePreset{}, err
	}
	if !custom {
		return device, nil
	}
	return opts.Prompter.CustomDevice()
}

func chooseOutput(opts AddRuleOptions, rules []types.Rule) (string, []string, bool, error) {
	if s, ok := suggest.Suggest(rules); ok {
		use, err := opts.Prompter.ConfirmSuggestion(builder.FormatToEvent(s.ToEvent()))
		if err != nil {
			return "", nil, false, err
		}
		if use {
			return s.Key, s.Modifiers, true, nil
		}
	} else if opts.Notify != nil {
		opts.Notify(NoSuggestionMessage)
	}

	key, mods, err := opts.Prompter.ManualTo(builder.ModifierChoices)
	if err != nil {
		return "", nil, false, err
	}
	if err := prompt.ValidateKeyCode(key); err != nil {
		return "", nil, false, err
	}
	return key, mods, false, nil
}
