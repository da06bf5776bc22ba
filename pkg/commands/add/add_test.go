package add_test

import (
	stderrors "errors"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/commands/add"
	"github.com/Oliyy/karabiner-cli/pkg/commands/internal"
	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/testutil"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const configPath = "/karabiner/karabiner.json"

const document = `{
    "global": {"show_in_menu_bar": false},
    "profiles": [
        {
            "name": "Default",
            "selected": true,
            "complex_modifications": {
                "rules": [
                    {
                        "description": "taken",
                        "manipulators": [
                            {
                                "type": "basic",
                                "from": {"key_code": "f1"},
                                "to": [{"key_code": "a", "modifiers": ["left_shift", "left_option", "left_control", "left_command"]}]
                            }
                        ]
                    }
                ]
            }
        }
    ]
}`

var presets = []types.DevicePreset{
	{Name: "Foot Pedal", Description: "VoltPad", VendorID: 65195, ProductID: 6},
	{Name: "PIXIE", Description: "PIXIE", VendorID: 16969, ProductID: 20600},
}

type MockPrompter = testutil.MockPrompter

func setup(t *testing.T, doc string) (afero.Fs, internal.Target) {
	t.Helper()
	mem, fsys := testutil.MemoryFS(t, map[string]string{configPath: doc})
	return mem, internal.Target{Path: configPath, FS: fsys}
}

func TestAddRule_AcceptSuggestion(t *testing.T) {
	mem, target := setup(t, document)

	p := new(MockPrompter)
	p.On("SelectDevice", presets).Return(presets[0], false, nil)
	p.On("FromKey").Return("f13", nil)
	p.On("ConfirmSuggestion", "R-command+R-control+R-option+R-shift+a").Return(true, nil)
	p.On("Description", "f13 to R-command+R-control+R-option+R-shift+a for VoltPad").Return("pedal hyper a", nil)

	result, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
	require.NoError(t, err)
	p.AssertExpectations(t)
	p.AssertNotCalled(t, "ManualTo", mock.Anything)

	assert.True(t, result.Suggested)
	assert.Equal(t, "Default", result.Profile)
	assert.Equal(t, "pedal hyper a", result.Rule.Description)
	require.NotNil(t, result.Save)
	assert.Equal(t, configPath+".bak", result.Save.BackupPath)
	assert.NoError(t, result.Save.BackupErr)

	saved, err := afero.ReadFile(mem, configPath)
	require.NoError(t, err)
	rules := gjson.GetBytes(saved, "profiles.0.complex_modifications.rules")
	assert.Equal(t, int64(2), rules.Get("#").Int())
	added := rules.Get("1.manipulators.0")
	assert.Equal(t, "f13", added.Get("from.key_code").String())
	assert.Equal(t, "any", added.Get("from.modifiers.optional.0").String())
	assert.Equal(t, "a", added.Get("to.0.key_code").String())
	assert.Equal(t, "right_command", added.Get("to.0.modifiers.0").String())
	assert.Equal(t, int64(65195), added.Get("conditions.0.identifiers.0.vendor_id").Int())
	assert.False(t, gjson.GetBytes(saved, "global.show_in_menu_bar").Bool())

	backup, err := afero.ReadFile(mem, configPath+".bak")
	require.NoError(t, err)
	assert.Equal(t, document, string(backup))
}

func TestAddRule_DeclineSuggestionCustomDevice(t *testing.T) {
	_, target := setup(t, document)
	custom := types.DevicePreset{Name: "Macro Pad", Description: "Macro Pad", VendorID: 1, ProductID: 2}

	p := new(MockPrompter)
	p.On("SelectDevice", presets).Return(types.DevicePreset{}, true, nil)
	p.On("CustomDevice").Return(custom, nil)
	p.On("FromKey").Return("keypad_1", nil)
	p.On("ConfirmSuggestion", mock.Anything).Return(false, nil)
	p.On("ManualTo", mock.Anything).Return("x", []string{"left_shift", "fn"}, nil)
	p.On("Description", "keypad_1 to L-shift+fn+x for Macro Pad").Return("keypad_1 to L-shift+fn+x for Macro Pad", nil)

	result, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
	require.NoError(t, err)
	p.AssertExpectations(t)

	assert.False(t, result.Suggested)
	m := result.Rule.Manipulators[0]
	assert.Equal(t, "x", m.To[0].KeyCode)
	assert.Equal(t, types.ModifierList{"left_shift", "fn"}, m.To[0].Modifiers)
	assert.Equal(t, 1, m.Conditions[0].Identifiers[0].VendorID)
}

func TestAddRule_NoSuggestionGoesManual(t *testing.T) {
	_, target := setup(t, testutil.Document(t, "Full", testutil.HyperSaturated()))

	p := new(MockPrompter)
	p.On("SelectDevice", presets).Return(presets[1], false, nil)
	p.On("FromKey").Return("f2", nil)
	p.On("ManualTo", mock.Anything).Return("escape", nil, nil)
	p.On("Description", "f2 to escape for PIXIE").Return("", nil)

	var notes []string
	result, err := add.AddRule(add.AddRuleOptions{
		Target:   target,
		Presets:  presets,
		Prompter: p,
		Notify:   func(msg string) { notes = append(notes, msg) },
	})
	require.NoError(t, err)
	p.AssertExpectations(t)
	p.AssertNotCalled(t, "ConfirmSuggestion", mock.Anything)

	assert.Equal(t, []string{add.NoSuggestionMessage}, notes)
	assert.Equal(t, "f2 to escape for PIXIE", result.Rule.Description)
}

func TestAddRule_Errors(t *testing.T) {
	t.Run("no active profile", func(t *testing.T) {
		_, target := setup(t, `{"profiles": [{"name": "Default", "selected": false}]}`)
		_, err := add.AddRule(add.AddRuleOptions{Target: target, Prompter: new(MockPrompter)})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoActiveProfile))
	})

	t.Run("prompt aborted leaves file untouched", func(t *testing.T) {
		mem, target := setup(t, document)
		p := new(MockPrompter)
		p.On("SelectDevice", presets).Return(presets[0], false, nil)
		p.On("FromKey").Return("", errors.New(errors.ErrPrompt, "aborted"))

		_, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
		assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt))

		exists, _ := afero.Exists(mem, configPath+".bak")
		assert.False(t, exists)
	})

	t.Run("invalid from key", func(t *testing.T) {
		_, target := setup(t, document)
		p := new(MockPrompter)
		p.On("SelectDevice", presets).Return(presets[0], false, nil)
		p.On("FromKey").Return("two words", nil)

		_, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("write failure is reported", func(t *testing.T) {
		_, base := testutil.MemoryFS(t, map[string]string{configPath: document})
		fsys := testutil.NewFaultyFS(base)
		fsys.FailWrite(configPath, stderrors.New("read-only file system"))
		target := internal.Target{Path: configPath, FS: fsys}

		p := new(MockPrompter)
		p.On("SelectDevice", presets).Return(presets[0], false, nil)
		p.On("FromKey").Return("f13", nil)
		p.On("ConfirmSuggestion", mock.Anything).Return(true, nil)
		p.On("Description", mock.Anything).Return("d", nil)

		_, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	})

	t.Run("missing prompter", func(t *testing.T) {
		_, err := add.AddRule(add.AddRuleOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})

	t.Run("custom device entry fails", func(t *testing.T) {
		_, target := setup(t, document)
		p := new(MockPrompter)
		p.On("SelectDevice", presets).Return(types.DevicePreset{}, true, nil)
		p.On("CustomDevice").Return(types.DevicePreset{}, stderrors.New("tty closed"))

		_, err := add.AddRule(add.AddRuleOptions{Target: target, Presets: presets, Prompter: p})
		assert.EqualError(t, err, "tty closed")
	})
}
