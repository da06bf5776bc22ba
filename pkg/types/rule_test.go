package types_test

import (
	"encoding/json"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_KeyName(t *testing.T) {
	tests := []struct {
		name string
		from *types.From
		want string
	}{
		{name: "nil", from: nil, want: ""},
		{name: "key code", from: &types.From{KeyCode: "f13"}, want: "f13"},
		{name: "consumer key", from: &types.From{ConsumerKeyCode: "volume_increment"}, want: "volume_increment"},
		{name: "pointing button", from: &types.From{PointingButton: "button4"}, want: "button4"},
		{name: "any only", from: &types.From{Any: "key_code"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.KeyName())
		})
	}
}

func TestFrom_AcceptsAnyModifier(t *testing.T) {
	assert.False(t, (*types.From)(nil).AcceptsAnyModifier())
	assert.False(t, (&types.From{KeyCode: "a"}).AcceptsAnyModifier())
	assert.False(t, (&types.From{Modifiers: &types.Modifiers{Mandatory: types.ModifierList{"any"}}}).AcceptsAnyModifier())
	assert.True(t, (&types.From{Modifiers: &types.Modifiers{Optional: types.ModifierList{"caps_lock", "any"}}}).AcceptsAnyModifier())
}

func TestToEvent_Action(t *testing.T) {
	assert.Equal(t, "a", types.ToEvent{KeyCode: "a", ShellCommand: "ls"}.Action())
	assert.Equal(t, "mute", types.ToEvent{ConsumerKeyCode: "mute"}.Action())
	assert.Equal(t, "button1", types.ToEvent{PointingButton: "button1"}.Action())
	assert.Equal(t, "shell: open -a Safari", types.ToEvent{ShellCommand: " open -a Safari\n"}.Action())
	assert.Equal(t, "", types.ToEvent{}.Action())
}

func TestManipulator_DeviceIdentifiers(t *testing.T) {
	m := types.Manipulator{
		Conditions: []types.Condition{
			{Type: "frontmost_application_if"},
			{Type: types.ConditionDeviceIf, Identifiers: []types.DeviceIdentifier{{VendorID: 1, ProductID: 2}}},
			{Type: "device_unless", Identifiers: []types.DeviceIdentifier{{VendorID: 9, ProductID: 9}}},
		},
	}

	ids := m.DeviceIdentifiers()
	require.Len(t, ids, 1)
	assert.Equal(t, 1, ids[0].VendorID)
	assert.Equal(t, 2, ids[0].ProductID)
}

func TestModifierList_AcceptsString(t *testing.T) {
	var e types.ToEvent
	require.NoError(t, json.Unmarshal([]byte(`{"key_code": "a", "modifiers": "left_shift"}`), &e))
	assert.Equal(t, types.ModifierList{"left_shift"}, e.Modifiers)

	require.NoError(t, json.Unmarshal([]byte(`{"key_code": "a", "modifiers": ["left_shift", "fn"]}`), &e))
	assert.Equal(t, types.ModifierList{"left_shift", "fn"}, e.Modifiers)

	assert.Error(t, json.Unmarshal([]byte(`{"modifiers": 3}`), &e))
}

func TestManipulator_PreservesUnknownFields(t *testing.T) {
	input := `{
		"type": "basic",
		"from": {"key_code": "a", "simultaneous": [{"key_code": "s"}]},
		"to": [{"set_variable": {"name": "mode", "value": 1}}],
		"conditions": [
			{"type": "variable_if", "name": "mode", "value": 0},
			{"type": "device_if", "identifiers": [{"vendor_id": 5, "product_id": 6, "is_keyboard": true}]}
		],
		"parameters": {"basic.simultaneous_threshold_milliseconds": 50}
	}`

	var m types.Manipulator
	require.NoError(t, json.Unmarshal([]byte(input), &m))
	assert.Equal(t, "", m.To[0].Action())
	require.Len(t, m.DeviceIdentifiers(), 1)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestRule_MarshalEmptyManipulators(t *testing.T) {
	out, err := json.Marshal(types.Rule{Description: "empty"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description": "empty", "manipulators": []}`, string(out))
}

func TestDevicePreset(t *testing.T) {
	withDesc := types.DevicePreset{Name: "Foot Pedal", Description: "VoltPad", VendorID: 65195, ProductID: 6}
	assert.Equal(t, "VoltPad", withDesc.DisplayName())
	assert.Equal(t, "Foot Pedal (Vendor: 65195, Product: 6)", withDesc.Label())
	assert.Equal(t, types.DeviceIdentifier{VendorID: 65195, ProductID: 6, Description: "VoltPad"}, withDesc.Identifier())

	nameOnly := types.DevicePreset{Name: "PIXIE", VendorID: 16969, ProductID: 20600}
	assert.Equal(t, "PIXIE", nameOnly.DisplayName())
}
