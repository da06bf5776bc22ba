package testutil

import (
	"github.com/Oliyy/karabiner-cli/pkg/prompt"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/stretchr/testify/mock"
)

var _ prompt.Prompter = (*MockPrompter)(nil)

// MockPrompter is a mock implementation of prompt.Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) SelectDevice(presets []types.DevicePreset) (types.DevicePreset, bool, error) {
	args := m.Called(presets)
	return args.Get(0).(types.DevicePreset), args.Bool(1), args.Error(2)
}

func (m *MockPrompter) CustomDevice() (types.DevicePreset, error) {
	args := m.Called()
	return args.Get(0).(types.DevicePreset), args.Error(1)
}

func (m *MockPrompter) FromKey() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) ConfirmSuggestion(formatted string) (bool, error) {
	args := m.Called(formatted)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) ManualTo(choices []string) (string, []string, error) {
	args := m.Called(choices)
	var mods []string
	if v := args.Get(1); v != nil {
		mods = v.([]string)
	}
	return args.String(0), mods, args.Error(2)
}

func (m *MockPrompter) Description(def string) (string, error) {
	args := m.Called(def)
	return args.String(0), args.Error(1)
}
