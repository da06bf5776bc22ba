package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/builder"
	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/report"
	"github.com/Oliyy/karabiner-cli/pkg/suggest"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRules() []types.Rule {
	pedal := types.DevicePreset{Name: "Foot Pedal", Description: "VoltPad", VendorID: 65195, ProductID: 6}
	return []types.Rule{
		builder.Build(pedal, "f13", "a", suggest.HyperLeft, ""),
		{
			Description: "caps to escape",
			Manipulators: []types.Manipulator{{
				Type: types.ManipulatorBasic,
				From: &types.From{KeyCode: "caps_lock"},
				To:   []types.ToEvent{{KeyCode: "escape"}, {ShellCommand: "say hi"}},
			}},
		},
		{
			Description: "no output",
			Manipulators: []types.Manipulator{{
				Type: types.ManipulatorBasic,
				From: &types.From{ConsumerKeyCode: "mute"},
			}},
		},
	}
}

func TestBuild(t *testing.T) {
	r := report.Build("/tmp/karabiner.json", &types.Profile{Name: "Work"}, sampleRules())

	assert.Equal(t, "Work", r.Profile)
	assert.Equal(t, "/tmp/karabiner.json", r.Path)
	require.Len(t, r.Rules, 3)

	first := r.Rules[0]
	assert.Equal(t, 1, first.Index)
	require.Len(t, first.Manipulators, 1)
	assert.Equal(t, "Any+f13", first.Manipulators[0].From)
	assert.Equal(t, []string{"L-command+L-control+L-option+L-shift+a"}, first.Manipulators[0].To)
	assert.Equal(t, []report.Device{{Description: "VoltPad", VendorID: 65195, ProductID: 6}}, first.Manipulators[0].Devices)

	second := r.Rules[1]
	assert.Equal(t, 2, second.Index)
	assert.Empty(t, second.Manipulators[0].Devices)
	assert.Equal(t, []string{"escape", "shell: say hi"}, second.Manipulators[0].To)

	assert.Equal(t, "mute", r.Rules[2].Manipulators[0].From)
	assert.Empty(t, r.Rules[2].Manipulators[0].To)
}

func TestBuild_Empty(t *testing.T) {
	r := report.Build("", nil, nil)
	assert.NotNil(t, r.Rules)
	assert.Empty(t, r.Profile)
}

func TestTextRenderer(t *testing.T) {
	renderer, err := report.New(report.FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, report.Build("", &types.Profile{Name: "Work"}, sampleRules())))

	want := "\nComplex Modifications for profile: \"Work\":\n" +
		"\n[1] f13 to L-command+L-control+L-option+L-shift+a for VoltPad\n" +
		"    Device: VoltPad (VendorID: 65195, ProductID: 6)\n" +
		"    From: Any+f13\n" +
		"    To: L-command+L-control+L-option+L-shift+a\n" +
		"\n[2] caps to escape\n" +
		"    From: caps_lock\n" +
		"    To: escape, shell: say hi\n" +
		"\n[3] no output\n" +
		"    From: mute\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_NoRules(t *testing.T) {
	renderer, err := report.New(report.FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, report.Build("", &types.Profile{Name: "Default"}, nil)))
	assert.Equal(t, "\nComplex Modifications for profile: \"Default\":\n  No complex modifications found.\n", buf.String())
}

func TestTermRenderer(t *testing.T) {
	renderer, err := report.New(report.FormatTerm)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, report.Build("/tmp/k.json", &types.Profile{Name: "Work"}, sampleRules())))

	out := buf.String()
	for _, want := range []string{"Work", "/tmp/k.json", "[1]", "VoltPad", "VendorID: 65195", "Any+f13", "escape, shell: say hi", "[3]"} {
		assert.Contains(t, out, want)
	}
}

func TestStructuredRenderers(t *testing.T) {
	r := report.Build("/tmp/k.json", &types.Profile{Name: "Work"}, sampleRules())

	t.Run("json", func(t *testing.T) {
		renderer, err := report.New(report.FormatJSON)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, renderer.Render(&buf, r))

		var decoded report.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, r, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		renderer, err := report.New(report.FormatYAML)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, renderer.Render(&buf, r))
		assert.Contains(t, buf.String(), "profile: Work")

		var decoded report.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, r, decoded)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want report.Format
	}{
		{"", report.FormatAuto},
		{"auto", report.FormatAuto},
		{"TERM", report.FormatTerm},
		{"plain", report.FormatText},
		{"json", report.FormatJSON},
		{"yml", report.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := report.ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, report.FormatText, report.Resolve(report.FormatAuto, &buf))
	assert.Equal(t, report.FormatJSON, report.Resolve(report.FormatJSON, &buf))

	_, err := report.New(report.FormatAuto)
	assert.Error(t, err)
}
