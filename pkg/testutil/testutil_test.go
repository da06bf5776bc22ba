package testutil

import (
	"errors"
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/suggest"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMemoryFS(t *testing.T) {
	mem, fsys := MemoryFS(t, map[string]string{"/a/b.json": "{}"})

	data, err := fsys.ReadFile("/a/b.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, fsys.WriteFile("/a/c.json", []byte("[]"), 0644))
	exists, err := afero.Exists(mem, "/a/c.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFaultyFS(t *testing.T) {
	_, base := MemoryFS(t, map[string]string{"/x": "data"})
	fsys := NewFaultyFS(base)
	boom := errors.New("boom")

	fsys.FailRead("/x", boom)
	fsys.FailWrite("/y", boom)

	_, err := fsys.ReadFile("/x")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, fsys.WriteFile("/y", nil, 0644), boom)
	assert.NoError(t, fsys.WriteFile("/z", nil, 0644))

	fsys.Heal("/x")
	data, err := fsys.ReadFile("/x")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestHyperSaturated(t *testing.T) {
	rule := HyperSaturated()
	require.Len(t, rule.Manipulators, 1)
	assert.Len(t, rule.Manipulators[0].To, 2*len(suggest.KeyPool))

	_, ok := suggest.Suggest([]types.Rule{rule})
	assert.False(t, ok)
}

func TestDocument(t *testing.T) {
	doc := Document(t, "Work", RuleTo(types.ToEvent{KeyCode: "a"}))

	assert.Equal(t, "Work", gjson.Get(doc, "profiles.0.name").String())
	assert.True(t, gjson.Get(doc, "profiles.0.selected").Bool())
	assert.Equal(t, "a", gjson.Get(doc, "profiles.0.complex_modifications.rules.0.manipulators.0.to.0.key_code").String())
}
