package testutil

import (
	"testing"

	"github.com/Oliyy/karabiner-cli/pkg/suggest"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/stretchr/testify/require"
)

// RuleTo returns a single-manipulator rule from f13 to events.
func RuleTo(events ...types.ToEvent) types.Rule {
	return types.Rule{
		Description: "test",
		Manipulators: []types.Manipulator{{
			Type: types.ManipulatorBasic,
			From: &types.From{KeyCode: "f13"},
			To:   events,
		}},
	}
}

// HyperSaturated returns a rule that already uses every key in the
// suggestion pool with both hyper classes.
func HyperSaturated() types.Rule {
	events := make([]types.ToEvent, 0, 2*len(suggest.KeyPool))
	for _, key := range suggest.KeyPool {
		events = append(events,
			types.ToEvent{KeyCode: key, Modifiers: types.ModifierList(suggest.HyperLeft)},
			types.ToEvent{KeyCode: key, Modifiers: types.ModifierList(suggest.HyperRight)},
		)
	}
	rule := RuleTo(events...)
	rule.Description = "everything"
	return rule
}

// Document renders a karabiner.json document with one selected profile
// holding rules.
func Document(t *testing.T, profile string, rules ...types.Rule) string {
	t.Helper()
	cfg := &types.Configuration{Profiles: []types.Profile{{
		Name:                 profile,
		Selected:             true,
		ComplexModifications: &types.ComplexModifications{Rules: rules},
	}}}
	doc, err := cfg.Document()
	require.NoError(t, err)
	return string(doc)
}
