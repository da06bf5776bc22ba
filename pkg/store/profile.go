package store

import (
	"fmt"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// SelectionPolicy decides what happens when several profiles are selected.
type SelectionPolicy string

const (
	// SelectFirst uses the first selected profile and logs a warning.
	SelectFirst SelectionPolicy = "first"

	// SelectStrict rejects documents with more than one selected profile.
	SelectStrict SelectionPolicy = "strict"
)

// ParseSelectionPolicy parses a policy name; the empty string means SelectFirst.
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch SelectionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SelectFirst:
		return SelectFirst, nil
	case SelectStrict:
		return SelectStrict, nil
	default:
		return "", errors.Newf(errors.ErrConfigValid, "unknown profile selection policy %q (want %q or %q)", s, SelectFirst, SelectStrict)
	}
}

// ActiveProfile returns the selected profile of cfg.
func (s *Session) ActiveProfile(cfg *types.Configuration) (*types.Profile, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrNotLoaded, "config not loaded")
	}

	var (
		active   *types.Profile
		selected []string
	)
	for i := range cfg.Profiles {
		if !cfg.Profiles[i].Selected {
			continue
		}
		if active == nil {
			active = &cfg.Profiles[i]
		}
		selected = append(selected, cfg.Profiles[i].Name)
	}

	if active == nil {
		return nil, errors.New(errors.ErrNoActiveProfile, "no active profile found in Karabiner configuration")
	}

	if len(selected) > 1 {
		if s.policy == SelectStrict {
			return nil, errors.New(errors.ErrAmbiguousProfile,
				fmt.Sprintf("%d profiles are selected: %s", len(selected), strings.Join(selected, ", "))).
				WithDetail("profiles", selected)
		}
		s.logger.Warn().
			Strs("profiles", selected).
			Str("using", active.Name).
			Msg("Several profiles are selected, using the first")
	}

	return active, nil
}
