// Package internal holds the setup shared by the karabiner commands.
package internal

import (
	"github.com/Oliyy/karabiner-cli/pkg/filesystem"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/store"
	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// Target names the karabiner.json a command works on.
type Target struct {
	// Path is the karabiner.json location.
	Path string

	// FS defaults to the OS filesystem.
	FS filesystem.FS

	// Policy decides how several selected profiles are handled.
	Policy store.SelectionPolicy
}

// Opened is a loaded document with its active profile resolved.
type Opened struct {
	Session *store.Session
	Config  *types.Configuration
	Profile *types.Profile
}

// Open loads t.Path and resolves the active profile.
func Open(t Target) (*Opened, error) {
	fsys := t.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	policy := t.Policy
	if policy == "" {
		policy = store.SelectFirst
	}

	logger := logging.GetLogger("store").With().Str("file", t.Path).Logger()
	sess := store.New(fsys, store.WithSelectionPolicy(policy), store.WithLogger(logger))
	cfg, err := sess.Load(t.Path)
	if err != nil {
		return nil, err
	}

	profile, err := sess.ActiveProfile(cfg)
	if err != nil {
		return nil, err
	}

	return &Opened{Session: sess, Config: cfg, Profile: profile}, nil
}
