package store

import (
	"io/fs"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/filesystem"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/paths"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/rs/zerolog"
)

// Session holds the working copy of a karabiner.json document.
type Session struct {
	fs     filesystem.FS
	policy SelectionPolicy
	logger zerolog.Logger

	path   string
	config *types.Configuration
}

// Option configures a Session.
type Option func(*Session)

// WithSelectionPolicy sets how documents with several selected profiles
// are treated.
func WithSelectionPolicy(policy SelectionPolicy) Option {
	return func(s *Session) {
		s.policy = policy
	}
}

// WithLogger replaces the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// SaveResult reports what Save did besides writing the document.
type SaveResult struct {
	Path       string
	BackupPath string
	BackupErr  error
}

// New creates a session reading and writing through fsys.
func New(fsys filesystem.FS, opts ...Option) *Session {
	s := &Session{
		fs:     fsys,
		policy: SelectFirst,
		logger: logging.GetLogger("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads, validates and caches the configuration at path. On failure
// the previously cached configuration, if any, is kept.
func (s *Session) Load(path string) (*types.Configuration, error) {
	done := logging.LogOperationStart(s.logger, "load")
	defer done()

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read karabiner configuration from %s", path).
			WithDetail("path", path)
	}

	cfg, err := types.Decode(data)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("Rejected karabiner configuration")
		return nil, err
	}

	s.path = path
	s.config = cfg
	s.logger.Debug().
		Str("path", path).
		Int("profiles", len(cfg.Profiles)).
		Msg("Loaded karabiner configuration")
	return cfg, nil
}

// Config returns the cached configuration, or nil before a successful Load.
func (s *Session) Config() *types.Configuration {
	return s.config
}

// Path returns the path of the last successful Load.
func (s *Session) Path() string {
	return s.path
}

// Rules returns the profile's rules, or an empty slice when it has no
// complex_modifications block. It never modifies the profile.
func (s *Session) Rules(profile *types.Profile) []types.Rule {
	rules := profile.Rules()
	if rules == nil {
		return []types.Rule{}
	}
	return rules
}

// AppendRule adds rule at the end of the profile's rule list, creating the
// complex_modifications block if needed. The rule is not checked.
func (s *Session) AppendRule(profile *types.Profile, rule types.Rule) {
	cm := profile.EnsureComplexModifications()
	cm.Rules = append(cm.Rules, rule)
	profile.MarkDirty()

	s.logger.Debug().
		Str("profile", profile.Name).
		Str("rule", rule.Description).
		Int("rules", len(cm.Rules)).
		Msg("Appended rule")
}

// Save backs up the file at path and overwrites it with cfg. Only a failure
// to write the document is returned; a failed backup is reported in the
// result and logged.
func (s *Session) Save(cfg *types.Configuration, path string) (*SaveResult, error) {
	done := logging.LogOperationStart(s.logger, "save")
	defer done()

	result := &SaveResult{Path: path}

	backupPath := paths.BackupFile(path)
	if err := filesystem.Copy(s.fs, path, backupPath); err != nil {
		result.BackupErr = err
		s.logger.Warn().Err(err).Str("path", path).Msg("Could not create backup")
	} else {
		result.BackupPath = backupPath
		s.logger.Info().Str("backup", backupPath).Msg("Backup created")
	}

	doc, err := cfg.Document()
	if err != nil {
		return result, err
	}

	perm := fs.FileMode(0644)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := s.fs.WriteFile(path, doc, perm); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Failed to save karabiner configuration")
		return result, errors.Wrapf(err, errors.ErrIO, "failed to save karabiner configuration to %s", path).
			WithDetail("path", path)
	}

	cfg.Commit(doc)
	s.logger.Info().Str("path", path).Int("bytes", len(doc)).Msg("Karabiner configuration saved")
	return result, nil
}
