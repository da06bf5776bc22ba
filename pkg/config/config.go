package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/paths"
	"github.com/Oliyy/karabiner-cli/pkg/store"
	"github.com/Oliyy/karabiner-cli/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. KARABINER_CLI_KARABINER_PATH.
	EnvPrefix = "KARABINER_CLI_"
)

// Output formats accepted by output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings is the resolved tool configuration.
type Settings struct {
	Karabiner Karabiner            `koanf:"karabiner" toml:"karabiner"`
	Profiles  Profiles             `koanf:"profiles" toml:"profiles"`
	Watch     Watch                `koanf:"watch" toml:"watch"`
	Output    Output               `koanf:"output" toml:"output"`
	Devices   []types.DevicePreset `koanf:"devices" toml:"devices"`

	// Source is the settings file that was merged, empty when none was found.
	Source string `koanf:"-" toml:"-"`
}

type Karabiner struct {
	Path string `koanf:"path" toml:"path"`
}

type Profiles struct {
	Selection string `koanf:"selection" toml:"selection"`
}

type Watch struct {
	Debounce time.Duration `koanf:"debounce" toml:"debounce"`
}

type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// LoadOptions controls which layers Load merges.
type LoadOptions struct {
	// File replaces the default settings file location. A missing File is an error.
	File string

	// Overrides are applied last, keyed by dotted path (e.g. "karabiner.path").
	Overrides map[string]interface{}
}

// DefaultFilePath returns $XDG_CONFIG_HOME/karabiner-cli/config.toml.
func DefaultFilePath() string {
	return paths.SettingsFile()
}

// Load merges defaults, the settings file, environment and overrides.
func Load(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Settings file
	path := opts.File
	explicit := path != ""
	if !explicit {
		path = DefaultFilePath()
	}
	source := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load settings from %s", path)
		}
		source = path
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s", path)
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	return cfg, nil
}

// parserFor picks the settings file parser by extension. TOML unless the
// file ends in .yaml or .yml.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Default returns the embedded defaults without reading files or env.
func Default() *Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Settings, error) {
	var cfg Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal settings")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SelectionPolicy returns the parsed profiles.selection value.
func (s *Settings) SelectionPolicy() store.SelectionPolicy {
	policy, err := store.ParseSelectionPolicy(s.Profiles.Selection)
	if err != nil {
		return store.SelectFirst
	}
	return policy
}

func postProcess(cfg *Settings) error {
	expanded, err := paths.ExpandHome(strings.TrimSpace(cfg.Karabiner.Path))
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "cannot expand karabiner.path")
	}
	cfg.Karabiner.Path = expanded
	if cfg.Karabiner.Path == "" {
		return errors.New(errors.ErrConfigValid, "karabiner.path must not be empty")
	}

	if _, err := store.ParseSelectionPolicy(cfg.Profiles.Selection); err != nil {
		return err
	}

	if cfg.Watch.Debounce < 0 {
		return errors.Newf(errors.ErrConfigValid, "watch.debounce must not be negative (got %s)", cfg.Watch.Debounce)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch cfg.Output.Format {
	case "":
		cfg.Output.Format = FormatAuto
	case FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q", cfg.Output.Format)
	}

	for i, d := range cfg.Devices {
		if strings.TrimSpace(d.Name) == "" {
			return errors.Newf(errors.ErrConfigValid, "devices[%d] has no name", i)
		}
		if d.VendorID < 0 || d.ProductID < 0 {
			return errors.Newf(errors.ErrConfigValid, "device %q has a negative vendor or product id", d.Name)
		}
	}

	return nil
}
