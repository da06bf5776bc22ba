// Package config handles karabiner-cli's own settings.
// Settings are layered from embedded defaults, an optional TOML file in the
// XDG config directory, KARABINER_CLI_* environment variables and command
// line flags, in that order.
package config
