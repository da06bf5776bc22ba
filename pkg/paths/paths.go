// Package paths provides centralized path handling for karabiner-cli.
// Tool files follow the XDG Base Directory specification; the Karabiner
// configuration itself lives where Karabiner-Elements keeps it.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/adrg/xdg"
)

const (
	// AppName names the XDG config and state directories.
	AppName = "karabiner-cli"

	// SettingsFileName is the tool settings file in the config directory.
	SettingsFileName = "config.toml"

	// LogFileName is the log file in the state directory.
	LogFileName = AppName + ".log"

	// DefaultKarabinerConfig is where Karabiner-Elements keeps its configuration.
	DefaultKarabinerConfig = "~/.config/karabiner/karabiner.json"

	// BackupSuffix is appended to the karabiner.json path to name its backup.
	BackupSuffix = ".bak"
)

// SettingsFile returns $XDG_CONFIG_HOME/karabiner-cli/config.toml.
func SettingsFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, SettingsFileName)
}

// LogFile returns $XDG_STATE_HOME/karabiner-cli/karabiner-cli.log.
func LogFile() string {
	return filepath.Join(xdg.StateHome, AppName, LogFileName)
}

// BackupFile returns the backup location for a karabiner.json path.
func BackupFile(path string) string {
	return path + BackupSuffix
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrIO, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}
