package karabinercli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage Karabiner-Elements complex modifications"
	MsgListShort       = "List the rules of the selected profile"
	MsgAddShort        = "Add a device rule interactively"
	MsgWatchShort      = "List the rules again whenever karabiner.json changes"
	MsgPresetsShort    = "List the configured device presets"
	MsgPresetsLong     = "Presets lists the devices offered by the add command. Edit the [[devices]] tables of the settings file to change them."
	MsgConfigShort     = "Show or create karabiner-cli settings"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Man writes one man page per command into the given directory."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRuleAdded       = "Successfully added new rule: %q"
	MsgBackupWritten   = "Previous version saved to %s"
	MsgBackupFailed    = "Could not back up %s: %v"
	MsgPresetsHeader   = "Device presets:"
	MsgNoPresets       = "No device presets configured."
	MsgPresetItem      = "  %s\n"
	MsgSettingsWritten = "Wrote settings template to %s"
	MsgSettingsSource  = "# Merged from %s\n\n"
	MsgManWritten      = "Wrote man pages to %s"
	MsgVersionFormat   = "karabiner-cli version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrSettingsExists = "%s already exists (use --force to overwrite)"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfigPath = "Path of karabiner.json (default from settings)"
	MsgFlagSettings   = "Settings file, TOML or YAML (default $XDG_CONFIG_HOME/karabiner-cli/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
	MsgFlagStrict     = "Fail when more than one profile is selected"
	MsgFlagAccessible = "Use plain line prompts instead of the interactive form"
	MsgFlagInit       = "Write a commented settings template"
	MsgFlagForce      = "Overwrite an existing settings file"
	MsgFlagManDir     = "Directory to write man pages to"
	MsgFlagDebounce   = "Quiet period after a change before listing again"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
