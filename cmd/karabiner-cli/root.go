package karabinercli

import (
	"io"

	"github.com/Oliyy/karabiner-cli/internal/version"
	"github.com/Oliyy/karabiner-cli/pkg/commands"
	"github.com/Oliyy/karabiner-cli/pkg/config"
	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/filesystem"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/prompt"
	"github.com/Oliyy/karabiner-cli/pkg/report"
	"github.com/Oliyy/karabiner-cli/pkg/store"
	"github.com/Oliyy/karabiner-cli/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	verbosity    int
	configPath   string
	settingsFile string
	format       string
	strict       bool

	settings *config.Settings
	fs       filesystem.FS

	// newPrompter builds the prompter used by add.
	newPrompter func(cmd *cobra.Command, accessible bool) prompt.Prompter
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		fs: filesystem.NewOS(),
		newPrompter: func(cmd *cobra.Command, accessible bool) prompt.Prompter {
			return prompt.NewHuhPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), accessible)
		},
	})
}

func newRootCmd(a *app) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "karabiner-cli",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.Name(), args)
			if cmd.GroupID == "misc" {
				return nil
			}
			return a.loadSettings()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config-path", "c", "", MsgFlagConfigPath)
	rootCmd.PersistentFlags().StringVar(&a.settingsFile, "settings", "", MsgFlagSettings)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, MsgFlagStrict)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newPresetsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadSettings merges the settings layers with the global flags.
func (a *app) loadSettings() error {
	overrides := map[string]interface{}{}
	if a.configPath != "" {
		overrides["karabiner.path"] = a.configPath
	}
	if a.format != "" {
		overrides["output.format"] = a.format
	}
	if a.strict {
		overrides["profiles.selection"] = string(store.SelectStrict)
	}

	settings, err := config.Load(config.LoadOptions{
		File:      a.settingsFile,
		Overrides: overrides,
	})
	if err != nil {
		return err
	}
	a.settings = settings

	log.Debug().
		Str("karabiner", settings.Karabiner.Path).
		Str("settings", settings.Source).
		Str("format", settings.Output.Format).
		Msg("Settings loaded")
	return nil
}

// outputFormat resolves the configured format for w.
func (a *app) outputFormat(w io.Writer) (report.Format, error) {
	f, err := report.ParseFormat(a.settings.Output.Format)
	if err != nil {
		return f, err
	}
	return report.Resolve(f, w), nil
}

// printer returns a status printer for w, coloured when the output is.
func (a *app) printer(w io.Writer) *style.Printer {
	f, err := a.outputFormat(w)
	return style.NewPrinter(w, err == nil && f == report.FormatTerm)
}

// target names the karabiner.json of this invocation.
func (a *app) target() commands.Target {
	return commands.Target{
		Path:   a.settings.Karabiner.Path,
		FS:     a.fs,
		Policy: a.settings.SelectionPolicy(),
	}
}
