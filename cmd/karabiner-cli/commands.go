package karabinercli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Oliyy/karabiner-cli/pkg/commands"
	"github.com/Oliyy/karabiner-cli/pkg/config"
	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/Oliyy/karabiner-cli/pkg/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// render writes r in the configured format.
func (a *app) render(cmd *cobra.Command, r report.Report) error {
	out := cmd.OutOrStdout()
	f, err := a.outputFormat(out)
	if err != nil {
		return err
	}
	renderer, err := report.New(f)
	if err != nil {
		return err
	}
	return renderer.Render(out, r)
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := commands.ListRules(commands.ListRulesOptions{Target: a.target()})
			if err != nil {
				return err
			}
			return a.render(cmd, *r)
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:     "add",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd.OutOrStdout())

			result, err := commands.AddRule(commands.AddRuleOptions{
				Target:   a.target(),
				Presets:  a.settings.Devices,
				Prompter: a.newPrompter(cmd, accessible || os.Getenv("ACCESSIBLE") != ""),
				Notify:   func(msg string) { p.Warning("%s", msg) },
			})
			if err != nil {
				return err
			}

			if result.Save.BackupErr != nil {
				p.Warning(MsgBackupFailed, result.Save.Path, result.Save.BackupErr)
			} else {
				p.Info(MsgBackupWritten, result.Save.BackupPath)
			}
			p.Success(MsgRuleAdded, result.Rule.Description)
			return nil
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, MsgFlagAccessible)
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var debounce string

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			delay := a.settings.Watch.Debounce
			if debounce != "" {
				d, err := parseDuration(debounce)
				if err != nil {
					return err
				}
				delay = d
			}

			out := cmd.OutOrStdout()
			f, err := a.outputFormat(out)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return commands.WatchRules(ctx, commands.WatchRulesOptions{
				Target:   a.target(),
				Debounce: delay,
				Out:      out,
				Clear:    f == report.FormatTerm,
				Render:   func(r report.Report) error { return a.render(cmd, r) },
			})
		},
	}

	cmd.Flags().StringVar(&debounce, "debounce", "", MsgFlagDebounce)
	return cmd
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "presets",
		Short:   MsgPresetsShort,
		Long:    MsgPresetsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			f, err := a.outputFormat(out)
			if err != nil {
				return err
			}

			switch f {
			case report.FormatJSON:
				return writeJSON(out, a.settings.Devices)
			case report.FormatYAML:
				return writeYAML(out, a.settings.Devices)
			}

			if len(a.settings.Devices) == 0 {
				_, _ = fmt.Fprintln(out, MsgNoPresets)
				return nil
			}
			_, _ = fmt.Fprintln(out, MsgPresetsHeader)
			for _, d := range a.settings.Devices {
				_, _ = fmt.Fprintf(out, MsgPresetItem, d.Label())
			}
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var initFile, force bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if initFile {
				path := a.settingsFile
				if path == "" {
					path = config.DefaultFilePath()
				}
				if _, err := a.fs.Stat(path); err == nil && !force {
					return errors.Newf(errors.ErrInvalidInput, MsgErrSettingsExists, path)
				}
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(path))
				}
				if err := a.fs.WriteFile(path, []byte(config.GenerateConfigContent()), 0644); err != nil {
					return errors.Wrapf(err, errors.ErrIO, "failed to write %s", path)
				}
				a.printer(out).Success(MsgSettingsWritten, path)
				return nil
			}

			data, err := config.EncodeTOML(a.settings)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
			}
			if a.settings.Source != "" {
				_, _ = fmt.Fprintf(out, MsgSettingsSource, a.settings.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

// runContext is cmd.Context() falling back to Background for direct calls.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	log.Trace().Msg("No command context, using background")
	return context.Background()
}
