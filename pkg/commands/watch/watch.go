package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Oliyy/karabiner-cli/pkg/commands/internal"
	"github.com/Oliyy/karabiner-cli/pkg/commands/list"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/report"
	fswatch "github.com/Oliyy/karabiner-cli/pkg/watch"
	"github.com/muesli/termenv"
)

// WatchRulesOptions defines the options for the WatchRules command.
type WatchRulesOptions struct {
	internal.Target

	// Debounce coalesces bursts of writes.
	Debounce time.Duration

	// Out receives the status lines.
	Out io.Writer

	// Clear clears the screen before each re-listing.
	Clear bool

	// Render prints a listing.
	Render func(report.Report) error

	// Source replaces the fsnotify source.
	Source fswatch.Source

	// Now defaults to time.Now.
	Now func() time.Time
}

// WatchRules lists the rules, then lists them again each time the file
// changes. It returns when ctx is done or the file is removed or renamed.
func WatchRules(ctx context.Context, opts WatchRulesOptions) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "WatchRules").Str("path", opts.Path).Msg("Executing command")

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	src := opts.Source
	if src == nil {
		fsSrc, err := fswatch.NewFSNotifySource(opts.Path, opts.Debounce)
		if err != nil {
			return err
		}
		src = fsSrc
	}
	defer func() { _ = src.Close() }()

	_, _ = fmt.Fprintf(out, "Watching %s for changes...\n", opts.Path)

	show := func() error {
		r, err := list.ListRules(list.ListRulesOptions{Target: opts.Target})
		if err != nil {
			return err
		}
		return opts.Render(*r)
	}

	if err := show(); err != nil {
		log.Error().Err(err).Msg("Initial listing failed")
	}

	reason, err := fswatch.Run(ctx, src, func(e fswatch.Event) error {
		if opts.Clear {
			termenv.NewOutput(out).ClearScreen()
		}
		_, _ = fmt.Fprintf(out, "File changed at %s. Reloading modifications...\n", now().Format(time.Kitchen))
		return show()
	}, log)

	switch reason {
	case fswatch.StopRemoved:
		_, _ = fmt.Fprintf(out, "File %s was renamed or deleted. Stopping watch.\n", opts.Path)
	case fswatch.StopCancelled:
		_, _ = fmt.Fprintln(out, "Stopping watch.")
	}

	log.Info().Str("command", "WatchRules").Msg("Command finished")
	return err
}
