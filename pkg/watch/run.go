package watch

import (
	"context"

	"github.com/rs/zerolog"
)

// Handler is called for every Changed event.
type Handler func(Event) error

// StopReason tells why Run returned.
type StopReason int

const (
	// StopCancelled means the context was done.
	StopCancelled StopReason = iota + 1
	// StopRemoved means the watched path was removed or renamed.
	StopRemoved
	// StopClosed means the source closed its event channel.
	StopClosed
)

// Run feeds Changed events from src to handle until ctx is done, the path
// is removed, or src closes its channels. Handler and source errors are
// logged and do not stop the loop.
func Run(ctx context.Context, src Source, handle Handler, logger zerolog.Logger) (StopReason, error) {
	events := src.Events()
	errs := src.Errors()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Watch cancelled")
			return StopCancelled, nil

		case e, ok := <-events:
			if !ok {
				return StopClosed, nil
			}
			switch e.Kind {
			case Removed:
				logger.Info().Str("path", e.Path).Msg("Watched file was removed or renamed, stopping")
				return StopRemoved, nil
			case Changed:
				logger.Debug().Str("path", e.Path).Msg("Watched file changed")
				if err := handle(e); err != nil {
					logger.Error().Err(err).Str("path", e.Path).Msg("Failed to handle change")
				}
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}
