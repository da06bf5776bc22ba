package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Oliyy/karabiner-cli/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levels maps -v counts to zerolog levels; anything above the last entry
// logs at trace.
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// LevelFor returns the global level for a verbosity count.
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

// SetupLogger configures the global logger for verbosity. Records go to
// stderr in console form and are appended as JSON to LogFilePath. When the
// log file cannot be opened only stderr is used.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	writers := []io.Writer{consoleWriter(os.Stderr)}

	logFile := LogFilePath()
	file, err := openLogFile(logFile)
	if err == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// consoleWriter renders records for a human. Colour is dropped when f is
// not a terminal or NO_COLOR is set.
func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	noColor := os.Getenv("NO_COLOR") != "" ||
		(!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()))
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the path to the log file under the XDG state
// directory, e.g. ~/.local/state/karabiner-cli/karabiner-cli.log
func LogFilePath() string {
	return paths.LogFile()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
