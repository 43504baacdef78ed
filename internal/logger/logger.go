package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Options configures logger construction.
type Options struct {
	Level  string
	Format string // "console" or "json"; empty picks console on a terminal
	Output io.Writer
}

type implLogger struct {
	logger zerolog.Logger
}

// New creates a new Logger instance writing to stderr
func New(level string) Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a Logger from explicit options.
func NewWithOptions(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "json"
		if isTerminal(out) {
			format = "console"
		}
	}

	w := out
	if format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    !isTerminal(out),
		}
	}

	return &implLogger{
		logger: zerolog.New(w).Level(parseLevel(opts.Level)).With().Timestamp().Logger(),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &implLogger{logger: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *implLogger) shouldLog(level zerolog.Level) bool {
	return level >= l.logger.GetLevel()
}

// Debug skips argument formatting entirely below debug level.
func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if !l.shouldLog(zerolog.DebugLevel) {
		return
	}
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}

func (l *implLogger) With(key string, value interface{}) Logger {
	return &implLogger{logger: l.logger.With().Interface(key, value).Logger()}
}
