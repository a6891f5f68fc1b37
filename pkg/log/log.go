package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON to stderr in CI and Kubernetes, and a
// human friendly console format otherwise. verbosity follows logr
// conventions: 0 is info, every step above lowers the level by one.
func New(verbosity int) *zerolog.Logger {
	return NewWithWriter(output(), verbosity)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, verbosity int) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl := level(verbosity)
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &logger
}

func output() io.Writer {
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" || os.Getenv("CI") != "" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
}

// level maps a logr verbosity onto zerolog levels. zerologr logs V(n) at
// zerolog level 1-n.
func level(verbosity int) zerolog.Level {
	if verbosity <= 0 {
		return zerolog.InfoLevel
	}
	return zerolog.Level(1 - verbosity)
}
