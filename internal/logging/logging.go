// Package logging builds the zerolog logger used by every chromekit command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/1broseidon/chromekit/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// ParseLevel maps a configured level name to a zerolog level. An empty name
// means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// New returns a logger for cfg. Output goes to cfg.File when set, otherwise
// to stderr, coloured only when stderr is a terminal. The returned closer
// releases the log file and is never nil.
func New(cfg config.LoggingConfig, stderr *os.File) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	var (
		out    io.Writer
		closer = noop
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}
		closer = f.Close
	} else {
		out = consoleWriter(stderr)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: time.Kitchen,
		NoColor:    f == nil || !term.IsTerminal(int(f.Fd())),
	}
}

func noop() error { return nil }
