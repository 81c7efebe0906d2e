package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/chromekit/internal/config"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chromekit.log")
	log, closeLog, err := New(config.LoggingConfig{Level: "warn", File: path}, os.Stderr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info().Msg("dropped")
	log.Warn().Str("window", "0x1").Msg("kept")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "window=0x1") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNew_RejectsBadLevel(t *testing.T) {
	_, closeLog, err := New(config.LoggingConfig{Level: "loud"}, os.Stderr)
	if err == nil {
		t.Fatalf("expected error")
	}
	if closeLog == nil {
		t.Fatalf("closer must never be nil")
	}
}
