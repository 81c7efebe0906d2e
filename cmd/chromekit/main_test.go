package main

import (
	"testing"

	"github.com/1broseidon/chromekit/internal/platform"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12, 34")
	if err != nil {
		t.Fatalf("parsePoint: %v", err)
	}
	if p != (platform.Point{X: 12, Y: 34}) {
		t.Fatalf("unexpected point %v", p)
	}
	for _, bad := range []string{"", "12", "a,1", "1,b"} {
		if _, err := parsePoint(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolveWindow_Explicit(t *testing.T) {
	for raw, want := range map[string]platform.WindowID{"42": 42, "0x2a": 42} {
		got, err := resolveWindow(nil, raw)
		if err != nil || got != want {
			t.Fatalf("resolveWindow(%q) = %d, %v", raw, got, err)
		}
	}
	if _, err := resolveWindow(nil, "0"); err == nil {
		t.Fatalf("zero id must be rejected")
	}
	if _, err := resolveWindow(nil, ""); err == nil {
		t.Fatalf("nil backend cannot supply the active window")
	}
}
