package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/config"
	"github.com/1broseidon/chromekit/internal/scene"
)

const testScene = `
window: {width: 800, height: 600}
title_bar: {name: title, rect: {x: 0, y: 0, width: 800, height: 32}}
buttons:
  close: {rect: {x: 760, y: 4, width: 32, height: 24}}
  minimize: {rect: {x: 690, y: 4, width: 32, height: 24}}
hit_test_visible:
  - {name: search, rect: {x: 300, y: 4, width: 200, height: 24}}
client:
  - {rect: {x: 0, y: 32, width: 800, height: 568}}
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	sc, err := config.ParseScene([]byte(testScene))
	if err != nil {
		t.Fatalf("parse scene: %v", err)
	}
	return NewServer(scene.Build(sc, zerolog.Nop()), nil, zerolog.Nop())
}

func hitTest(t *testing.T, s *Server, x, y int) HitTestOutput {
	t.Helper()
	_, out, err := s.handleHitTest(context.Background(), nil, HitTestInput{X: x, Y: y})
	if err != nil {
		t.Fatalf("hit_test: %v", err)
	}
	return out
}

func TestHitTest(t *testing.T) {
	s := newTestServer(t)

	if out := hitTest(t, s, 770, 10); out.Region != "button:close" || out.Button != "close" {
		t.Fatalf("unexpected %+v", out)
	}
	if out := hitTest(t, s, 100, 10); !out.Draggable {
		t.Fatalf("expected draggable, got %+v", out)
	}
	if out := hitTest(t, s, 400, 10); out.Region != "excluded" {
		t.Fatalf("expected excluded, got %+v", out)
	}
	if out := hitTest(t, s, 400, 300); out.Region != "client" {
		t.Fatalf("expected client, got %+v", out)
	}
}

func TestListItems(t *testing.T) {
	s := newTestServer(t)
	_, out, err := s.handleListItems(context.Background(), nil, ListItemsInput{})
	if err != nil {
		t.Fatalf("list_items: %v", err)
	}
	roles := map[string]string{}
	for _, it := range out.Items {
		roles[it.Name] = it.Role
	}
	want := map[string]string{
		"title":    "title_bar",
		"close":    "close",
		"minimize": "minimize",
		"search":   "hit_test_visible",
		"client-0": "client",
	}
	for name, role := range want {
		if roles[name] != role {
			t.Fatalf("item %q: role %q, want %q (all: %v)", name, roles[name], role, roles)
		}
	}
}

func TestSetItemState_HidesButton(t *testing.T) {
	s := newTestServer(t)
	hidden := true
	_, out, err := s.handleSetItemState(context.Background(), nil, SetItemStateInput{Name: "close", Hidden: &hidden})
	if err != nil {
		t.Fatalf("set_item_state: %v", err)
	}
	if !out.Item.Hidden {
		t.Fatalf("expected hidden item, got %+v", out.Item)
	}
	if got := hitTest(t, s, 770, 10); !got.Draggable {
		t.Fatalf("hidden button should leave a drag area, got %+v", got)
	}
}

func TestMoveAndRemoveItem(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleMoveItem(ctx, nil, MoveItemInput{Name: "search", X: 0, Y: 0, Width: 10, Height: 10}); err != nil {
		t.Fatalf("move_item: %v", err)
	}
	if got := hitTest(t, s, 400, 10); !got.Draggable {
		t.Fatalf("moved override should free its old area, got %+v", got)
	}

	if _, out, err := s.handleRemoveItem(ctx, nil, RemoveItemInput{Name: "minimize"}); err != nil || !out.Removed {
		t.Fatalf("remove_item: %+v %v", out, err)
	}
	if got := hitTest(t, s, 700, 10); !got.Draggable {
		t.Fatalf("removed button must not be hit, got %+v", got)
	}
	if _, _, err := s.handleRemoveItem(ctx, nil, RemoveItemInput{Name: "minimize"}); err == nil {
		t.Fatalf("expected error for removed item")
	}
	if _, _, err := s.handleMoveItem(ctx, nil, MoveItemInput{Name: "close", Width: -1}); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestRenderMap(t *testing.T) {
	s := newTestServer(t)
	_, out, err := s.handleRenderMap(context.Background(), nil, RenderMapInput{Cell: 20})
	if err != nil {
		t.Fatalf("render_map: %v", err)
	}
	lines := strings.Split(out.Map, "\n")
	if len(lines) != 15 || len(lines[0]) != 40 {
		t.Fatalf("unexpected grid size %dx%d:\n%s", len(lines[0]), len(lines), out.Map)
	}
	if !strings.HasSuffix(lines[0], "x") {
		t.Fatalf("close button missing from first row: %q", lines[0])
	}
}

func TestSetAttribute(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleSetAttribute(ctx, nil, SetAttributeInput{Key: "theme-variant", Value: "dark"})
	if err != nil || !out.Changed || out.Value != "dark" {
		t.Fatalf("first set: %+v %v", out, err)
	}
	_, out, _ = s.handleSetAttribute(ctx, nil, SetAttributeInput{Key: "theme-variant", Value: "dark"})
	if out.Changed {
		t.Fatalf("same value must not report a change")
	}
	_, out, _ = s.handleSetAttribute(ctx, nil, SetAttributeInput{Key: "theme-variant"})
	if !out.Changed || s.Context().WindowAttribute("theme-variant") != nil {
		t.Fatalf("clearing failed: %+v", out)
	}
	if _, _, err := s.handleSetAttribute(ctx, nil, SetAttributeInput{Key: " "}); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestDefaultColors(t *testing.T) {
	s := newTestServer(t)
	_, out, err := s.handleDefaultColors(context.Background(), nil, DefaultColorsInput{})
	if err != nil {
		t.Fatalf("default_colors: %v", err)
	}
	if out.Colors[chrome.ColorInactiveDark] != "#f0f0faff" {
		t.Fatalf("unexpected palette %v", out.Colors)
	}
}
