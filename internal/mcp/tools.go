package mcp

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/1broseidon/chromekit/internal/render"
	"github.com/1broseidon/chromekit/internal/scene"
)

func (s *Server) handleHitTest(_ context.Context, _ *mcpsdk.CallToolRequest, args HitTestInput) (*mcpsdk.CallToolResult, HitTestOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.ctx.Classify(platform.Point{X: args.X, Y: args.Y})
	out := HitTestOutput{
		Region:    r.String(),
		Draggable: r.Kind == chrome.RegionDraggable,
	}
	if r.Kind == chrome.RegionButton {
		out.Button = r.Button.String()
	}
	s.log.Debug().Int("x", args.X).Int("y", args.Y).Str("region", out.Region).Msg("hit_test")
	return nil, out, nil
}

func (s *Server) handleListItems(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListItemsInput) (*mcpsdk.CallToolResult, ListItemsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.layout.Scene.Items()
	items := make([]ItemInfo, 0, len(ids))
	for _, id := range ids {
		it, ok := s.layout.Scene.Get(id)
		if !ok {
			continue
		}
		items = append(items, s.itemInfo(id, it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return nil, ListItemsOutput{Items: items}, nil
}

func (s *Server) handleSetItemState(_ context.Context, _ *mcpsdk.CallToolRequest, args SetItemStateInput) (*mcpsdk.CallToolResult, ItemOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.resolve(args.Name)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	s.layout.Scene.Update(id, func(it *scene.Item) {
		if args.Hidden != nil {
			it.Hidden = *args.Hidden
		}
		if args.Disabled != nil {
			it.Disabled = *args.Disabled
		}
	})
	it, _ := s.layout.Scene.Get(id)
	return nil, ItemOutput{Item: s.itemInfo(id, it)}, nil
}

func (s *Server) handleMoveItem(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveItemInput) (*mcpsdk.CallToolResult, ItemOutput, error) {
	if args.Width < 0 || args.Height < 0 {
		return nil, ItemOutput{}, fmt.Errorf("width and height must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.resolve(args.Name)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	s.layout.Scene.Move(id, platform.Rect{X: args.X, Y: args.Y, Width: args.Width, Height: args.Height})
	it, _ := s.layout.Scene.Get(id)
	return nil, ItemOutput{Item: s.itemInfo(id, it)}, nil
}

func (s *Server) handleRemoveItem(_ context.Context, _ *mcpsdk.CallToolRequest, args RemoveItemInput) (*mcpsdk.CallToolResult, ItemOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.resolve(args.Name)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	it, _ := s.layout.Scene.Get(id)
	info := s.itemInfo(id, it)
	s.layout.Scene.Remove(id)
	s.log.Info().Str("item", args.Name).Str("role", info.Role).Msg("item removed")
	return nil, ItemOutput{Item: info, Removed: true}, nil
}

func (s *Server) handleRenderMap(_ context.Context, _ *mcpsdk.CallToolRequest, args RenderMapInput) (*mcpsdk.CallToolResult, RenderMapOutput, error) {
	if args.Cell < 0 {
		return nil, RenderMapOutput{}, fmt.Errorf("cell must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid := render.Map(s.ctx, s.layout.Window.Size(), render.Options{Cell: args.Cell})
	return nil, RenderMapOutput{
		Map:    strings.TrimRight(grid, "\n"),
		Legend: render.Legend(false),
	}, nil
}

func (s *Server) handleSetAttribute(_ context.Context, _ *mcpsdk.CallToolRequest, args SetAttributeInput) (*mcpsdk.CallToolResult, SetAttributeOutput, error) {
	key := strings.TrimSpace(args.Key)
	if key == "" {
		return nil, SetAttributeOutput{}, fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.ctx.WindowAttribute(key)
	s.ctx.SetWindowAttribute(key, args.Value)
	return nil, SetAttributeOutput{
		Key:     key,
		Value:   s.ctx.WindowAttribute(key),
		Changed: !reflect.DeepEqual(old, args.Value),
	}, nil
}

func (s *Server) handleDefaultColors(_ context.Context, _ *mcpsdk.CallToolRequest, _ DefaultColorsInput) (*mcpsdk.CallToolResult, DefaultColorsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := chrome.DefaultColors{Colors: chrome.DefaultPalette()}
	s.ctx.Invoke(h)
	out := make(map[string]string, len(h.Colors))
	for name, c := range h.Colors {
		out[name] = render.Hex(c)
	}
	return nil, DefaultColorsOutput{Colors: out}, nil
}

// resolve maps an item name to its live handle. Callers hold s.mu.
func (s *Server) resolve(name string) (chrome.ItemID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	id, ok := s.layout.Scene.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("no item named %q", name)
	}
	return id, nil
}

func (s *Server) itemInfo(id chrome.ItemID, it scene.Item) ItemInfo {
	role := s.roles[id]
	if role == "" {
		role = "client"
	}
	return ItemInfo{
		Name:     it.Name,
		Role:     role,
		X:        it.Rect.X,
		Y:        it.Rect.Y,
		Width:    it.Rect.Width,
		Height:   it.Rect.Height,
		Hidden:   it.Hidden,
		Disabled: it.Disabled,
	}
}
