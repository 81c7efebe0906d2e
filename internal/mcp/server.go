// Package mcp serves hit-testing of a scene over the Model Context Protocol.
package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/scene"
)

const (
	ServerName    = "chromekit"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for one scene.
type Server struct {
	mcpServer *mcpsdk.Server
	log       zerolog.Logger

	// mu serializes tool calls; chrome.Context is not safe for concurrent use.
	mu     sync.Mutex
	ctx    *chrome.Context
	layout *scene.Layout
	roles  map[chrome.ItemID]string
}

// NewServer binds a fresh context to layout and registers the tools.
func NewServer(layout *scene.Layout, p chrome.Platform, log zerolog.Logger) *Server {
	log = log.With().Str("component", "mcp").Logger()
	ctx := chrome.New(p, chrome.WithLogger(log))
	layout.Bind(ctx)

	s := &Server{
		log:    log,
		ctx:    ctx,
		layout: layout,
		roles:  rolesOf(layout),
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Int("items", len(s.layout.Scene.Items())).Msg("serving scene on stdio")
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Context returns the chrome context the tools operate on.
func (s *Server) Context() *chrome.Context { return s.ctx }

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hit_test",
		Description: "Classify a window position: a system button (button:<role>), the draggable title bar area, an excluded title bar item, client content, or outside the window.",
	}, s.handleHitTest)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_items",
		Description: "List the scene's items with their role (title_bar, a system button role, hit_test_visible or client), geometry and visibility.",
	}, s.handleListItems)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_item_state",
		Description: "Hide, show, disable or enable an item. Hidden or disabled items take no part in hit-testing.",
	}, s.handleSetItemState)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_item",
		Description: "Replace an item's rectangle, in window coordinates.",
	}, s.handleMoveItem)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "remove_item",
		Description: "Remove an item from the scene. Registrations that referred to it are treated as absent from then on.",
	}, s.handleRemoveItem)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "render_map",
		Description: "Render the classification of the whole window as a character grid.",
	}, s.handleRenderMap)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_attribute",
		Description: "Set a window attribute. Platforms react to known keys such as theme-variant (light or dark).",
	}, s.handleSetAttribute)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "default_colors",
		Description: "Return the built-in title bar palette as #rrggbbaa values.",
	}, s.handleDefaultColors)
}

func rolesOf(l *scene.Layout) map[chrome.ItemID]string {
	roles := make(map[chrome.ItemID]string)
	for _, id := range l.Client {
		roles[id] = "client"
	}
	for _, id := range l.Overrides {
		roles[id] = "hit_test_visible"
	}
	for role, id := range l.Buttons {
		roles[id] = role.String()
	}
	if l.TitleBar != 0 {
		roles[l.TitleBar] = "title_bar"
	}
	return roles
}
