package scene

import (
	"sort"

	"github.com/1broseidon/chromekit/internal/chrome"
	"github.com/1broseidon/chromekit/internal/config"
	"github.com/1broseidon/chromekit/internal/platform"
	"github.com/rs/zerolog"
)

// virtualWindowID is the id given to the in-memory window of a scene file.
const virtualWindowID platform.WindowID = 1

// Layout is a scene built from a scene file together with the roles its
// items play.
type Layout struct {
	Scene     *Scene
	Window    *VirtualWindow
	TitleBar  chrome.ItemID
	Buttons   map[chrome.SystemButton]chrome.ItemID
	Overrides []chrome.ItemID
	Client    []chrome.ItemID

	attributes map[string]any
	buttonArea *platform.Rect
}

// Build creates the items of sc in a new scene bound to a virtual window.
// sc must already be validated.
func Build(sc *config.SceneFile, log zerolog.Logger) *Layout {
	s := New(log)
	screen := config.DefaultScreen
	if sc.Window.Screen != nil {
		screen = *sc.Window.Screen
	}
	win := &VirtualWindow{
		WindowID: virtualWindowID,
		Extent:   platform.Size{Width: sc.Window.Width, Height: sc.Window.Height},
		Display:  screen.Rect(),
	}
	s.SetWindow(win)

	l := &Layout{
		Scene:      s,
		Window:     win,
		Buttons:    make(map[chrome.SystemButton]chrome.ItemID),
		attributes: sc.Attributes,
	}
	if sc.TitleBar != nil {
		l.TitleBar = s.Add(itemFromSpec(*sc.TitleBar, config.TitleBarName))
	}
	for _, name := range sc.ButtonNames() {
		role, ok := chrome.ParseSystemButton(name)
		if !ok {
			continue
		}
		l.Buttons[role] = s.Add(itemFromSpec(sc.Buttons[name], name))
	}
	for i, spec := range sc.HitTestVisible {
		l.Overrides = append(l.Overrides, s.Add(itemFromSpec(spec, config.HitTestVisibleName(i))))
	}
	for i, spec := range sc.Client {
		l.Client = append(l.Client, s.Add(itemFromSpec(spec, config.ClientName(i))))
	}
	if sc.SystemButtonArea != nil {
		r := sc.SystemButtonArea.Rect()
		l.buttonArea = &r
	}
	return l
}

// Bind sets ctx up on the scene and registers the layout's title bar,
// buttons, exclusions and attributes.
func (l *Layout) Bind(ctx *chrome.Context) {
	ctx.Setup(l.Scene, l.Scene)
	if l.TitleBar != 0 {
		ctx.SetTitleBar(l.TitleBar)
	}
	for _, role := range chrome.SystemButtons() {
		if id, ok := l.Buttons[role]; ok {
			ctx.SetSystemButton(role, id)
		}
	}
	for _, id := range l.Overrides {
		ctx.SetHitTestVisible(id, true)
	}

	keys := make([]string, 0, len(l.attributes))
	for k := range l.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ctx.SetWindowAttribute(k, l.attributes[k])
	}

	if l.buttonArea != nil {
		ctx.SetSystemButtonArea(*l.buttonArea)
	}
}

func itemFromSpec(spec config.ItemSpec, fallbackName string) Item {
	return Item{
		Name:     spec.ItemName(fallbackName),
		Rect:     spec.Rect.Rect(),
		Hidden:   spec.Hidden,
		Disabled: spec.Disabled,
	}
}
