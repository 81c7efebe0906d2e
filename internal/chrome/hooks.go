package chrome

import (
	"image/color"

	"github.com/1broseidon/chromekit/internal/platform"
)

// HookID numbers an extension point. Built-in ids are below UserHook;
// platforms number their own hooks from UserHook upwards.
type HookID int

const (
	CentralizeHook HookID = iota + 1
	RaiseWindowHook
	DefaultColorsHook
	ShowSystemMenuHook
	SystemButtonAreaChangedHook
	AttributeChangedHook

	// UserHook is the first id available to platform-specific hooks.
	UserHook HookID = 0x100
)

// Hook is a request dispatched to a Platform. Each hook type carries its own
// payload.
type Hook interface {
	HookID() HookID
}

// Centralize moves the window to the middle of its current screen.
type Centralize struct{}

// RaiseWindow restores a minimized window and brings it to the top.
type RaiseWindow struct{}

// DefaultColors asks for the built-in palette. Colors is cleared and
// refilled by the handler.
type DefaultColors struct {
	Colors map[string]color.RGBA
}

// ShowSystemMenu asks for the native system menu at Pos, in window
// coordinates.
type ShowSystemMenu struct {
	Pos platform.Point
}

// SystemButtonAreaChanged reports that the rectangle reserved for native
// system buttons was updated. The new value is Context.SystemButtonArea.
type SystemButtonAreaChanged struct{}

// AttributeChanged reports a window attribute update.
type AttributeChanged struct {
	Key string
	New any
	Old any
}

func (Centralize) HookID() HookID              { return CentralizeHook }
func (RaiseWindow) HookID() HookID             { return RaiseWindowHook }
func (DefaultColors) HookID() HookID           { return DefaultColorsHook }
func (ShowSystemMenu) HookID() HookID          { return ShowSystemMenuHook }
func (SystemButtonAreaChanged) HookID() HookID { return SystemButtonAreaChangedHook }
func (AttributeChanged) HookID() HookID        { return AttributeChangedHook }

// Platform supplies the behaviour that differs between window systems.
// Implementations usually embed BasePlatform, handle the hooks they care
// about and pass everything else on to BasePlatform.Dispatch.
type Platform interface {
	// Key names the platform, e.g. "x11".
	Key() string
	// Dispatch runs h. Unrecognized hooks must be ignored.
	Dispatch(c *Context, h Hook)
	// HandleChanged is called once per attach, detach or replacement of the
	// native window. prev is the window that was bound before; destroyed
	// reports whether prev no longer exists natively.
	HandleChanged(c *Context, prev Window, destroyed bool)
}

// Palette token names filled in by DefaultColors.
const (
	ColorActiveLight   = "activeLight"
	ColorActiveDark    = "activeDark"
	ColorInactiveLight = "inactiveLight"
	ColorInactiveDark  = "inactiveDark"
)

// DefaultPalette returns a fresh copy of the built-in colour tokens.
func DefaultPalette() map[string]color.RGBA {
	return map[string]color.RGBA{
		ColorActiveLight:   {R: 210, G: 233, B: 189, A: 226},
		ColorActiveDark:    {R: 177, G: 205, B: 190, A: 240},
		ColorInactiveLight: {R: 193, G: 195, B: 211, A: 203},
		ColorInactiveDark:  {R: 240, G: 240, B: 250, A: 255},
	}
}

// BasePlatform implements the platform-independent hooks. The zero value is
// ready to use.
type BasePlatform struct{}

var _ Platform = BasePlatform{}

// Key returns an empty name.
func (BasePlatform) Key() string { return "" }

// Dispatch handles Centralize, RaiseWindow and DefaultColors. The other
// built-in hooks have no platform-independent behaviour.
func (BasePlatform) Dispatch(c *Context, h Hook) {
	switch h := h.(type) {
	case Centralize:
		c.centralize()
	case RaiseWindow:
		c.raiseWindow()
	case DefaultColors:
		fillDefaultColors(h.Colors)
	}
}

// HandleChanged does nothing.
func (BasePlatform) HandleChanged(*Context, Window, bool) {}

func fillDefaultColors(m map[string]color.RGBA) {
	if m == nil {
		return
	}
	clear(m)
	for k, v := range DefaultPalette() {
		m[k] = v
	}
}

func (c *Context) centralize() {
	win := c.window
	if win == nil {
		return
	}
	screen := win.Screen()
	size := win.Size()
	pos := platform.Point{
		X: (screen.Width-size.Width)/2 + screen.X,
		Y: (screen.Height-size.Height)/2 + screen.Y,
	}
	if err := win.SetPosition(pos); err != nil {
		c.log.Warn().Err(err).Uint32("window", uint32(win.ID())).Msg("centralize failed")
	}
}

func (c *Context) raiseWindow() {
	if c.delegate == nil {
		return
	}
	state := c.delegate.WindowState(c.host)
	if state.Has(platform.StateMinimized) {
		c.delegate.SetWindowState(c.host, state&^platform.StateMinimized)
	}
	c.delegate.BringWindowToTop(c.host)
}
