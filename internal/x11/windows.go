package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const (
	stateHidden     = "_NET_WM_STATE_HIDDEN"
	stateMaxHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateFullscreen = "_NET_WM_STATE_FULLSCREEN"

	// EWMH _NET_WM_STATE actions.
	stateRemove = 0
	stateAdd    = 1

	// ICCCM WM_CHANGE_STATE value.
	iconicState = 3

	sourceIndication = 2 // pager/direct action

	moveresizeMove = 8 // _NET_WM_MOVERESIZE_MOVE
	primaryButton  = 1
)

// Geometry is a window rectangle in root coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WindowGeometry returns the position (relative to the root window) and size
// of a window.
func (c *Connection) WindowGeometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to translate coordinates of window %d: %w", windowID, err)
	}

	return Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// WindowExists reports whether the server still knows the window.
func (c *Connection) WindowExists(windowID xproto.Window) bool {
	if windowID == 0 {
		return false
	}
	_, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	return err == nil
}

// MoveWindow moves a window keeping its current size
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	geom, err := c.WindowGeometry(windowID)
	if err != nil {
		return err
	}

	// Use EWMH MoveResize for better WM compatibility
	err = ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, geom.Width, geom.Height)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).Move(x, y)
	}
	return nil
}

// WindowStates returns the _NET_WM_STATE atoms set on a window.
func (c *Connection) WindowStates(windowID xproto.Window) ([]string, error) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return nil, fmt.Errorf("failed to get state of window %d: %w", windowID, err)
	}
	return states, nil
}

// IsHidden reports whether the window is iconified.
func (c *Connection) IsHidden(windowID xproto.Window) bool {
	return c.hasState(windowID, stateHidden)
}

// IsMaximized reports whether the window is maximized in both directions.
func (c *Connection) IsMaximized(windowID xproto.Window) bool {
	return c.hasState(windowID, stateMaxHorz) && c.hasState(windowID, stateMaxVert)
}

// IsFullscreen reports whether the window is fullscreen.
func (c *Connection) IsFullscreen(windowID xproto.Window) bool {
	return c.hasState(windowID, stateFullscreen)
}

func (c *Connection) hasState(windowID xproto.Window, atom string) bool {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == atom {
			return true
		}
	}
	return false
}

// SetMaximized adds or removes both maximized states.
func (c *Connection) SetMaximized(windowID xproto.Window, maximized bool) error {
	action := stateRemove
	if maximized {
		action = stateAdd
	}
	if err := ewmh.WmStateReq(c.XUtil, windowID, action, stateMaxHorz); err != nil {
		return err
	}
	return ewmh.WmStateReq(c.XUtil, windowID, action, stateMaxVert)
}

// SetFullscreen adds or removes the fullscreen state.
func (c *Connection) SetFullscreen(windowID xproto.Window, fullscreen bool) error {
	action := stateRemove
	if fullscreen {
		action = stateAdd
	}
	return ewmh.WmStateReq(c.XUtil, windowID, action, stateFullscreen)
}

// Iconify minimizes a window via WM_CHANGE_STATE.
func (c *Connection) Iconify(windowID xproto.Window) error {
	return c.sendRootMessage(windowID, "WM_CHANGE_STATE", [5]uint32{iconicState})
}

// Activate de-iconifies, raises and focuses a window using _NET_ACTIVE_WINDOW.
func (c *Connection) Activate(windowID xproto.Window) error {
	return c.sendRootMessage(windowID, "_NET_ACTIVE_WINDOW", [5]uint32{sourceIndication})
}

// Raise restacks the window above its siblings.
func (c *Connection) Raise(windowID xproto.Window) error {
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	).Check()
}

// ShowWindowMenu asks the window manager to pop up the window menu at the
// given window-relative position using _GTK_SHOW_WINDOW_MENU.
func (c *Connection) ShowWindowMenu(windowID xproto.Window, x, y int) error {
	rootX, rootY, err := c.toRoot(windowID, x, y)
	if err != nil {
		return err
	}
	// The pointer grab held by the toolkit must be released before the WM can
	// grab it for the menu.
	xproto.UngrabPointer(c.XUtil.Conn(), xproto.TimeCurrentTime)
	return c.sendRootMessage(windowID, "_GTK_SHOW_WINDOW_MENU", [5]uint32{
		0, // device id, core pointer
		uint32(rootX),
		uint32(rootY),
	})
}

// StartMove starts a WM-driven interactive move as if the title bar at the
// given window-relative position had been pressed.
func (c *Connection) StartMove(windowID xproto.Window, x, y int) error {
	rootX, rootY, err := c.toRoot(windowID, x, y)
	if err != nil {
		return err
	}
	xproto.UngrabPointer(c.XUtil.Conn(), xproto.TimeCurrentTime)
	return c.sendRootMessage(windowID, "_NET_WM_MOVERESIZE", [5]uint32{
		uint32(rootX),
		uint32(rootY),
		moveresizeMove,
		primaryButton,
		sourceIndication,
	})
}

// SetThemeVariant sets _GTK_THEME_VARIANT, which compositors and GTK-aware
// window managers use to pick light or dark server-side decorations.
func (c *Connection) SetThemeVariant(windowID xproto.Window, variant string) error {
	if err := xprop.ChangeProp(c.XUtil, windowID, 8, "_GTK_THEME_VARIANT", "UTF8_STRING", []byte(variant)); err != nil {
		return fmt.Errorf("failed to set _GTK_THEME_VARIANT on window %d: %w", windowID, err)
	}
	return nil
}

func (c *Connection) toRoot(windowID xproto.Window, x, y int) (int, int, error) {
	if err := checkCoord(x, y); err != nil {
		return 0, 0, err
	}
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		int16(x), int16(y),
	).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate coordinates of window %d: %w", windowID, err)
	}
	return int(translate.DstX), int(translate.DstY), nil
}

// ActiveWindow returns the window named by _NET_ACTIVE_WINDOW.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// checkCoord rejects positions that do not fit the protocol's INT16 fields.
func checkCoord(x, y int) error {
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return fmt.Errorf("position %d,%d is outside the X11 coordinate range", x, y)
	}
	return nil
}
