//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/chromekit/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh
// X11 connection to display. An empty display means $DISPLAY.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// NewDefaultBackend opens the backend for the running desktop session.
func NewDefaultBackend(display string) (Backend, func(), error) {
	b, err := NewLinuxBackendFromDisplay(display)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Disconnect, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ActiveWindow returns the currently focused window.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	wid, err := conn.ActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// WindowGeometry returns the window rectangle in root coordinates.
func (b *LinuxBackend) WindowGeometry(windowID WindowID) (Rect, error) {
	conn, err := b.connection()
	if err != nil {
		return Rect{}, err
	}
	geom, err := conn.WindowGeometry(xproto.Window(windowID))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: geom.X, Y: geom.Y, Width: geom.Width, Height: geom.Height}, nil
}

// WindowExists reports whether the X server still knows the window.
func (b *LinuxBackend) WindowExists(windowID WindowID) bool {
	conn, err := b.connection()
	if err != nil {
		return false
	}
	return conn.WindowExists(xproto.Window(windowID))
}

// DisplayForWindow returns the RandR monitor under the window's center.
func (b *LinuxBackend) DisplayForWindow(windowID WindowID) (Display, error) {
	conn, err := b.connection()
	if err != nil {
		return Display{}, err
	}

	mon, err := conn.MonitorForWindow(xproto.Window(windowID))
	if err != nil {
		screen, screenErr := conn.ScreenMonitor()
		if screenErr != nil {
			return Display{}, err
		}
		mon = &screen
	}
	return displayFromMonitor(*mon, conn.WorkArea(*mon)), nil
}

// Move repositions a window keeping its size.
func (b *LinuxBackend) Move(windowID WindowID, pos Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveWindow(xproto.Window(windowID), pos.X, pos.Y)
}

// WindowState maps _NET_WM_STATE atoms and the active window onto WindowState flags.
func (b *LinuxBackend) WindowState(windowID WindowID) (WindowState, error) {
	conn, err := b.connection()
	if err != nil {
		return StateNormal, err
	}

	win := xproto.Window(windowID)
	if _, err := conn.WindowStates(win); err != nil {
		return StateNormal, err
	}

	state := StateNormal
	if conn.IsHidden(win) {
		state |= StateMinimized
	}
	if conn.IsMaximized(win) {
		state |= StateMaximized
	}
	if conn.IsFullscreen(win) {
		state |= StateFullscreen
	}
	if active, err := conn.ActiveWindow(); err == nil && active == win {
		state |= StateActive
	}
	return state, nil
}

// SetWindowState requests the differences between the current and the
// wanted state from the window manager.
func (b *LinuxBackend) SetWindowState(windowID WindowID, state WindowState) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	current, err := b.WindowState(windowID)
	if err != nil {
		return err
	}

	win := xproto.Window(windowID)
	if current.Has(StateMaximized) != state.Has(StateMaximized) {
		if err := conn.SetMaximized(win, state.Has(StateMaximized)); err != nil {
			return fmt.Errorf("failed to change maximized state: %w", err)
		}
	}
	if current.Has(StateFullscreen) != state.Has(StateFullscreen) {
		if err := conn.SetFullscreen(win, state.Has(StateFullscreen)); err != nil {
			return fmt.Errorf("failed to change fullscreen state: %w", err)
		}
	}

	switch {
	case state.Has(StateMinimized) && !current.Has(StateMinimized):
		return conn.Iconify(win)
	case !state.Has(StateMinimized) && current.Has(StateMinimized):
		// There is no EWMH request to un-hide; activation maps the window.
		return conn.Activate(win)
	}
	return nil
}

// Raise activates the window and puts it on top of the stacking order.
func (b *LinuxBackend) Raise(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	win := xproto.Window(windowID)
	if err := conn.Activate(win); err != nil {
		return err
	}
	return conn.Raise(win)
}

// ShowWindowMenu asks the window manager to show the window menu.
func (b *LinuxBackend) ShowWindowMenu(windowID WindowID, pos Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ShowWindowMenu(xproto.Window(windowID), pos.X, pos.Y)
}

// StartMove hands an interactive move to the window manager.
func (b *LinuxBackend) StartMove(windowID WindowID, pos Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.StartMove(xproto.Window(windowID), pos.X, pos.Y)
}

// SetThemeVariant publishes the decoration theme variant.
func (b *LinuxBackend) SetThemeVariant(windowID WindowID, variant string) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SetThemeVariant(xproto.Window(windowID), variant)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func displayFromMonitor(m, usable x11.Monitor) Display {
	return Display{
		ID:     m.ID,
		Name:   m.Name,
		Bounds: Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
		Usable: Rect{X: usable.X, Y: usable.Y, Width: usable.Width, Height: usable.Height},
	}
}
