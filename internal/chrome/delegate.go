// Package chrome decides, for one window at a time, which parts of a custom
// drawn title bar behave as native chrome (drag area, system buttons) and
// which belong to the client. It tracks the native window bound to the host
// object and routes platform specific behaviour through hooks.
//
// A Context is driven from the goroutine that owns the host window and does
// no locking of its own.
package chrome

import "github.com/1broseidon/chromekit/internal/platform"

// ItemID is a non-owning handle to a toolkit item (a widget, a quick item,
// a scene node). The zero value means "no item". Handles are issued by the
// collaborator that owns the items; a handle whose item is gone must be
// reported as absent by the Delegate rather than reused.
type ItemID uint64

// Window is the native window currently bound to a host.
type Window interface {
	ID() platform.WindowID
	Size() platform.Size
	// Screen returns the geometry of the screen the window is on.
	Screen() platform.Rect
	SetPosition(pos platform.Point) error
	// Alive reports false once the native window has been destroyed.
	Alive() bool
}

// Delegate gives the context access to the host toolkit. The context never
// touches toolkit objects directly.
type Delegate interface {
	IsVisible(item ItemID) bool
	IsEnabled(item ItemID) bool
	// MapGeometryToScene returns the item's rectangle in window coordinates.
	// ok is false when the item no longer exists.
	MapGeometryToScene(item ItemID) (r platform.Rect, ok bool)

	// Window returns the native window of host, or nil if it has none.
	Window(host any) Window
	WindowState(host any) platform.WindowState
	SetWindowState(host any, state platform.WindowState)
	BringWindowToTop(host any)
}

func sameWindow(a, b Window) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
