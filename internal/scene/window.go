package scene

import "github.com/1broseidon/chromekit/internal/platform"

// VirtualWindow is a window that only exists in memory, used when a scene is
// evaluated without a display server.
type VirtualWindow struct {
	WindowID platform.WindowID
	Pos      platform.Point
	Extent   platform.Size
	Display  platform.Rect
	Closed   bool
}

// ID implements chrome.Window.
func (w *VirtualWindow) ID() platform.WindowID { return w.WindowID }

// Size implements chrome.Window.
func (w *VirtualWindow) Size() platform.Size { return w.Extent }

// Screen implements chrome.Window.
func (w *VirtualWindow) Screen() platform.Rect { return w.Display }

// SetPosition implements chrome.Window.
func (w *VirtualWindow) SetPosition(p platform.Point) error {
	w.Pos = p
	return nil
}

// Alive implements chrome.Window.
func (w *VirtualWindow) Alive() bool { return !w.Closed }
