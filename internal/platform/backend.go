package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Point is a position in scene or screen coordinates.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Rect describes a rectangular region. Rectangles are half-open: a point on
// the right or bottom edge is outside.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return max(r.X, o.X) < min(r.X+r.Width, o.X+o.Width) &&
		max(r.Y, o.Y) < min(r.Y+r.Height, o.Y+o.Height)
}

// TopLeft returns the origin of r.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// WindowState is a set of window presentation flags.
type WindowState uint8

const (
	StateMinimized WindowState = 1 << iota
	StateMaximized
	StateFullscreen
	StateActive

	// StateNormal is the empty flag set.
	StateNormal WindowState = 0
)

// Has reports whether every flag in f is set.
func (s WindowState) Has(f WindowState) bool {
	return s&f == f && f != 0
}

// String returns a readable flag list.
func (s WindowState) String() string {
	if s == StateNormal {
		return "normal"
	}
	out := ""
	add := func(name string) {
		if out != "" {
			out += "|"
		}
		out += name
	}
	if s.Has(StateMinimized) {
		add("minimized")
	}
	if s.Has(StateMaximized) {
		add("maximized")
	}
	if s.Has(StateFullscreen) {
		add("fullscreen")
	}
	if s.Has(StateActive) {
		add("active")
	}
	return out
}

// Display describes a physical display and its usable work area.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
	Usable Rect
}

// Backend abstracts native window operations across platforms.
type Backend interface {
	// WindowGeometry returns the window's outer rectangle in screen coordinates.
	WindowGeometry(windowID WindowID) (Rect, error)
	// WindowExists reports whether the native window is still alive.
	WindowExists(windowID WindowID) bool
	// DisplayForWindow returns the display containing the window's center.
	DisplayForWindow(windowID WindowID) (Display, error)
	Move(windowID WindowID, pos Point) error
	WindowState(windowID WindowID) (WindowState, error)
	SetWindowState(windowID WindowID, state WindowState) error
	Raise(windowID WindowID) error
	// ShowWindowMenu asks the window manager for the window's system menu at
	// pos, given in window coordinates.
	ShowWindowMenu(windowID WindowID, pos Point) error
	// StartMove hands an interactive move to the window manager. pos is in
	// window coordinates.
	StartMove(windowID WindowID, pos Point) error
	// SetThemeVariant publishes a light/dark preference for native decorations.
	SetThemeVariant(windowID WindowID, variant string) error
}
