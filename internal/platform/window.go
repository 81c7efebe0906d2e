package platform

// NativeWindow is a handle to a native top-level window reached through a
// Backend. Two NativeWindow values refer to the same window when their IDs
// are equal.
type NativeWindow struct {
	backend Backend
	id      WindowID
}

// NewNativeWindow binds id to backend. It returns nil for the zero ID.
func NewNativeWindow(backend Backend, id WindowID) *NativeWindow {
	if backend == nil || id == 0 {
		return nil
	}
	return &NativeWindow{backend: backend, id: id}
}

// ID returns the native window identifier.
func (w *NativeWindow) ID() WindowID {
	return w.id
}

// Size returns the current window size, or a zero size if the window
// cannot be queried.
func (w *NativeWindow) Size() Size {
	r, err := w.backend.WindowGeometry(w.id)
	if err != nil {
		return Size{}
	}
	return Size{Width: r.Width, Height: r.Height}
}

// Screen returns the bounds of the display the window is on.
func (w *NativeWindow) Screen() Rect {
	d, err := w.backend.DisplayForWindow(w.id)
	if err != nil {
		return Rect{}
	}
	return d.Bounds
}

// SetPosition moves the window's top-left corner to pos.
func (w *NativeWindow) SetPosition(pos Point) error {
	return w.backend.Move(w.id, pos)
}

// Alive reports whether the native window still exists.
func (w *NativeWindow) Alive() bool {
	return w.backend.WindowExists(w.id)
}

// Backend returns the backend the window was opened through.
func (w *NativeWindow) Backend() Backend {
	return w.backend
}
