package chrome

import "github.com/1broseidon/chromekit/internal/platform"

// IsInSystemButtons reports the system button under pos. Roles are scanned
// from WindowIcon to Close, so overlapping buttons resolve to the lowest
// role. Hidden, disabled and vanished items never match. When nothing
// matches it returns Unknown and false.
func (c *Context) IsInSystemButtons(pos platform.Point) (SystemButton, bool) {
	if c.delegate == nil {
		return Unknown, false
	}
	for role := WindowIcon; role <= Close; role++ {
		if c.itemContains(c.systemButtons[role], pos) {
			return role, true
		}
	}
	return Unknown, false
}

// IsInTitleBarDraggableArea reports whether pos is on the title bar and not
// covered by a system button or a hit-test visible item. A hidden or
// disabled title bar, or one lying entirely outside the window, counts as
// no title bar at all.
func (c *Context) IsInTitleBarDraggableArea(pos platform.Point) bool {
	if c.titleBar == 0 || c.delegate == nil {
		return false
	}
	if !c.delegate.IsVisible(c.titleBar) || !c.delegate.IsEnabled(c.titleBar) {
		return false
	}
	titleBarRect, ok := c.delegate.MapGeometryToScene(c.titleBar)
	if !ok || !titleBarRect.Intersects(c.windowRect()) {
		return false
	}
	if !titleBarRect.Contains(pos) {
		return false
	}

	for role := WindowIcon; role <= Close; role++ {
		if c.itemContains(c.systemButtons[role], pos) {
			return false
		}
	}
	for item := range c.hitTestVisible {
		if c.itemContains(item, pos) {
			return false
		}
	}
	return true
}

// itemContains reports whether item is live, visible, enabled and covers pos.
func (c *Context) itemContains(item ItemID, pos platform.Point) bool {
	if item == 0 || !c.delegate.IsVisible(item) || !c.delegate.IsEnabled(item) {
		return false
	}
	r, ok := c.delegate.MapGeometryToScene(item)
	return ok && r.Contains(pos)
}

// windowRect is the window in its own coordinates. It is empty while no
// native window is attached.
func (c *Context) windowRect() platform.Rect {
	if c.window == nil {
		return platform.Rect{}
	}
	size := c.window.Size()
	return platform.Rect{Width: size.Width, Height: size.Height}
}
