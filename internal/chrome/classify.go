package chrome

import "github.com/1broseidon/chromekit/internal/platform"

// RegionKind is the coarse classification of a window position.
type RegionKind int

const (
	// RegionClient is ordinary content owned by the application.
	RegionClient RegionKind = iota
	// RegionButton is a registered system button.
	RegionButton
	// RegionDraggable moves the window.
	RegionDraggable
	// RegionExcluded is a hit-test visible item that receives input even
	// though it lies on the title bar.
	RegionExcluded
	// RegionOutside is outside the attached window.
	RegionOutside
)

// Region is the result of Classify.
type Region struct {
	Kind   RegionKind
	Button SystemButton
}

func (r Region) String() string {
	switch r.Kind {
	case RegionButton:
		return "button:" + r.Button.String()
	case RegionDraggable:
		return "draggable"
	case RegionExcluded:
		return "excluded"
	case RegionOutside:
		return "outside"
	default:
		return "client"
	}
}

// Classify combines IsInSystemButtons and IsInTitleBarDraggableArea into a
// single answer for pos. Buttons win over everything else.
func (c *Context) Classify(pos platform.Point) Region {
	if c.window != nil && !c.windowRect().Contains(pos) {
		return Region{Kind: RegionOutside}
	}
	if role, ok := c.IsInSystemButtons(pos); ok {
		return Region{Kind: RegionButton, Button: role}
	}
	if c.IsInTitleBarDraggableArea(pos) {
		return Region{Kind: RegionDraggable}
	}
	if c.delegate != nil {
		for item := range c.hitTestVisible {
			if c.itemContains(item, pos) {
				return Region{Kind: RegionExcluded}
			}
		}
	}
	return Region{Kind: RegionClient}
}
