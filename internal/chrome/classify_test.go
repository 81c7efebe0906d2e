package chrome

import (
	"testing"

	"github.com/1broseidon/chromekit/internal/platform"
)

func TestClassify(t *testing.T) {
	c, d, _ := newScenario(t)
	d.add(searchItem, platform.Rect{X: 300, Y: 4, Width: 200, Height: 24})
	c.SetHitTestVisible(searchItem, true)

	cases := []struct {
		pos  platform.Point
		want string
	}{
		{platform.Point{X: 770, Y: 10}, "button:close"},
		{platform.Point{X: 100, Y: 10}, "draggable"},
		{platform.Point{X: 400, Y: 10}, "excluded"},
		{platform.Point{X: 400, Y: 300}, "client"},
		{platform.Point{X: 900, Y: 10}, "outside"},
		{platform.Point{X: -1, Y: 10}, "outside"},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.pos).String(); got != tc.want {
			t.Fatalf("Classify(%v) = %q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestClassify_Detached(t *testing.T) {
	c, _, _ := newScenario(t)
	c.SetEnabled(false)

	// Without a window nothing is outside and nothing is draggable.
	if got := c.Classify(platform.Point{X: 100, Y: 10}); got.Kind != RegionClient {
		t.Fatalf("expected client, got %v", got)
	}
	if got := c.Classify(platform.Point{X: 770, Y: 10}); got.Kind != RegionButton {
		t.Fatalf("buttons do not depend on the window, got %v", got)
	}
}
