package x11

import (
	"math"
	"testing"
)

func TestCheckCoord(t *testing.T) {
	for _, ok := range [][2]int{{0, 0}, {math.MaxInt16, math.MinInt16}, {-10, 20}} {
		if err := checkCoord(ok[0], ok[1]); err != nil {
			t.Fatalf("checkCoord(%d,%d): %v", ok[0], ok[1], err)
		}
	}
	for _, bad := range [][2]int{{math.MaxInt16 + 1, 0}, {0, math.MinInt16 - 1}, {40000, 40000}} {
		if err := checkCoord(bad[0], bad[1]); err == nil {
			t.Fatalf("checkCoord(%d,%d) must fail", bad[0], bad[1])
		}
	}
}
