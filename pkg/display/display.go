// Package display enumerates the physical displays the lock screen must
// cover. Detection is deliberately coarse: the window toolkit handles the
// actual placement, this package only answers "how many windows".
package display

import (
	"os"
	"strconv"
)

// EnvDisplays overrides the detected display count, for multi-head setups
// the platform probe cannot see.
const EnvDisplays = "FIELDLOCK_DISPLAYS"

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes one physical display.
type Display struct {
	Index   int
	Primary bool
	Bounds  Rect
}

// Detect returns the displays to cover, always at least one. The first
// entry is the primary display and carries the unlock controls.
func Detect() []Display {
	count := displayCount()

	if raw := os.Getenv(EnvDisplays); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			count = n
		}
	}

	if count < 1 {
		count = 1
	}

	bounds := virtualBounds()
	displays := make([]Display, count)
	for i := range displays {
		displays[i] = Display{
			Index:   i,
			Primary: i == 0,
			Bounds:  bounds,
		}
	}
	return displays
}
