//go:build !windows

package display

// The toolkit fullscreens onto the active head; without a native probe we
// report a single display and leave multi-head setups to the env override.
func displayCount() int {
	return 1
}

func virtualBounds() Rect {
	return Rect{}
}
