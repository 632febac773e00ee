//go:build windows

package display

import "golang.org/x/sys/windows"

const (
	smCMonitors       = 80
	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCxVirtualScreen = 78
	smCyVirtualScreen = 79
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

func getSystemMetrics(index int) int {
	n, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(n)
}

func displayCount() int {
	return getSystemMetrics(smCMonitors)
}

func virtualBounds() Rect {
	return Rect{
		X:      getSystemMetrics(smXVirtualScreen),
		Y:      getSystemMetrics(smYVirtualScreen),
		Width:  getSystemMetrics(smCxVirtualScreen),
		Height: getSystemMetrics(smCyVirtualScreen),
	}
}
