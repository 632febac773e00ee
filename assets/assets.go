// Package assets supplies the icons the lock screen shows. Icons are
// drawn in memory so the binary works standalone; a neighbouring PNG with
// the matching name overrides the drawn version.
package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 64

var iconColor = color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 0xff}

var (
	once         sync.Once
	unlockIcon   fyne.Resource
	settingsIcon fyne.Resource
	appIcon      fyne.Resource
)

// UnlockIcon returns the padlock icon for the unlock control.
func UnlockIcon() fyne.Resource {
	load()
	return unlockIcon
}

// SettingsIcon returns the gear icon for the settings control.
func SettingsIcon() fyne.Resource {
	load()
	return settingsIcon
}

// AppIcon returns the application icon.
func AppIcon() fyne.Resource {
	load()
	return appIcon
}

func load() {
	once.Do(func() {
		unlockIcon = resource("Unlock.png", drawPadlock)
		settingsIcon = resource("Settings.png", drawGear)
		appIcon = resource("AppIcon.png", drawPadlock)
	})
}

// resource prefers a file next to the executable, falling back to the
// drawn icon.
func resource(name string, draw func(*image.NRGBA)) fyne.Resource {
	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), name)
		if res, err := fyne.LoadResourceFromPath(path); err == nil {
			return res
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	draw(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fyne.NewStaticResource(name, nil)
	}
	return fyne.NewStaticResource(name, buf.Bytes())
}

// drawPadlock renders a closed padlock: a rounded shackle over a body.
func drawPadlock(img *image.NRGBA) {
	// Body.
	fillRect(img, 16, 30, 48, 56)
	// Keyhole.
	clearCircle(img, 32, 40, 4)
	clearRect(img, 30, 40, 34, 50)
	// Shackle: the upper half of a ring, the rest hidden by the body.
	halfRing(img, 32, 30, 10, 14)
}

// drawGear renders an eight-toothed gear.
func drawGear(img *image.NRGBA) {
	const (
		cx, cy = 32, 32
		teeth  = 8
	)
	ring(img, cx, cy, 10, 20)
	clearCircle(img, cx, cy, 10)
	for i := 0; i < teeth; i++ {
		angle := 2 * math.Pi * float64(i) / teeth
		tx := cx + int(26*math.Cos(angle))
		ty := cy + int(26*math.Sin(angle))
		fillCircle(img, tx, ty, 5)
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, iconColor)
		}
	}
}

func clearRect(img *image.NRGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, iconColor)
			}
		}
	}
}

func clearCircle(img *image.NRGBA, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
}

func ring(img *image.NRGBA, cx, cy, inner, outer int) {
	for y := cy - outer; y <= cy+outer; y++ {
		for x := cx - outer; x <= cx+outer; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= outer*outer && d >= inner*inner {
				img.SetNRGBA(x, y, iconColor)
			}
		}
	}
}

func halfRing(img *image.NRGBA, cx, cy, inner, outer int) {
	for y := cy - outer; y <= cy; y++ {
		for x := cx - outer; x <= cx+outer; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= outer*outer && d >= inner*inner {
				img.SetNRGBA(x, y, iconColor)
			}
		}
	}
}
