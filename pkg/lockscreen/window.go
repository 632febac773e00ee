package lockscreen

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"fieldlock/assets"
	"fieldlock/pkg/display"
	"fieldlock/pkg/keyguard"
	"fieldlock/pkg/logger"
	"fieldlock/pkg/session"
)

// controlsHideDelay is how long the unlock/settings controls stay visible
// after the last interaction.
const controlsHideDelay = 5 * time.Second

// windowHooks connects a lock window to the manager that owns it.
type windowHooks struct {
	// onActivate opens the unlock keypad.
	onActivate func()
	// onSettings starts the settings flow.
	onSettings func()
	// keypad returns the dialog currently collecting input, or nil.
	keypad func() *Keypad
}

// Window is one full-screen lock window. Every window guards against
// close and swallows escape combinations; only the primary one carries
// the unlock and settings controls.
type Window struct {
	win     fyne.Window
	gate    *session.Gate
	policy  *keyguard.Policy
	primary bool
	hooks   windowHooks

	stack     *fyne.Container
	wallpaper *canvas.Image
	controls  fyne.CanvasObject
	hideTimer *time.Timer

	mods fyne.KeyModifier
}

// tapCatcher turns a tap anywhere on the wallpaper into keypad activation.
type tapCatcher struct {
	widget.BaseWidget
	onTapped func()
}

func newTapCatcher(onTapped func()) *tapCatcher {
	t := &tapCatcher{onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (t *tapCatcher) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

func newWindow(app fyne.App, d display.Display, gate *session.Gate, wallpaperPath string, hooks windowHooks) *Window {
	w := &Window{
		win:     app.NewWindow(fmt.Sprintf("FieldLock %d", d.Index+1)),
		gate:    gate,
		policy:  keyguard.NewPolicy(gate.Unlocked),
		primary: d.Primary,
		hooks:   hooks,
	}

	w.win.SetPadded(false)
	w.win.SetFullScreen(true)

	w.buildContent(wallpaperPath)
	w.guardClose()
	w.interceptKeys()

	return w
}

func (w *Window) buildContent(wallpaperPath string) {
	fallback := canvas.NewRectangle(screenBackground)
	w.wallpaper = loadWallpaper(wallpaperPath)

	catcher := newTapCatcher(w.activate)

	w.stack = container.NewStack(fallback, w.wallpaper, catcher)

	if w.primary {
		unlock := widget.NewButtonWithIcon("", assets.UnlockIcon(), w.activate)
		settings := widget.NewButtonWithIcon("", assets.SettingsIcon(), func() {
			w.showControls()
			if w.hooks.onSettings != nil {
				w.hooks.onSettings()
			}
		})

		w.controls = container.NewVBox(
			layout.NewSpacer(),
			container.NewHBox(layout.NewSpacer(), container.NewPadded(container.NewHBox(unlock, settings))),
		)
		w.controls.Hide()
		w.stack.Add(w.controls)
	}

	w.win.SetContent(w.stack)
}

// loadWallpaper builds the wallpaper image for path. A missing file gives
// a hidden image so the black fallback shows; a corrupt one renders as
// nothing over the same fallback.
func loadWallpaper(path string) *canvas.Image {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("Wallpaper %s unavailable, using black fallback: %v", path, err)
		img := canvas.NewImageFromFile("")
		img.Hide()
		return img
	}

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	return img
}

// SetWallpaper swaps the displayed wallpaper. Must run on the UI thread.
func (w *Window) SetWallpaper(path string) {
	img := loadWallpaper(path)
	w.stack.Objects[1] = img
	w.wallpaper = img
	w.stack.Refresh()
}

// guardClose suppresses every close request while the gate is locked.
func (w *Window) guardClose() {
	w.win.SetCloseIntercept(func() {
		if !w.gate.Unlocked() {
			logger.Debug("Close request suppressed while locked")
			return
		}
		w.win.Close()
	})
}

// interceptKeys wires the deny policy ahead of all other key handling and
// routes the rest of the keyboard to the active keypad dialog.
func (w *Window) interceptKeys() {
	cv := w.win.Canvas()

	if deskCanvas, ok := cv.(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			w.mods |= modifierFor(ev.Name)
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			w.mods &^= modifierFor(ev.Name)
		})
	}

	cv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if w.policy.Blocked(ev.Name, w.mods) {
			logger.Debug("Blocked key %s", ev.Name)
			return
		}
		if keypad := w.hooks.keypad(); keypad != nil && keypad.Active() {
			keypad.TypeKey(ev.Name)
			return
		}
		w.activate()
	})

	cv.SetOnTypedRune(func(r rune) {
		if keypad := w.hooks.keypad(); keypad != nil && keypad.Active() {
			keypad.TypeRune(r)
			return
		}
		w.activate()
	})
}

// activate shows the controls and opens the unlock keypad, mirroring the
// open-on-any-interaction behaviour of the lock screen.
func (w *Window) activate() {
	w.showControls()
	if w.hooks.onActivate != nil {
		w.hooks.onActivate()
	}
}

// showControls reveals the primary window's buttons and re-arms the
// auto-hide timer.
func (w *Window) showControls() {
	if w.controls == nil {
		return
	}
	w.controls.Show()

	if w.hideTimer != nil {
		w.hideTimer.Stop()
	}
	w.hideTimer = time.AfterFunc(controlsHideDelay, func() {
		fyne.Do(func() {
			w.controls.Hide()
		})
	})
}

// Show puts the window on screen.
func (w *Window) Show() {
	w.win.Show()
}

// Close tears the window down. Only reachable once the gate is unlocked.
func (w *Window) Close() {
	w.win.Close()
}

// Raise refocuses the window. Safe from any goroutine.
func (w *Window) Raise() {
	fyne.Do(func() {
		if !w.gate.Unlocked() {
			w.win.RequestFocus()
		}
	})
}

// Fyne delivers modifier keys as plain key events; the window keeps its
// own mask so the policy can see chords.
func modifierFor(name fyne.KeyName) fyne.KeyModifier {
	switch name {
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return fyne.KeyModifierAlt
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return fyne.KeyModifierControl
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return fyne.KeyModifierShift
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return fyne.KeyModifierSuper
	}
	return 0
}
