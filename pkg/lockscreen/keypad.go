package lockscreen

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fieldlock/pkg/session"
)

// Shake keyframes: horizontal offsets the dialog walks through after a
// rejected code, 20ms apart.
var shakeKeyframes = []float32{10, -10, 6, -6, 3, -3, 0}

const shakeStepDuration = 20 * time.Millisecond

// shakeOffset interpolates the keyframes for an animation progress in
// [0,1].
func shakeOffset(progress float32) float32 {
	last := len(shakeKeyframes) - 1
	if progress <= 0 {
		return shakeKeyframes[0]
	}
	if progress >= 1 {
		return shakeKeyframes[last]
	}
	scaled := progress * float32(last)
	i := int(scaled)
	frac := scaled - float32(i)
	return shakeKeyframes[i] + (shakeKeyframes[i+1]-shakeKeyframes[i])*frac
}

// Keypad is the modal passcode entry dialog: a prompt, progress dots, a
// digit grid and a status line. Digits come from the on-screen keys or
// from the keyboard via the owning window.
type Keypad struct {
	session *session.Keypad
	popup   *widget.PopUp
	parent  fyne.Window

	dots   []*canvas.Circle
	status *canvas.Text
	anim   *fyne.Animation

	onCancelled func()
	closed      bool
}

// ShowKeypad opens the keypad dialog over parent. onAttempt fires after
// every evaluation, onAccepted once on a match, onCancelled when the user
// dismisses the dialog without unlocking.
func ShowKeypad(parent fyne.Window, prompt, passcode string, length int, onAttempt func(success bool), onAccepted, onCancelled func()) *Keypad {
	k := &Keypad{
		parent:      parent,
		onCancelled: onCancelled,
	}

	k.session = session.NewKeypad(passcode, length, session.Callbacks{
		OnChanged: k.refreshDots,
		OnAccepted: func() {
			if onAttempt != nil {
				onAttempt(true)
			}
			k.closed = true
			k.popup.Hide()
			if onAccepted != nil {
				onAccepted()
			}
		},
		OnRejected: func() {
			if onAttempt != nil {
				onAttempt(false)
			}
			k.status.Text = "Incorrect"
			k.status.Refresh()
			k.shake()
		},
	})

	k.popup = widget.NewModalPopUp(k.buildContent(prompt, length), parent.Canvas())
	k.popup.Show()
	return k
}

func (k *Keypad) buildContent(prompt string, length int) fyne.CanvasObject {
	promptText := canvas.NewText(prompt, keyTextColor)
	promptText.TextSize = 18
	promptText.Alignment = fyne.TextAlignCenter

	k.dots = make([]*canvas.Circle, length)
	dotObjects := make([]fyne.CanvasObject, length)
	for i := range k.dots {
		dot := canvas.NewCircle(dotEmptyColor)
		k.dots[i] = dot
		dotObjects[i] = dot
	}
	dotRow := container.NewGridWrap(fyne.NewSize(14, 14), dotObjects...)

	keys := make([]fyne.CanvasObject, 0, 12)
	for digit := '1'; digit <= '9'; digit++ {
		d := digit
		keys = append(keys, NewKeyButton(string(d), func() {
			k.session.Push(d)
		}))
	}
	keys = append(keys,
		NewKeyButton("⌫", k.session.Backspace),
		NewKeyButton("0", func() { k.session.Push('0') }),
		NewKeyButton("✕", k.Cancel),
	)
	grid := container.NewGridWithColumns(3, keys...)

	k.status = canvas.NewText(" ", errorTextColor)
	k.status.TextSize = 14
	k.status.Alignment = fyne.TextAlignCenter

	return container.NewVBox(
		promptText,
		container.NewCenter(dotRow),
		grid,
		k.status,
	)
}

// TypeRune feeds a keyboard character into the session.
func (k *Keypad) TypeRune(r rune) {
	k.session.Push(r)
}

// TypeKey handles the keyboard editing keys.
func (k *Keypad) TypeKey(name fyne.KeyName) {
	switch name {
	case fyne.KeyBackspace:
		k.session.Backspace()
	case fyne.KeyReturn, fyne.KeyEnter:
		k.session.Confirm()
	}
}

// Cancel dismisses the dialog without unlocking.
func (k *Keypad) Cancel() {
	if k.closed {
		return
	}
	k.closed = true
	k.popup.Hide()
	if k.onCancelled != nil {
		k.onCancelled()
	}
}

// Active reports whether the dialog is still on screen.
func (k *Keypad) Active() bool {
	return !k.closed
}

func (k *Keypad) refreshDots(buffered int) {
	for i, dot := range k.dots {
		if i < buffered {
			dot.FillColor = dotFilledColor
		} else {
			dot.FillColor = dotEmptyColor
		}
		dot.Refresh()
	}
}

// shake plays the rejection oscillation on the popup.
func (k *Keypad) shake() {
	if k.anim != nil {
		k.anim.Stop()
	}

	base := k.popup.Position()
	duration := time.Duration(len(shakeKeyframes)) * shakeStepDuration

	k.anim = fyne.NewAnimation(duration, func(progress float32) {
		k.popup.Move(fyne.NewPos(base.X+shakeOffset(progress), base.Y))
	})
	k.anim.Curve = fyne.AnimationLinear
	k.anim.Start()
}
