package lockscreen

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// KeyButton is one key of the on-screen keypad: a large square button
// with a single label, highlighted on hover.
type KeyButton struct {
	widget.BaseWidget
	Text     string
	OnTapped func()

	hovered    bool
	background *canvas.Rectangle
	label      *canvas.Text
	mu         sync.Mutex
}

// NewKeyButton creates a keypad key.
func NewKeyButton(text string, onTapped func()) *KeyButton {
	b := &KeyButton{
		Text:     text,
		OnTapped: onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *KeyButton) CreateRenderer() fyne.WidgetRenderer {
	b.background = canvas.NewRectangle(panelBackground)
	b.background.CornerRadius = 8

	b.label = canvas.NewText(b.Text, keyTextColor)
	b.label.TextSize = 26
	b.label.Alignment = fyne.TextAlignCenter

	content := container.NewStack(
		b.background,
		container.NewCenter(b.label),
	)

	return widget.NewSimpleRenderer(content)
}

// MouseIn implements desktop.Hoverable
func (b *KeyButton) MouseIn(_ *desktop.MouseEvent) {
	b.mu.Lock()
	b.hovered = true
	b.mu.Unlock()

	if b.background != nil {
		b.background.FillColor = keyHoverColor
		b.background.Refresh()
	}
}

// MouseOut implements desktop.Hoverable
func (b *KeyButton) MouseOut() {
	b.mu.Lock()
	b.hovered = false
	b.mu.Unlock()

	if b.background != nil {
		b.background.FillColor = panelBackground
		b.background.Refresh()
	}
}

// MouseMoved implements desktop.Hoverable
func (b *KeyButton) MouseMoved(_ *desktop.MouseEvent) {}

// Tapped implements fyne.Tappable
func (b *KeyButton) Tapped(_ *fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MinSize returns the fixed key size.
func (b *KeyButton) MinSize() fyne.Size {
	return fyne.NewSize(80, 80)
}

// Cursor returns the pointer cursor.
func (b *KeyButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
