package lockscreen

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colors for the lock screen chrome.
var (
	screenBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	panelBackground  = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	keyHoverColor    = color.NRGBA{R: 0, G: 120, B: 215, A: 255} // Windows blue
	keyTextColor     = color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 255}
	dotEmptyColor    = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	dotFilledColor   = color.NRGBA{R: 0xf2, G: 0xf4, B: 0xf8, A: 255}
	errorTextColor   = color.NRGBA{R: 0xff, G: 0x82, B: 0x82, A: 255}
)

// Theme is the dark theme every lock window uses.
type Theme struct{}

func (t *Theme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return screenBackground
	case theme.ColorNameButton:
		return panelBackground
	case theme.ColorNameForeground:
		return keyTextColor
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	case theme.ColorNamePrimary:
		return keyHoverColor
	case theme.ColorNameError:
		return errorTextColor
	default:
		return theme.DefaultTheme().Color(n, theme.VariantDark)
	}
}

func (t *Theme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *Theme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *Theme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}
