package lockscreen

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"fieldlock/pkg/config"
	"fieldlock/pkg/logger"
	"fieldlock/pkg/startup"
)

var wallpaperExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// settingsDialog edits the wallpaper, the passcode and the autostart
// preference. Validation failures keep the dialog open; only a clean
// apply reaches onSaved.
type settingsDialog struct {
	parent fyne.Window
	cfg    config.Config
	popup  *widget.PopUp

	wallpaperLabel  *widget.Label
	pickedWallpaper string

	currentEntry *widget.Entry
	nextEntry    *widget.Entry
	confirmEntry *widget.Entry

	autostartCheck   *widget.Check
	autostartInitial bool

	onSaved func(updated config.Config, changed []string)
}

// ShowSettings opens the settings dialog over parent. onSaved receives the
// updated config and the list of changed fields after a successful apply.
func ShowSettings(parent fyne.Window, cfg config.Config, onSaved func(config.Config, []string)) {
	s := &settingsDialog{
		parent:           parent,
		cfg:              cfg,
		autostartInitial: startup.IsEnabled(),
		onSaved:          onSaved,
	}

	s.popup = widget.NewModalPopUp(s.buildContent(), parent.Canvas())
	s.popup.Show()
}

func (s *settingsDialog) buildContent() fyne.CanvasObject {
	s.wallpaperLabel = widget.NewLabel(filepath.Base(s.cfg.WallpaperPath))
	browse := widget.NewButton("Browse…", s.pickWallpaper)

	s.currentEntry = widget.NewPasswordEntry()
	s.nextEntry = widget.NewPasswordEntry()
	s.confirmEntry = widget.NewPasswordEntry()

	s.autostartCheck = widget.NewCheck("Start at login", nil)
	s.autostartCheck.SetChecked(s.autostartInitial)

	save := widget.NewButton("Save", s.apply)
	save.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", func() { s.popup.Hide() })

	return container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Current wallpaper:"),
		container.NewBorder(nil, nil, nil, browse, s.wallpaperLabel),
		widget.NewSeparator(),
		widget.NewLabel("Change passcode (4-8 digits):"),
		widget.NewForm(
			widget.NewFormItem("Current", s.currentEntry),
			widget.NewFormItem("New", s.nextEntry),
			widget.NewFormItem("Confirm", s.confirmEntry),
		),
		widget.NewSeparator(),
		s.autostartCheck,
		container.NewGridWithColumns(2, cancel, save),
	)
}

func (s *settingsDialog) pickWallpaper() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		s.pickedWallpaper = path
		s.wallpaperLabel.SetText(filepath.Base(path))
	}, s.parent)
	fd.SetFilter(storage.NewExtensionFileFilter(wallpaperExtensions))
	fd.Show()
}

func (s *settingsDialog) apply() {
	req := config.ChangeRequest{
		Current: s.currentEntry.Text,
		Next:    s.nextEntry.Text,
		Confirm: s.confirmEntry.Text,
	}

	updated, err := config.ApplyPasscodeChange(s.cfg, req)
	if err != nil {
		dialog.ShowInformation("FieldLock", err.Error(), s.parent)
		return
	}

	var changed []string
	if !req.Empty() {
		changed = append(changed, "passcode", "keypad_length")
	}

	if s.pickedWallpaper != "" && s.pickedWallpaper != s.cfg.WallpaperPath {
		updated.WallpaperPath = s.pickedWallpaper
		changed = append(changed, "wallpaper_path")
	}

	if s.autostartCheck.Checked != s.autostartInitial {
		var err error
		if s.autostartCheck.Checked {
			err = startup.Enable()
		} else {
			err = startup.Disable()
		}
		if err != nil {
			logger.Warn("Autostart change failed: %v", err)
		} else {
			changed = append(changed, "autostart")
		}
	}

	s.popup.Hide()
	if s.onSaved != nil {
		s.onSaved(updated, changed)
	}
}
