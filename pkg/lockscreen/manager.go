// Package lockscreen is the Fyne shell of the lock screen: one
// full-screen window per display, the keypad and settings dialogs, and
// the manager that owns the unlock gate.
package lockscreen

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"fieldlock/pkg/audit"
	"fieldlock/pkg/config"
	"fieldlock/pkg/display"
	"fieldlock/pkg/lockhint"
	"fieldlock/pkg/logger"
	"fieldlock/pkg/session"
)

const (
	unlockPrompt   = "Enter passcode to unlock"
	settingsPrompt = "Enter passcode to open settings"

	// raiseInterval is how often unfocused lock windows are pulled back
	// to the front.
	raiseInterval = 2 * time.Second
)

// Manager is the application-lifecycle controller: it owns the unlock
// gate, the live config and every lock window.
type Manager struct {
	app     fyne.App
	gate    *session.Gate
	journal *audit.Journal
	hint    lockhint.Announcer

	configPath string

	mu      sync.Mutex
	cfg     config.Config
	keypad  *Keypad
	windows []*Window
	primary *Window
}

// NewManager creates a manager around app. Settings edits are saved back
// to configPath. journal and hint may be the no-op implementations; the
// manager never checks.
func NewManager(app fyne.App, cfg config.Config, configPath string, journal *audit.Journal, hint lockhint.Announcer) *Manager {
	return &Manager{
		app:        app,
		gate:       session.NewGate(),
		journal:    journal,
		hint:       hint,
		cfg:        cfg,
		configPath: configPath,
	}
}

// Gate returns the shared unlock signal.
func (m *Manager) Gate() *session.Gate {
	return m.gate
}

// Start covers every display with a lock window and begins the auto-raise
// loop. It returns the number of windows created.
func (m *Manager) Start() int {
	hooks := windowHooks{
		onActivate: m.OpenUnlockKeypad,
		onSettings: m.openSettingsKeypad,
		keypad:     m.activeKeypad,
	}

	m.mu.Lock()
	wallpaper := m.cfg.WallpaperPath
	m.mu.Unlock()

	displays := display.Detect()
	for _, d := range displays {
		w := newWindow(m.app, d, m.gate, wallpaper, hooks)
		m.windows = append(m.windows, w)
		if d.Primary {
			m.primary = w
		}
	}

	// Primary last so it ends up focused for keyboard input.
	for _, w := range m.windows {
		if w != m.primary {
			w.Show()
		}
	}
	m.primary.Show()

	if err := m.hint.SetLocked(true); err != nil {
		logger.Debug("Locked hint not set: %v", err)
	}

	go m.autoRaiseLoop()

	return len(m.windows)
}

// OpenUnlockKeypad shows the unlock keypad on the primary window. A
// keypad already on screen is left alone.
func (m *Manager) OpenUnlockKeypad() {
	m.openKeypad(unlockPrompt, audit.ContextUnlock, m.unlocked)
}

// openSettingsKeypad runs the second, independent keypad session gating
// the settings dialog.
func (m *Manager) openSettingsKeypad() {
	m.openKeypad(settingsPrompt, audit.ContextSettings, m.openSettings)
}

func (m *Manager) openKeypad(prompt string, ctx audit.AttemptContext, onAccepted func()) {
	m.mu.Lock()
	if m.keypad != nil && m.keypad.Active() {
		m.mu.Unlock()
		return
	}
	passcode := m.cfg.Passcode
	length := m.cfg.KeypadLength
	m.mu.Unlock()

	keypad := ShowKeypad(m.primary.win, prompt, passcode, length,
		func(success bool) {
			m.journal.Attempt(ctx, success)
		},
		func() {
			m.clearKeypad()
			onAccepted()
		},
		m.clearKeypad,
	)

	m.mu.Lock()
	m.keypad = keypad
	m.mu.Unlock()
}

func (m *Manager) clearKeypad() {
	m.mu.Lock()
	m.keypad = nil
	m.mu.Unlock()
}

func (m *Manager) activeKeypad() *Keypad {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keypad
}

// unlocked is the one and only exit path: release the gate, clear the
// locked hint and quit, which closes every window at once.
func (m *Manager) unlocked() {
	logger.Info("Passcode accepted, unlocking")
	m.gate.Unlock()

	if err := m.hint.SetLocked(false); err != nil {
		logger.Debug("Locked hint not cleared: %v", err)
	}

	m.app.Quit()
}

// openSettings shows the settings dialog after its keypad gate passed.
func (m *Manager) openSettings() {
	m.mu.Lock()
	cfg := m.cfg
	m.mu.Unlock()

	ShowSettings(m.primary.win, cfg, m.applySettings)
}

// applySettings persists a successful settings edit and refreshes the
// wallpaper everywhere.
func (m *Manager) applySettings(updated config.Config, changed []string) {
	if len(changed) == 0 {
		return
	}

	if err := config.SaveTo(m.configPath, updated); err != nil {
		logger.Error("Failed to save config: %v", err)
	}

	m.mu.Lock()
	m.cfg = updated
	m.mu.Unlock()

	m.journal.SettingsChange(changed...)
	logger.Info("Settings updated: %v", changed)

	for _, w := range m.windows {
		w.SetWallpaper(updated.WallpaperPath)
	}
}

// OnConfigReload takes an externally modified config, e.g. from the file
// watcher. Runs off the UI thread.
func (m *Manager) OnConfigReload(cfg config.Config) {
	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()

	logger.Info("Config reloaded from disk")

	fyne.Do(func() {
		for _, w := range m.windows {
			w.SetWallpaper(cfg.WallpaperPath)
		}
	})
}

// autoRaiseLoop keeps the lock windows on top until the gate opens.
func (m *Manager) autoRaiseLoop() {
	ticker := time.NewTicker(raiseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.gate.Done():
			return
		case <-ticker.C:
			for _, w := range m.windows {
				w.Raise()
			}
		}
	}
}
