// Package audit keeps an append-only JSONL journal of the lock lifecycle
// and every keypad outcome. The journal is purely observational: nothing
// in the lock path reads it back, and a journal that cannot be opened or
// written degrades to a no-op.
package audit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// EventType identifies a journal entry.
type EventType string

const (
	EventLockStart      EventType = "lock_start"
	EventUnlockAttempt  EventType = "unlock_attempt"
	EventSettingsChange EventType = "settings_change"
	EventLockEnd        EventType = "lock_end"
)

// AttemptContext says which keypad session produced an attempt.
type AttemptContext string

const (
	ContextUnlock   AttemptContext = "unlock"
	ContextSettings AttemptContext = "settings"
)

// maxJournalSize is the size at which the journal is rotated aside. One
// rotated generation is kept.
const maxJournalSize = 5 << 20

// Journal writes audit events to a JSONL file. A nil Journal and a
// Journal whose file failed to open are both safe to use.
type Journal struct {
	mu     sync.Mutex
	file   *os.File
	logger *slog.Logger
}

// DefaultPath returns the platform-specific journal location.
func DefaultPath() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Logs", "fieldlock", "audit.jsonl")
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = os.Getenv("APPDATA")
		}
		return filepath.Join(base, "FieldLock", "audit.jsonl")
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			home, _ := os.UserHomeDir()
			stateHome = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateHome, "fieldlock", "audit.jsonl")
	}
}

// Open creates or appends to the journal at path. The returned error is
// informational: the Journal is usable either way.
func Open(path string) (*Journal, error) {
	j := &Journal{}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return j, fmt.Errorf("create journal directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxJournalSize {
		// Best effort; a failed rotation just means the file keeps growing.
		os.Rename(path, path+".1")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return j, fmt.Errorf("open journal: %w", err)
	}

	j.file = file
	j.logger = slog.New(slog.NewJSONHandler(file, nil))
	return j, nil
}

// LockStart records the beginning of a lock session.
func (j *Journal) LockStart(displays int) {
	j.log(EventLockStart, slog.Int("displays", displays))
}

// Attempt records one keypad evaluation outcome.
func (j *Journal) Attempt(ctx AttemptContext, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	j.log(EventUnlockAttempt,
		slog.String("context", string(ctx)),
		slog.String("result", result),
	)
}

// SettingsChange records which settings fields were modified.
func (j *Journal) SettingsChange(fields ...string) {
	j.log(EventSettingsChange, slog.Any("fields", fields))
}

// LockEnd records the end of the lock session, i.e. a successful unlock.
func (j *Journal) LockEnd() {
	j.log(EventLockEnd)
}

func (j *Journal) log(event EventType, attrs ...slog.Attr) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.logger == nil {
		return
	}
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	j.logger.Info(string(event), args...)
}

// Close releases the journal file. Safe on a no-op journal.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.logger = nil
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
