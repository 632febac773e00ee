// Package lockhint mirrors the lock state to the session manager so the
// rest of the desktop knows the screen is locked. On Linux this talks to
// systemd-logind over D-Bus; elsewhere it is a no-op. Every failure is
// best-effort: the lock itself never depends on the hint.
package lockhint

import "errors"

// ErrUnavailable means no session manager is reachable on this platform.
var ErrUnavailable = errors.New("locked-hint not available")

// Announcer publishes the locked/unlocked state.
type Announcer interface {
	// SetLocked updates the session's locked hint.
	SetLocked(locked bool) error
	// Close releases the underlying connection.
	Close() error
}

// noop satisfies Announcer where no session manager exists.
type noop struct{}

func (noop) SetLocked(bool) error { return nil }
func (noop) Close() error         { return nil }
