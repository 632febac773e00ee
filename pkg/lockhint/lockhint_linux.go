//go:build linux

package lockhint

import (
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"
)

const (
	login1Bus     = "org.freedesktop.login1"
	login1Path    = "/org/freedesktop/login1"
	login1Manager = "org.freedesktop.login1.Manager"
	login1Session = "org.freedesktop.login1.Session"
)

type logindAnnouncer struct {
	conn    *dbus.Conn
	session dbus.BusObject
}

// New connects to logind and resolves the session named by XDG_SESSION_ID.
// Returns ErrUnavailable when the session cannot be determined.
func New() (Announcer, error) {
	sessionID := os.Getenv("XDG_SESSION_ID")
	if sessionID == "" {
		return noop{}, ErrUnavailable
	}

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return noop{}, fmt.Errorf("connect system bus: %w", err)
	}

	var sessionPath dbus.ObjectPath
	err = conn.Object(login1Bus, login1Path).
		Call(login1Manager+".GetSession", 0, sessionID).
		Store(&sessionPath)
	if err != nil {
		conn.Close()
		return noop{}, fmt.Errorf("resolve session %s: %w", sessionID, err)
	}

	return &logindAnnouncer{
		conn:    conn,
		session: conn.Object(login1Bus, sessionPath),
	}, nil
}

func (a *logindAnnouncer) SetLocked(locked bool) error {
	err := a.session.Call(login1Session+".SetLockedHint", 0, locked).Err
	if err != nil {
		return fmt.Errorf("set locked hint: %w", err)
	}
	return nil
}

func (a *logindAnnouncer) Close() error {
	return a.conn.Close()
}
