// Package singleinstance makes sure only one lock process runs per user.
// A second instance would fight the first over fullscreen focus without
// adding any security.
package singleinstance

import "errors"

// ErrAlreadyRunning means another instance holds the guard.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Release gives the guard up. Called on process exit; the OS reclaims the
// lock anyway if the process dies without calling it.
type Release func()
