// Package session implements the passcode entry state machine and the
// process-wide unlock gate. It is toolkit-independent: the GUI feeds it
// digits and reacts to its callbacks.
package session

import (
	"crypto/subtle"
	"sync"
)

type Status string

const (
	// StatusIdle means no keypad session is active.
	StatusIdle Status = "Idle"
	// StatusCollecting means the session is accepting digits.
	StatusCollecting Status = "Collecting"
	// StatusAccepted means the entered code matched. The session is spent.
	StatusAccepted Status = "Accepted"
	// StatusRejected is the transient state between a mismatch and the
	// return to collecting.
	StatusRejected Status = "Rejected"
)

// Callbacks are invoked as the session progresses. They run on whichever
// goroutine drove the mutation, after internal state has settled.
type Callbacks struct {
	// OnChanged receives the buffer length after every mutation.
	OnChanged func(length int)
	// OnAccepted fires exactly once, when the entered code matches.
	OnAccepted func()
	// OnRejected fires after a full-length mismatch, once the buffer
	// has been cleared.
	OnRejected func()
}

// Keypad accumulates digit input up to a fixed length and compares it
// against the expected passcode. A full buffer evaluates immediately; a
// mismatch clears it and collection continues. There is no attempt limit.
type Keypad struct {
	mu        sync.Mutex
	passcode  string
	length    int
	buffer    []rune
	status    Status
	callbacks Callbacks
	statusCb  func(Status)
}

// NewKeypad starts a session collecting up to length digits, to be checked
// against passcode.
func NewKeypad(passcode string, length int, cb Callbacks) *Keypad {
	return &Keypad{
		passcode:  passcode,
		length:    length,
		status:    StatusCollecting,
		buffer:    make([]rune, 0, length),
		callbacks: cb,
	}
}

// SetStatusCallback registers an observer for status transitions. The
// callback runs synchronously during transitions and must not call back
// into the keypad.
func (k *Keypad) SetStatusCallback(cb func(Status)) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.statusCb = cb
}

// Status returns the current session status.
func (k *Keypad) Status() Status {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.status
}

// Buffered returns the number of digits currently collected.
func (k *Keypad) Buffered() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buffer)
}

// Push appends one digit to the buffer. Non-digit runes are ignored, as is
// any input once the buffer is full or the session is spent. The push that
// fills the buffer triggers evaluation.
func (k *Keypad) Push(r rune) {
	if r < '0' || r > '9' {
		return
	}

	k.mu.Lock()
	if k.status != StatusCollecting || len(k.buffer) >= k.length {
		k.mu.Unlock()
		return
	}

	k.buffer = append(k.buffer, r)
	n := len(k.buffer)
	full := n == k.length
	var fire []func()
	if full {
		fire = k.evaluateLocked()
	}
	k.mu.Unlock()

	k.notifyChanged(n)
	for _, f := range fire {
		f()
	}
}

// Backspace removes the most recent digit. It is a no-op on an empty
// buffer and never triggers evaluation.
func (k *Keypad) Backspace() {
	k.mu.Lock()
	if k.status != StatusCollecting || len(k.buffer) == 0 {
		k.mu.Unlock()
		return
	}
	k.buffer = k.buffer[:len(k.buffer)-1]
	n := len(k.buffer)
	k.mu.Unlock()

	k.notifyChanged(n)
}

// Confirm re-triggers evaluation when the buffer is exactly at the required
// length. With a shorter buffer it does nothing; evaluation normally happens
// automatically on the filling push.
func (k *Keypad) Confirm() {
	k.mu.Lock()
	if k.status != StatusCollecting || len(k.buffer) != k.length {
		k.mu.Unlock()
		return
	}
	fire := k.evaluateLocked()
	cleared := len(k.buffer) == 0
	k.mu.Unlock()

	if cleared {
		k.notifyChanged(0)
	}
	for _, f := range fire {
		f()
	}
}

// evaluateLocked compares the buffer against the passcode and applies the
// resulting transition. It returns the callbacks to fire once the lock is
// released. Callers must hold k.mu.
func (k *Keypad) evaluateLocked() []func() {
	match := subtle.ConstantTimeCompare([]byte(string(k.buffer)), []byte(k.passcode)) == 1

	if match {
		k.setStatusLocked(StatusAccepted)
		k.buffer = k.buffer[:0]
		if k.callbacks.OnAccepted != nil {
			return []func(){k.callbacks.OnAccepted}
		}
		return nil
	}

	k.setStatusLocked(StatusRejected)
	k.buffer = k.buffer[:0]
	k.setStatusLocked(StatusCollecting)

	var fire []func()
	if k.callbacks.OnChanged != nil {
		cb := k.callbacks.OnChanged
		fire = append(fire, func() { cb(0) })
	}
	if k.callbacks.OnRejected != nil {
		fire = append(fire, k.callbacks.OnRejected)
	}
	return fire
}

func (k *Keypad) setStatusLocked(s Status) {
	k.status = s
	if k.statusCb != nil {
		k.statusCb(s)
	}
}

func (k *Keypad) notifyChanged(n int) {
	if k.callbacks.OnChanged != nil {
		k.callbacks.OnChanged(n)
	}
}
