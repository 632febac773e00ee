package session

import (
	"sync"
	"sync/atomic"
)

// Gate is the one-shot unlock signal shared by every lock window. Windows
// refuse to close while it is locked; releasing it is irreversible and is
// done only by the unlock-success path.
type Gate struct {
	unlocked atomic.Bool
	done     chan struct{}
	once     sync.Once
}

// NewGate returns a locked gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Unlock releases the gate. Safe to call more than once.
func (g *Gate) Unlock() {
	g.once.Do(func() {
		g.unlocked.Store(true)
		close(g.done)
	})
}

// Unlocked reports whether the gate has been released.
func (g *Gate) Unlocked() bool {
	return g.unlocked.Load()
}

// Done returns a channel closed when the gate is released.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
