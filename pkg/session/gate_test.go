package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGateStartsLocked(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Unlocked())

	select {
	case <-g.Done():
		t.Fatal("Done channel closed before Unlock")
	default:
	}
}

func TestGateUnlockIsIdempotent(t *testing.T) {
	g := NewGate()
	g.Unlock()
	g.Unlock()

	assert.True(t, g.Unlocked())

	select {
	case <-g.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel not closed after Unlock")
	}
}

func TestGateDoneWakesWaiters(t *testing.T) {
	g := NewGate()

	released := make(chan struct{})
	go func() {
		<-g.Done()
		close(released)
	}()

	g.Unlock()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("waiter not released")
	}
}
