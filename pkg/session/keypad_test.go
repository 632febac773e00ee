package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes  []int
	accepted int
	rejected int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChanged:  func(n int) { r.changes = append(r.changes, n) },
		OnAccepted: func() { r.accepted++ },
		OnRejected: func() { r.rejected++ },
	}
}

func push(k *Keypad, digits string) {
	for _, r := range digits {
		k.Push(r)
	}
}

func TestNewKeypadStartsCollecting(t *testing.T) {
	k := NewKeypad("4123", 4, Callbacks{})
	assert.Equal(t, StatusCollecting, k.Status())
	assert.Equal(t, 0, k.Buffered())
}

func TestCorrectEntryAccepted(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	push(k, "4123")

	assert.Equal(t, StatusAccepted, k.Status())
	assert.Equal(t, 1, rec.accepted)
	assert.Equal(t, 0, rec.rejected)
}

func TestWrongEntryRejectedAndCleared(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	push(k, "9999")

	assert.Equal(t, StatusCollecting, k.Status())
	assert.Equal(t, 0, k.Buffered())
	assert.Equal(t, 0, rec.accepted)
	assert.Equal(t, 1, rec.rejected)

	// Retry is possible immediately
	push(k, "4123")
	assert.Equal(t, StatusAccepted, k.Status())
	assert.Equal(t, 1, rec.accepted)
}

func TestBufferNeverExceedsLength(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	// Fill with a mismatch, then keep pushing: nothing past the cap lands.
	push(k, "999")
	assert.Equal(t, 3, k.Buffered())

	k.Push('9') // fills, evaluates, clears
	assert.Equal(t, 0, k.Buffered())
	require.Equal(t, 1, rec.rejected)
}

func TestPushAfterAcceptIgnored(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	push(k, "4123")
	require.Equal(t, StatusAccepted, k.Status())

	push(k, "77")
	assert.Equal(t, 0, k.Buffered())
	assert.Equal(t, 1, rec.accepted, "a spent session must not re-fire")
}

func TestNonDigitInputIgnored(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	k.Push('a')
	k.Push(' ')
	k.Push('\n')
	k.Push('-')

	assert.Equal(t, 0, k.Buffered())
	assert.Empty(t, rec.changes)
}

func TestBackspace(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	// No-op on empty buffer
	k.Backspace()
	assert.Equal(t, 0, k.Buffered())
	assert.Empty(t, rec.changes)

	push(k, "41")
	k.Backspace()
	assert.Equal(t, 1, k.Buffered())

	// Backspace never evaluates, even repeatedly at any fill level
	k.Backspace()
	k.Backspace()
	assert.Equal(t, 0, k.Buffered())
	assert.Equal(t, 0, rec.accepted)
	assert.Equal(t, 0, rec.rejected)
}

func TestConfirmBelowLengthIsNoop(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	push(k, "41")
	k.Confirm()

	assert.Equal(t, StatusCollecting, k.Status())
	assert.Equal(t, 2, k.Buffered())
	assert.Equal(t, 0, rec.accepted)
	assert.Equal(t, 0, rec.rejected)
}

func TestChangedCallbackSequence(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("4123", 4, rec.callbacks())

	push(k, "99")
	k.Backspace()
	push(k, "999") // fourth digit fills and rejects

	// 1,2 pushes; 1 after backspace; 2,3,4 pushes; 0 after the clear
	assert.Equal(t, []int{1, 2, 1, 2, 3, 4, 0}, rec.changes)
}

func TestFiveDigitPasscode(t *testing.T) {
	rec := &recorder{}
	k := NewKeypad("56789", 5, rec.callbacks())

	// Four digits of a five-digit code must not evaluate
	push(k, "5678")
	assert.Equal(t, StatusCollecting, k.Status())
	assert.Equal(t, 0, rec.rejected)

	k.Push('9')
	assert.Equal(t, StatusAccepted, k.Status())
	assert.Equal(t, 1, rec.accepted)
}

func TestStatusCallbackObservesTransitions(t *testing.T) {
	var seen []Status
	k := NewKeypad("4123", 4, Callbacks{})
	k.SetStatusCallback(func(s Status) { seen = append(seen, s) })

	push(k, "0000")
	assert.Equal(t, []Status{StatusRejected, StatusCollecting}, seen)

	seen = nil
	push(k, "4123")
	assert.Equal(t, []Status{StatusAccepted}, seen)
}

func TestLengthShorterThanPasscodeAlwaysRejects(t *testing.T) {
	// A hand-edited config can leave keypad_length out of step with the
	// passcode; entry then can never match but must keep cycling cleanly.
	rec := &recorder{}
	k := NewKeypad("56789", 4, rec.callbacks())

	push(k, "5678")
	assert.Equal(t, StatusCollecting, k.Status())
	assert.Equal(t, 1, rec.rejected)
	assert.Equal(t, 0, k.Buffered())
}
