package voice

import "testing"

func assert[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Fatalf("assertion failed: got = %v want %v", got, want)
	}
}

func TestNoteOnTakesPriority(t *testing.T) {
	k := NewKeyTracker()

	assert(t, k.NoteOn(60), uint8(60))
	assert(t, k.NoteOn(52), uint8(52)) // a lower key still takes over
	assert(t, k.Held(60), true)
	assert(t, k.Held(52), true)
}

func TestNoteOffRepriority(t *testing.T) {
	t.Run("release top returns to lower", func(t *testing.T) {
		k := NewKeyTracker()
		k.NoteOn(60)
		k.NoteOn(64)
		assert(t, k.NoteOff(64, 64), 60)
	})

	t.Run("release non-sounding key changes nothing", func(t *testing.T) {
		k := NewKeyTracker()
		k.NoteOn(60)
		k.NoteOn(64)
		assert(t, k.NoteOff(60, 64), 64)
	})

	t.Run("release last key silences", func(t *testing.T) {
		k := NewKeyTracker()
		k.NoteOn(60)
		assert(t, k.NoteOff(60, 60), NoNote)
	})

	t.Run("highest of several wins", func(t *testing.T) {
		k := NewKeyTracker()
		k.NoteOn(48)
		k.NoteOn(72)
		k.NoteOn(60)
		k.NoteOn(127)
		assert(t, k.NoteOff(127, 127), 72)
	})
}

func TestNoteOffUnheldIsIdempotent(t *testing.T) {
	k := NewKeyTracker()
	k.NoteOn(60)

	// Releasing a key that was never held only clears its entry.
	assert(t, k.NoteOff(64, 60), 60)
	assert(t, k.NoteOff(64, 60), 60)
	assert(t, k.Held(60), true)
}

func TestHighestScansFullRange(t *testing.T) {
	k := NewKeyTracker()
	assert(t, k.Highest(), NoNote)

	k.NoteOn(0)
	assert(t, k.Highest(), 0)
	k.NoteOn(127)
	assert(t, k.Highest(), 127)
}
