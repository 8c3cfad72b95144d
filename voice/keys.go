package voice

// KeyTracker resolves the held MIDI keys into the single note a
// monophonic voice should sound, with highest-note priority.
type KeyTracker struct {
	held [128]bool
}

func NewKeyTracker() *KeyTracker {
	k := &KeyTracker{}
	return k
}

// ----------------------------------------------------------------------------
// Reset.
// ----------------------------------------------------------------------------
func (k *KeyTracker) Reset() {
	k.held = [128]bool{}
}

// NoteOn marks note as held and returns the note to sound: a fresh key
// press always takes over immediately, held or not.
func (k *KeyTracker) NoteOn(note uint8) uint8 {
	k.held[note&0x7f] = true
	return note
}

// NoteOff marks note as released and returns the note to sound given the
// currently sounding one. Releasing a key other than the sounding one
// changes nothing. Releasing the sounding key re-resolves priority over
// the whole table; NoNote means silence. A NoteOff for a key that was
// never held only clears its table entry.
func (k *KeyTracker) NoteOff(note uint8, sounding int) int {
	k.held[note&0x7f] = false

	if int(note) != sounding {
		return sounding
	}

	return k.Highest()
}

// Highest scans the full range low to high, overwriting as it goes, so
// the highest held note wins. Linear on 128 entries; re-priority is not
// on the audio-rate path.
func (k *KeyTracker) Highest() int {
	next := NoNote

	for n := 0; n < len(k.held); n++ {
		if k.held[n] {
			next = n
		}
	}

	return next
}

// Held reports whether note currently has an outstanding NoteOn.
func (k *KeyTracker) Held(note uint8) bool {
	return k.held[note&0x7f]
}
