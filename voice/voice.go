package voice

// Voice is the top-level controller for one monophonic voice. It owns the
// key tracker, the pitch mapper, the two timer-driven generators, the
// gate line and the current-note state, and is the only writer of all of
// them. MIDI-side entry points (NoteOn, NoteOff, PitchBend, AuxSample)
// run on the event path; OscOverflow and NoiseTick run on the two timer
// paths and touch disjoint state, so the only cross-path resource is the
// period register inside the Driver.
type Voice struct {
	keys  *KeyTracker
	pitch *Pitch
	pulse *PulseGen
	noise *Noise

	current int

	drv Driver
}

// ----------------------------------------------------------------------------
// Constructor.
// ----------------------------------------------------------------------------
func NewVoice(drv Driver, enc DriveEncoder) *Voice {
	v := &Voice{
		keys:    NewKeyTracker(),
		pitch:   NewPitch(drv, enc),
		pulse:   NewPulseGen(drv),
		noise:   NewNoise(drv),
		current: NoNote,
		drv:     drv,
	}
	return v
}

func (v *Voice) Reset() {
	v.keys.Reset()
	v.pulse.Reset()
	v.noise.Reset(NOISE_SEED)
	v.current = NoNote
	v.drv.SetGate(false)
}

// SeedNoise reseeds the noise register (nonzero seeds only; zero falls
// back to the default).
func (v *Voice) SeedNoise(seed uint32) {
	v.noise.Reset(seed)
}

// NoteOn records the key as held and unconditionally retunes to it: a new
// key press always takes priority over whatever is sounding.
func (v *Voice) NoteOn(note uint8) {
	v.sound(v.keys.NoteOn(note))
}

// NoteOff records the key as released. If it was the sounding note, the
// highest remaining held key takes over exactly as a fresh NoteOn would;
// with no keys left the gate drops and the voice falls silent. Releasing
// an already-released key changes nothing.
func (v *Voice) NoteOff(note uint8) {
	next := v.keys.NoteOff(note, v.current)

	if next == NoNote {
		v.current = NoNote
		v.drv.SetGate(false)
		return
	}

	if next != v.current {
		v.sound(uint8(next))
	}
}

// PitchBend updates the bend voltage and re-drives the oscillator. The
// gate and held-key set are untouched, and the bend applies even while no
// note sounds, pre-staging the pitch of the next note.
func (v *Voice) PitchBend(bend int16) {
	v.pitch.SetBend(bend)
	v.pitch.Recompute()
}

// AuxSample feeds one polled auxiliary-control sample (raw 10-bit,
// center 512) into the third voltage component and re-drives.
func (v *Voice) AuxSample(raw uint16) {
	v.pitch.SetAux(raw)
	v.pitch.Recompute()
}

// sound retunes the voice to note and asserts the gate. Shared by NoteOn
// and the note-off re-priority path, which must not re-mark the held set.
func (v *Voice) sound(note uint8) {
	v.pitch.SetNote(note)
	v.pitch.Recompute()
	v.drv.SetGate(true)
	v.current = int(note)
}

// OscOverflow runs on every main timer overflow.
func (v *Voice) OscOverflow() {
	v.pulse.Overflow()
}

// NoiseTick runs on every secondary (fixed-rate) timer overflow.
func (v *Voice) NoiseTick() {
	v.noise.Tick()
}

// Current returns the sounding note, or NoNote while silent.
func (v *Voice) Current() int {
	return v.current
}

// Pitch exposes the mapper for the front end's readbacks.
func (v *Voice) Pitch() *Pitch {
	return v.pitch
}
