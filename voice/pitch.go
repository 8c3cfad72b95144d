package voice

import "math"

// DriveEncoder converts the computed oscillator frequency into the value
// the analog drive expects. Exactly one encoder is compiled into a given
// build; see drive_dac.go / drive_pwm.go in package main.
type DriveEncoder interface {
	Encode(freq float64) uint32
}

// Pitch sums three independent control-voltage components (note, pitch
// bend, auxiliary input) and programs the hardware from the result. Each
// component has a single writer; Recompute is the only reader.
type Pitch struct {
	noteV float64
	bendV float64
	auxV  float64

	freq   float64
	period uint32

	drv Driver
	enc DriveEncoder
}

// ----------------------------------------------------------------------------
// Constructor.
// ----------------------------------------------------------------------------
func NewPitch(drv Driver, enc DriveEncoder) *Pitch {
	p := &Pitch{drv: drv, enc: enc}
	return p
}

// SetNote sets the note-derived voltage: (note - BASE_NOTE)/12 volts,
// one volt per octave.
func (p *Pitch) SetNote(note uint8) {
	p.noteV = float64(int(note)-int(BASE_NOTE)) * NOTE_SCALE
}

// SetBend sets the pitch-bend voltage from a signed 14-bit bend value in
// [-8192, 8191], zero at center.
func (p *Pitch) SetBend(bend int16) {
	p.bendV = float64(bend) * BEND_SCALE
}

// SetAux sets the auxiliary-control voltage from a raw 10-bit sample,
// centered at AUX_CENTER.
func (p *Pitch) SetAux(raw uint16) {
	p.auxV = float64(int(raw)-AUX_CENTER) * AUX_SCALE
}

// Recompute folds the three components into one control voltage, maps it
// exponentially to a frequency and reprograms the hardware: the main
// timer period and the analog drive. There is no validation against
// hardware limits; this is direct analog control.
func (p *Pitch) Recompute() {
	v := p.noteV + p.bendV + p.auxV
	p.freq = BASE_FREQ * math.Exp2(v)

	// Timer compare value at a 1 MHz effective tick, zero-based.
	p.period = uint32(math.Round(TICK_RATE/p.freq)) - 1

	p.drv.SetOscillatorPeriod(p.period)
	p.drv.SetAnalogDrive(p.enc.Encode(p.freq))
}

// Freq returns the frequency computed by the last Recompute, in Hz.
func (p *Pitch) Freq() float64 {
	return p.freq
}

// Period returns the timer compare value programmed by the last Recompute.
func (p *Pitch) Period() uint32 {
	return p.period
}

// DACEncoder produces a 12-bit proportional code for an external DAC.
type DACEncoder struct{}

func (DACEncoder) Encode(freq float64) uint32 {
	return uint32(math.Round(freq*DAC_SCALE)) & 0xfff
}

// PWMEncoder produces an 8-bit duty value, clamped to [0, 255].
type PWMEncoder struct{}

func (PWMEncoder) Encode(freq float64) uint32 {
	duty := math.Round(freq * PWM_SCALE)
	if duty > 255 {
		duty = 255
	}
	if duty < 0 {
		duty = 0
	}
	return uint32(duty)
}
