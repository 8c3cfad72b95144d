package voice

// NoNote marks the "no key held, oscillator silent" state of the
// current-note field.
const NoNote int = -1

const (
	// BASE_NOTE is the MIDI note producing zero control voltage: A0.
	BASE_NOTE uint8 = 21

	// BASE_FREQ is the oscillator frequency at zero control voltage, in Hz.
	// One volt of control doubles it (volts-per-octave).
	BASE_FREQ float64 = 27.5

	// TICK_RATE is the effective timer tick rate used to convert a
	// frequency into an integer compare value, in Hz.
	TICK_RATE float64 = 1e6
)

const (
	// Voltage contribution scales for the three control components.
	NOTE_SCALE float64 = 1.0 / 12.0  // one volt per octave, 12-TET
	BEND_SCALE float64 = 1.0 / 32768 // 14-bit bend, +/-8192 around center
	AUX_SCALE  float64 = 1.0 / 1024  // 10-bit sample centered at 512

	// AUX_CENTER is the raw auxiliary sample producing zero voltage.
	AUX_CENTER int = 512
)

const (
	// DAC_SCALE converts Hz to a 12-bit DAC code.
	DAC_SCALE float64 = 0.32

	// PWM_SCALE converts Hz to an 8-bit PWM duty value.
	PWM_SCALE float64 = 0.02
)

const (
	// NOISE_SEED is the default shift register seed. Must be nonzero:
	// a zero register produces a constant stream forever.
	NOISE_SEED uint32 = 1

	// NOISE_TAPS is the feedback mask folded in when the shifted-out bit
	// is one. Taps 32,31,29,1 give a maximal-length sequence of 2^32-1.
	NOISE_TAPS uint32 = 0xD0000001
)

// STROBE_HOLD_US is how long the integrator reset line is held high, in
// microseconds. It bounds the highest usable note: the hold must stay
// short relative to the timer period.
const STROBE_HOLD_US = 4

// Driver is the analog hardware sink the controller writes to. A hardware
// build backs it with timer/DAC registers; the simulation backs it with
// the rig in package main.
type Driver interface {
	// SetOscillatorPeriod programs the main timer compare value:
	// the timer overflows every value+1 microseconds.
	SetOscillatorPeriod(ticks uint32)

	// SetAnalogDrive sends the encoded drive value (12-bit DAC code or
	// 8-bit PWM duty, per build variant).
	SetAnalogDrive(value uint32)

	// SetGate drives the gate line: high while a note is sounding.
	SetGate(on bool)

	// EmitResetStrobe pulses the integrator reset line high for
	// STROBE_HOLD_US microseconds.
	EmitResetStrobe()

	// ToggleSubOscillator flips the sub-oscillator square output.
	ToggleSubOscillator()

	// EmitNoiseBit drives the noise output line.
	EmitNoiseBit(high bool)
}
