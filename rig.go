package main

import (
	"math"
	"sync/atomic"

	"yamvc/app/voice"
)

// NOISE_RATE is the secondary timer overflow rate in Hz. Fixed, never
// tied to note pitch.
const NOISE_RATE float64 = 62500.0

// SimRig stands in for the analog hardware: it implements voice.Driver,
// free-runs the two timers at microsecond resolution inside the audio
// callback, and renders the resulting ramp/sub/noise/gate signals to
// signed 16-bit samples.
//
// Two threads touch it. The MIDI path writes the period, drive and gate
// registers; the audio callback reads them while stepping the timers.
// Those three registers are atomics so the callback can never observe a
// torn period value mid-write. Everything else is owned by the callback
// alone.
type SimRig struct {
	period atomic.Uint32
	drive  atomic.Uint32
	gate   atomic.Bool

	v *voice.Voice

	// Callback-side state.
	usPerSample float64
	mainAcc     float64
	noiseAcc    float64
	oscLevel    bool
	subLevel    bool
	noiseLevel  bool
	ramp        float64
}

func NewSimRig(sampleFreq uint32) *SimRig {
	r := &SimRig{}
	r.usPerSample = 1e6 / float64(sampleFreq)

	// Idle at the base frequency until the first Recompute.
	r.period.Store(uint32(math.Round(voice.TICK_RATE/voice.BASE_FREQ)) - 1)
	return r
}

// AttachVoice wires the controller whose timer handlers the rig clocks.
func (r *SimRig) AttachVoice(v *voice.Voice) {
	r.v = v
}

// ----------------------------------------------------------------------------
// voice.Driver, MIDI-path side.
// ----------------------------------------------------------------------------

func (r *SimRig) SetOscillatorPeriod(ticks uint32) {
	r.period.Store(ticks)
}

func (r *SimRig) SetAnalogDrive(value uint32) {
	r.drive.Store(value)
}

func (r *SimRig) SetGate(on bool) {
	r.gate.Store(on)
}

// ----------------------------------------------------------------------------
// voice.Driver, timer-path side. These run inside Sample, on the audio
// callback goroutine only.
// ----------------------------------------------------------------------------

// EmitResetStrobe discharges the simulated integrator. The hardware hold
// time (voice.STROBE_HOLD_US) is below one sample period at any supported
// rate, so the discharge is instantaneous here.
func (r *SimRig) EmitResetStrobe() {
	r.ramp = 0
}

func (r *SimRig) ToggleSubOscillator() {
	r.subLevel = !r.subLevel
}

func (r *SimRig) EmitNoiseBit(high bool) {
	r.noiseLevel = high
}

// ----------------------------------------------------------------------------
// Rendering.
// ----------------------------------------------------------------------------

// Sample advances the rig by one output sample: fires any due main-timer
// overflows (toggling the timer output pin and clocking the pulse
// generator) and noise-timer ticks, charges the ramp, and mixes.
func (r *SimRig) Sample() int16 {
	us := r.usPerSample

	// Main timer: overflow every compare+1 microseconds.
	mainPeriod := float64(r.period.Load() + 1)
	r.mainAcc += us
	for r.mainAcc >= mainPeriod {
		r.mainAcc -= mainPeriod
		r.oscLevel = !r.oscLevel
		r.v.OscOverflow()
	}

	// Secondary timer, fixed rate.
	noisePeriod := 1e6 / NOISE_RATE
	r.noiseAcc += us
	for r.noiseAcc >= noisePeriod {
		r.noiseAcc -= noisePeriod
		r.v.NoiseTick()
	}

	// Integrator: full charge over one oscillator period, i.e. two timer
	// overflows, then held until the strobe discharges it.
	r.ramp += us / (2 * mainPeriod)
	if r.ramp > 1 {
		r.ramp = 1
	}

	mix := 0.0
	if r.gate.Load() {
		mix += (r.ramp - 0.5) * 0.55
		if r.oscLevel {
			mix += 0.12
		} else {
			mix -= 0.12
		}
		if r.subLevel {
			mix += 0.22
		} else {
			mix -= 0.22
		}
	}
	if r.noiseLevel {
		mix += 0.06
	} else {
		mix -= 0.06
	}

	return int16(mix * 32767 * 0.5)
}

// Period reads back the programmed main timer compare value.
func (r *SimRig) Period() uint32 {
	return r.period.Load()
}

// Drive reads back the last analog drive value.
func (r *SimRig) Drive() uint32 {
	return r.drive.Load()
}

// GateHigh reads back the gate line.
func (r *SimRig) GateHigh() bool {
	return r.gate.Load()
}
