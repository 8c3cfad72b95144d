package voice

// PulseGen derives the integrator reset strobe and the sub-oscillator
// square from the main timer overflow. The timer's own output pin carries
// the primary square wave and overflows twice per oscillator period
// (rising and falling edge), so both derived signals fire on every second
// overflow only.
type PulseGen struct {
	// secondHalf is the toggle parity: false = waiting for the first
	// half-period, true = waiting for the second.
	secondHalf bool

	drv Driver
}

func NewPulseGen(drv Driver) *PulseGen {
	g := &PulseGen{drv: drv}
	return g
}

func (g *PulseGen) Reset() {
	g.secondHalf = false
}

// Overflow runs on every main timer overflow. It executes at the
// oscillator's fundamental rate (several kHz at the top of the keyboard)
// and must return before the next overflow; the strobe hold inside the
// driver is the limiting delay.
func (g *PulseGen) Overflow() {
	if !g.secondHalf {
		g.secondHalf = true
		return
	}

	g.secondHalf = false
	g.drv.EmitResetStrobe()
	g.drv.ToggleSubOscillator()
}
