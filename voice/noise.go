package voice

// Noise is a 32-bit Galois linear feedback shift register clocked by the
// secondary timer, one output bit per tick. With the NOISE_TAPS feedback
// the sequence is maximal length: 2^32-1 ticks before repeating, and the
// register can never reach the all-zero lockup state from a nonzero seed.
type Noise struct {
	state uint32

	drv Driver
}

func NewNoise(drv Driver) *Noise {
	n := &Noise{drv: drv}
	n.Reset(NOISE_SEED)
	return n
}

// Reset reseeds the register. A zero seed would stick the output at a
// constant level forever, so it is coerced to the default seed.
func (n *Noise) Reset(seed uint32) {
	if seed == 0 {
		seed = NOISE_SEED
	}
	n.state = seed
}

// Tick emits the register's least significant bit and advances it:
// shift right, and fold the taps back in when the shifted-out bit was one.
func (n *Noise) Tick() {
	bit := n.state & 1
	n.drv.EmitNoiseBit(bit == 1)

	n.state >>= 1
	if bit != 0 {
		n.state ^= NOISE_TAPS
	}
}

// State returns the current register value. Never zero.
func (n *Noise) State() uint32 {
	return n.state
}
