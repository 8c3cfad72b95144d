package voice

import "testing"

func TestNoiseNotConstant(t *testing.T) {
	drv := &fakeDriver{}
	n := NewNoise(drv)
	n.Reset(1)

	// Regression guard against all-zero lockup: over the first 2^20
	// ticks the stream must carry both levels and the register must
	// never reach zero.
	ones := 0
	for i := 0; i < 1<<20; i++ {
		n.Tick()
		if n.State() == 0 {
			t.Fatalf("shift register reached zero after %d ticks", i+1)
		}
	}
	for _, b := range drv.bits {
		if b {
			ones++
		}
	}

	assert(t, len(drv.bits), 1<<20)
	if ones == 0 || ones == len(drv.bits) {
		t.Fatalf("noise stream is constant: %d ones of %d bits", ones, len(drv.bits))
	}
}

func TestNoiseZeroSeedCoerced(t *testing.T) {
	n := NewNoise(&fakeDriver{})
	n.Reset(0)
	assert(t, n.State(), NOISE_SEED)
}

func TestNoiseEmitsLSBThenShifts(t *testing.T) {
	drv := &fakeDriver{}
	n := NewNoise(drv)
	n.Reset(2)

	// lsb 0: emit low, plain shift.
	n.Tick()
	assert(t, drv.bits[0], false)
	assert(t, n.State(), uint32(1))

	// lsb 1: emit high, shift and fold the taps in.
	n.Tick()
	assert(t, drv.bits[1], true)
	assert(t, n.State(), NOISE_TAPS)
}
