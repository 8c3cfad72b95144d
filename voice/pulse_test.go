package voice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPulseHalvesOverflowRate(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 101} {
		drv := &fakeDriver{}
		g := NewPulseGen(drv)

		for i := 0; i < n; i++ {
			g.Overflow()
		}

		assert(t, drv.strobes, n/2)
		assert(t, drv.toggles, n/2)
	}
}

func TestPulseAlternation(t *testing.T) {
	drv := &fakeDriver{}
	g := NewPulseGen(drv)

	// Six overflows from the initial state: the strobe+toggle pair fires
	// on the 2nd, 4th and 6th, nothing in between.
	for i := 0; i < 6; i++ {
		g.Overflow()
	}

	want := []string{"strobe", "toggle", "strobe", "toggle", "strobe", "toggle"}
	if diff := cmp.Diff(want, drv.ops); diff != "" {
		t.Fatalf("output sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestPulseReset(t *testing.T) {
	drv := &fakeDriver{}
	g := NewPulseGen(drv)

	g.Overflow() // half way through
	g.Reset()
	g.Overflow() // back to the first half: still nothing
	assert(t, drv.strobes, 0)

	g.Overflow()
	assert(t, drv.strobes, 1)
	assert(t, drv.toggles, 1)
}
