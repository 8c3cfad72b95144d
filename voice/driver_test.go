package voice

// fakeDriver records everything the controller writes to the hardware.
type fakeDriver struct {
	period uint32
	drive  uint32
	gate   bool

	strobes int
	toggles int
	bits    []bool

	// ops is the ordered trace of output operations, for sequence checks.
	ops []string
}

func (d *fakeDriver) SetOscillatorPeriod(ticks uint32) {
	d.period = ticks
	d.ops = append(d.ops, "period")
}

func (d *fakeDriver) SetAnalogDrive(value uint32) {
	d.drive = value
	d.ops = append(d.ops, "drive")
}

func (d *fakeDriver) SetGate(on bool) {
	d.gate = on
	if on {
		d.ops = append(d.ops, "gate+")
	} else {
		d.ops = append(d.ops, "gate-")
	}
}

func (d *fakeDriver) EmitResetStrobe() {
	d.strobes++
	d.ops = append(d.ops, "strobe")
}

func (d *fakeDriver) ToggleSubOscillator() {
	d.toggles++
	d.ops = append(d.ops, "toggle")
}

func (d *fakeDriver) EmitNoiseBit(high bool) {
	d.bits = append(d.bits, high)
}
