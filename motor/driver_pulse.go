package motor

// PulseDriver targets an external step/dir stepper driver instead of a
// directly driven power stage. The channel array carries the interface
// lines rather than duties: [enable, direction, step count, spare].
type PulseDriver struct {
	motor  Motor
	mode   ControlMode
	pulses *Angle2Pulse
	status Status
	enable int16
	out    [4]int16
}

// NewPulseDriver builds a driver with the given microstep division.
func NewPulseDriver(m Motor, mode ControlMode, ustepPow uint16) *PulseDriver {
	return &PulseDriver{
		motor:  m,
		mode:   mode,
		pulses: NewAngle2Pulse(ustepPow),
		status: StatusReady,
	}
}

// TickControl converts the commanded angle into step pulses. The b
// component is passed through on the spare channel for drivers with an
// analog current reference.
func (d *PulseDriver) TickControl(a, b, supply int16) [4]int16 {
	if d.status == StatusError {
		a, b = 0, 0
	}
	dir, steps := d.pulses.Tick(a)
	d.out = [4]int16{d.enable, dir, steps, b}
	return d.out
}

// TickCurrent has no shunt hardware behind it on a pulse interface.
func (d *PulseDriver) TickCurrent(currents [4]int16) (int16, int16) { return 0, 0 }

// Calibrate is a no-op: the external driver owns commutation.
func (d *PulseDriver) Calibrate() bool { return false }

// Enable drives the enable line.
func (d *PulseDriver) Enable(on bool) {
	if on {
		d.enable = 1
	} else {
		d.enable = 0
	}
}

// Ready reports normal operation.
func (d *PulseDriver) Ready() bool { return d.status == StatusReady }

// Current is always zero for a pulse interface.
func (d *PulseDriver) Current() (int16, int16) { return 0, 0 }

// Output returns the last computed interface lines.
func (d *PulseDriver) Output() [4]int16 { return d.out }

// SetMotorType only accepts topologies an external step/dir driver can
// run.
func (d *PulseDriver) SetMotorType(t Type) bool { return t == d.motor.PoleType }

// SetPhasePattern is fixed by the external driver wiring.
func (d *PulseDriver) SetPhasePattern(p PhasePattern) bool { return p == d.motor.Connection }

// SetControlMode is fixed at construction for a pulse interface.
func (d *PulseDriver) SetControlMode(m ControlMode) bool { return m == d.mode }

// SetMicrostep changes the microstep division.
func (d *PulseDriver) SetMicrostep(ustepPow uint16) { d.pulses.SetMicrostep(ustepPow) }
