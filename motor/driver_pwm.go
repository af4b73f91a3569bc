package motor

import "tunepulse/intmath"

// PWMDriver maps the two-axis command onto four PWM duty channels
// through the motor and phase selectors. In ModeCurrentAB the command is
// (electrical angle, current mA): the amplitude is converted to a
// winding voltage via Ohm's law and normalized against the present
// supply so the duty stays correct while the rail sags.
type PWMDriver struct {
	motor   Motor
	mode    ControlMode
	sel     *MotorSelector
	phase   *PhaseSelector
	sense   *CurrentSense
	status  Status
	enabled bool
	out     [4]int16
}

// NewPWMDriver wires the selectors for the given motor description.
// probes describes the current-sense hardware.
func NewPWMDriver(m Motor, mode ControlMode, probes Probes) *PWMDriver {
	return &PWMDriver{
		motor:   m,
		mode:    mode,
		sel:     NewMotorSelector(m.PoleType),
		phase:   NewPhaseSelector(m.Connection),
		sense:   NewCurrentSense(probes, m.PoleType),
		status:  StatusReady,
		enabled: true,
	}
}

// TickControl computes the four duty channels for one period.
func (d *PWMDriver) TickControl(a, b, supply int16) [4]int16 {
	// Calibration drive comes from the controller and passes through;
	// only a faulted driver forces zero output.
	if d.status == StatusError {
		a, b = 0, 0
	}
	a, b = d.normalRun(a, b, supply)
	d.out = d.phase.Tick(d.sel.Tick(a, b, supply))
	if !d.enabled {
		d.out = [4]int16{intmath.Disabled, intmath.Disabled, intmath.Disabled, intmath.Disabled}
	}
	return d.out
}

func (d *PWMDriver) normalRun(a, b, supply int16) (int16, int16) {
	if d.mode == ModeVoltageAB {
		return a, b
	}
	sin, cos := intmath.SinCos(a)
	supplyMV := intmath.NormToValue(supply, d.motor.MaxSupplyMV)
	amp := currentToNorm(intmath.Voltage(int32(b), d.motor.ResistanceMOhm), supplyMV)
	return intmath.ScaleSinCos(sin, cos, amp)
}

// currentToNorm normalizes a winding voltage against the live supply,
// clamped to full scale so an undervolted rail saturates instead of
// wrapping.
func currentToNorm(mv, supplyMV int32) int16 {
	scale := supplyMV >> 6
	if scale == 0 {
		return 0
	}
	n := (mv << 9) / scale
	if n > 32767 {
		n = 32767
	} else if n < -32767 {
		n = -32767
	}
	return int16(n)
}

// TickCurrent recombines raw shunt samples into the two-axis frame.
func (d *PWMDriver) TickCurrent(currents [4]int16) (int16, int16) {
	return d.sense.Tick(currents)
}

// Calibrate flags the driver as calibrating. The electrical-angle sweep
// itself is fed in through TickControl by the controller.
func (d *PWMDriver) Calibrate() bool {
	d.status = StatusCalibrating
	return true
}

// Enable gates the power stage; disabled output is all channels high-Z.
func (d *PWMDriver) Enable(on bool) { d.enabled = on }

// Ready reports normal operation.
func (d *PWMDriver) Ready() bool { return d.status == StatusReady }

// Current returns the last recombined currents.
func (d *PWMDriver) Current() (int16, int16) { return d.sense.Current() }

// Output returns the last computed duty channels.
func (d *PWMDriver) Output() [4]int16 { return d.out }

// SetMotorType switches the drive topology on both selectors.
func (d *PWMDriver) SetMotorType(t Type) bool {
	d.motor.PoleType = t
	d.sel.SetMode(t)
	d.sense.SetMotorType(t)
	return true
}

// SetPhasePattern switches the wiring order.
func (d *PWMDriver) SetPhasePattern(p PhasePattern) bool {
	d.motor.Connection = p
	d.phase.SetPattern(p)
	return true
}

// SetControlMode switches command interpretation.
func (d *PWMDriver) SetControlMode(m ControlMode) bool {
	d.mode = m
	return true
}

// setStatus is driven by the controller as its state machine moves.
func (d *PWMDriver) setStatus(s Status) { d.status = s }

// ZeroSpanPolicy configures the BLDC zero-vector behavior.
func (d *PWMDriver) SetZeroSpanPolicy(p ZeroSpanPolicy) { d.sel.SetZeroSpanPolicy(p) }
