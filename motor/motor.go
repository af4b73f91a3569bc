// Package motor maps a two-axis drive command onto the four output
// channels of a power stage. It covers DC, two-phase stepper and
// three-phase BLDC topologies, phase-wire permutation, current-sense
// recombination, electrical-angle calibration hand-off and the per-tick
// controller that ties it all together.
package motor

// Type identifies the drive topology.
type Type uint8

const (
	TypeUndefined Type = iota
	TypeDC
	TypeStepper
	TypeBLDC
)

// String returns the config-file spelling of the motor type.
func (t Type) String() string {
	switch t {
	case TypeDC:
		return "dc"
	case TypeStepper:
		return "stepper"
	case TypeBLDC:
		return "bldc"
	default:
		return "undefined"
	}
}

// PhasePattern encodes the wiring order of the output channels, two bits
// per channel: output i is driven from logical channel (pattern>>(2i))&3.
type PhasePattern uint8

const (
	PatternNone PhasePattern = 0
	PatternABCD PhasePattern = 0b11100100
	PatternACDB PhasePattern = 0b01111000
	PatternADBC PhasePattern = 0b10011100
	PatternDCAB PhasePattern = 0b01001011
)

// ControlMode selects how the two command components are interpreted.
type ControlMode uint8

const (
	// ModeVoltageAB drives the (sin, cos) voltage vector directly.
	ModeVoltageAB ControlMode = iota
	// ModeCurrentAB takes an electrical angle and a current amplitude in
	// mA; the driver converts the amplitude to a voltage against the
	// winding resistance and present supply.
	ModeCurrentAB
)

// Status is the coarse driver state.
type Status uint8

const (
	StatusCalibrating Status = iota
	StatusReady
	StatusError
)

// Motor carries the electrical description of the connected motor.
type Motor struct {
	// PoleCount is the number of pole pairs.
	PoleCount int
	// PoleType is the drive topology.
	PoleType Type
	// Connection is the phase wiring order.
	Connection PhasePattern
	// Direction is the positive rotation sense (+1 or -1), 0 if unknown.
	Direction int
	// ResistanceMOhm is the winding resistance in milliohms.
	ResistanceMOhm int32
	// InductanceUH is the winding inductance in microhenries.
	InductanceUH int32
	// MaxCurrentMA limits the drive current.
	MaxCurrentMA int32
	// MaxSupplyMV is the supply voltage at full ADC scale.
	MaxSupplyMV int32
}

// NewMotor returns a motor description with the given winding resistance
// and safe placeholders elsewhere. Non-positive resistance is bumped to
// 1 mOhm so Ohm's-law math never divides by zero.
func NewMotor(resistanceMOhm int32) Motor {
	if resistanceMOhm <= 0 {
		resistanceMOhm = 1
	}
	return Motor{
		PoleCount:      1,
		PoleType:       TypeUndefined,
		Connection:     PatternNone,
		ResistanceMOhm: resistanceMOhm,
		InductanceUH:   1,
		MaxCurrentMA:   1,
	}
}

// Driver is the contract between the controller and a drive topology
// backend: the PWM driver computes four duty values, the pulse driver
// emits step/dir pulses on the same channel array.
type Driver interface {
	// TickControl maps the (a, b) command onto output channels given the
	// normalized supply voltage.
	TickControl(a, b, supply int16) [4]int16
	// TickCurrent folds raw per-channel current samples into the
	// two-axis frame matching the command.
	TickCurrent(currents [4]int16) (int16, int16)
	// Calibrate requests a calibration pass; returns false if the driver
	// has nothing to calibrate.
	Calibrate() bool
	// Enable gates the power stage.
	Enable(on bool)
	// Ready reports the driver is calibrated and error free.
	Ready() bool
	// Current returns the last TickCurrent result.
	Current() (int16, int16)
	// Output returns the last TickControl result.
	Output() [4]int16
	// SetMotorType switches the drive topology; false if unsupported.
	SetMotorType(t Type) bool
	// SetPhasePattern switches the wiring order; false if unsupported.
	SetPhasePattern(p PhasePattern) bool
	// SetControlMode switches command interpretation; false if
	// unsupported.
	SetControlMode(m ControlMode) bool
}
