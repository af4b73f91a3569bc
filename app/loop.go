// Package app ties the hardware interfaces to the control pipeline: it
// owns the per-tick schedule and moves data between the ADC, the
// encoder, the controller and the PWM output.
package app

import (
	"fmt"

	"tunepulse/analog"
	"tunepulse/hal"
	"tunepulse/motor"
)

// CommandMode selects what the loop drives toward.
type CommandMode uint8

const (
	// CommandCurrent holds a constant current command.
	CommandCurrent CommandMode = iota
	// CommandPosition closes the position loop on a target.
	CommandPosition
)

// Loop alternates two half-rate phases, mirroring how the peripherals
// share the control period on hardware: one tick reads the encoder and
// runs the controller, the next samples the ADC burst. The input dump
// guarantees the controller always consumes a coherent frame assembled
// from both phases.
type Loop struct {
	sensor hal.AngleSensor
	source hal.AnalogSource
	pwm    hal.PWMOutput

	ctl  *motor.Controller
	corr *analog.Correction
	dump *analog.Dump

	analogPhase bool
	mode        CommandMode
	currentMA   int32
	target      int32

	log hal.Logger
}

// NewLoop wires the loop. corr may be built from either VRefCalibrated
// or VRefApproximated depending on what the board provides.
func NewLoop(sensor hal.AngleSensor, source hal.AnalogSource, pwm hal.PWMOutput,
	ctl *motor.Controller, corr *analog.Correction, log hal.Logger) *Loop {
	return &Loop{
		sensor: sensor,
		source: source,
		pwm:    pwm,
		ctl:    ctl,
		corr:   corr,
		dump:   analog.NewDump(analog.FieldsAll),
		log:    log,
	}
}

// SetCurrent switches to a constant current command in mA.
func (l *Loop) SetCurrent(ma int32) {
	l.mode = CommandCurrent
	l.currentMA = ma
}

// SetPosition switches to closed-loop position control on the target.
func (l *Loop) SetPosition(target int32) {
	l.mode = CommandPosition
	l.target = target
}

// Controller exposes the underlying controller for status queries.
func (l *Loop) Controller() *motor.Controller { return l.ctl }

// Tick runs one half-rate phase. Call it once per timer period.
func (l *Loop) Tick() error {
	if l.analogPhase {
		err := l.tickAnalog()
		l.analogPhase = false
		return err
	}
	err := l.tickControl()
	l.analogPhase = true
	return err
}

// tickControl reads the encoder and, once a complete input frame is
// available, runs the controller and applies the duties.
func (l *Loop) tickControl() error {
	angle, err := l.sensor.ReadRawAngle()
	if err != nil {
		return fmt.Errorf("encoder read: %w", err)
	}
	l.dump.SetAngleRaw(angle)

	if !l.dump.Updated() {
		return nil
	}
	in := l.dump.Get()

	var out [4]int16
	switch l.mode {
	case CommandPosition:
		out = l.ctl.TickPosition(l.target, in)
	default:
		out = l.ctl.Tick(l.currentMA, in)
	}

	if err := l.pwm.Apply(out); err != nil {
		return fmt.Errorf("pwm apply: %w", err)
	}
	return nil
}

// tickAnalog samples the ADC burst, compensates it against the live
// reference and stores it for the next control tick.
func (l *Loop) tickAnalog() error {
	ch, err := l.source.ReadChannels()
	if err != nil {
		return fmt.Errorf("adc read: %w", err)
	}
	l.corr.Tick(ch, ch[hal.ChVRef])

	l.dump.SetCurrentADC(l.corr.Currents())
	l.dump.SetSupplyADC(l.corr.Supply())
	l.dump.SetTemperADC(l.corr.Temper())
	return nil
}
