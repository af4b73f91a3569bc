package motor

import (
	"tunepulse/analog"
	"tunepulse/encoder"
	"tunepulse/hal"
	"tunepulse/intmath"
	"tunepulse/motor/calibration"
)

// PIDGains configures the closed-loop position controller. Gains are
// whole percentages (100 = gain of 1).
type PIDGains struct {
	Kp, Ki, Kd, Kff int32
	Limit           int16
}

// Config assembles everything the controller needs at construction.
type Config struct {
	Motor     Motor
	Frequency uint16

	// FilterAlpha smooths the encoder angle (0 disables).
	FilterAlpha uint8
	// Probes describes the current-sense hardware.
	Probes Probes
	// SupplyMinMV/SupplyMaxMV bound the acceptable supply voltage.
	SupplyMinMV int32
	SupplyMaxMV int32
	// PID drives TickPosition; ignored for plain Tick.
	PID PIDGains
}

// supplyFilterAlpha matches the slow supply smoothing of the ADC front
// end; supply moves far slower than position.
const supplyFilterAlpha = 200

// supplyCheckTicks delays the supply sanity log until the filter has
// settled.
const supplyCheckTicks = 100

// Controller is the per-tick orchestrator: it feeds encoder samples to
// the position tracker, runs self-calibration until the electrical
// angle mapping is known, then commutates using corrected angles. It
// starts in StatusCalibrating and reaches StatusReady on a validated
// calibration; any calibration failure is terminal StatusError with the
// drive amplitude forced to zero.
type Controller struct {
	driver     *PWMDriver
	calibrator *calibration.Calibrator
	tracker    *encoder.Tracker
	supply     *analog.SupplyVoltage
	pid        *intmath.PID

	cfg       Config
	status    Status
	angleEl   uint16
	amplitude int16
	supCheck  int
	ticker    int32

	log hal.Logger
}

// NewController wires the full drive pipeline from a config. Zero-value
// config fields get working defaults.
func NewController(cfg Config, log hal.Logger) *Controller {
	if cfg.SupplyMinMV == 0 {
		cfg.SupplyMinMV = 8000
	}
	if cfg.SupplyMaxMV == 0 {
		cfg.SupplyMaxMV = cfg.Motor.MaxSupplyMV
	}
	if cfg.PID.Limit == 0 {
		cfg.PID.Limit = 32767
	}

	driver := NewPWMDriver(cfg.Motor, ModeCurrentAB, cfg.Probes)
	driver.setStatus(StatusCalibrating)

	return &Controller{
		driver:     driver,
		calibrator: calibration.NewCalibrator(cfg.Frequency, log),
		tracker:    encoder.NewTracker(0, cfg.Frequency, cfg.FilterAlpha),
		supply:     analog.NewSupplyVoltage(supplyFilterAlpha, cfg.Motor.MaxSupplyMV),
		pid:        intmath.NewPID(cfg.PID.Kp, cfg.PID.Ki, cfg.PID.Kd, cfg.PID.Kff),
		cfg:        cfg,
		status:     StatusCalibrating,
		supCheck:   supplyCheckTicks,
		log:        log,
	}
}

// Tick runs one open-loop control period with the commanded current in
// mA and returns the output channels.
func (c *Controller) Tick(currentMA int32, in analog.Inputs) [4]int16 {
	return c.tick(c.clampCurrent(currentMA), in)
}

// TickPosition runs one closed-loop period toward the target multi-turn
// position, deriving the current command from the PID.
func (c *Controller) TickPosition(target int32, in analog.Inputs) [4]int16 {
	err := target - c.tracker.Position()
	if err > 32767 {
		err = 32767
	} else if err < -32767 {
		err = -32767
	}
	c.pid.Tick(int16(err), 0, c.cfg.PID.Limit)
	return c.tick(c.clampCurrent(int32(c.pid.Output())), in)
}

func (c *Controller) tick(amplitude int16, in analog.Inputs) [4]int16 {
	c.tracker.Tick(in.AngleRaw)
	sup := c.supply.Tick(in.SupplyADC)
	c.amplitude = amplitude

	switch c.status {
	case StatusReady:
		c.ticker++
		_, angleEl := c.calibrator.Correction(c.tracker.Angle())
		c.angleEl = angleEl

	case StatusError:
		c.amplitude = 0

	case StatusCalibrating:
		if c.supCheck > 0 {
			c.supCheck--
			if c.supCheck == 0 {
				if !c.supply.InWindow(c.cfg.SupplyMinMV, c.cfg.SupplyMaxMV) {
					c.log.Warnf("supply out of range: %dmV, expected %d..%dmV",
						c.supply.Millivolts(), c.cfg.SupplyMinMV, c.cfg.SupplyMaxMV)
				} else {
					c.log.Infof("supply ok: %dmV", c.supply.Millivolts())
				}
			}
		}
		c.angleEl = c.calibrator.Tick(c.tracker.Position())
		switch {
		case c.calibrator.Ready():
			c.status = StatusReady
			c.driver.setStatus(StatusReady)
			c.pid.Reset()
			c.log.Infof("calibration complete, entering normal run")
		case c.calibrator.Failed():
			c.status = StatusError
			c.driver.setStatus(StatusError)
		}
	}

	return c.driver.TickControl(int16(c.angleEl), c.amplitude, sup)
}

func (c *Controller) clampCurrent(ma int32) int16 {
	if max := c.cfg.Motor.MaxCurrentMA; max > 0 {
		if ma > max {
			ma = max
		} else if ma < -max {
			ma = -max
		}
	}
	if ma > 32767 {
		ma = 32767
	} else if ma < -32767 {
		ma = -32767
	}
	return int16(ma)
}

// Status returns the controller state.
func (c *Controller) Status() Status { return c.status }

// Ready reports normal operation.
func (c *Controller) Ready() bool { return c.status == StatusReady }

// Output returns the last computed channels.
func (c *Controller) Output() [4]int16 { return c.driver.Output() }

// Driver exposes the underlying PWM driver for mode changes.
func (c *Controller) Driver() *PWMDriver { return c.driver }

// Position returns the tracked multi-turn position.
func (c *Controller) Position() int32 { return c.tracker.Position() }

// Speed returns the tracked speed in counts per second.
func (c *Controller) Speed() int32 { return c.tracker.Speed() }

// SupplyMillivolts returns the filtered supply voltage.
func (c *Controller) SupplyMillivolts() int32 { return c.supply.Millivolts() }

// ElectricalAngle returns the last commutation angle.
func (c *Controller) ElectricalAngle() uint16 { return c.angleEl }
