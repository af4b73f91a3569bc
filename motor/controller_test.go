package motor

import (
	"testing"

	"github.com/edaniels/golog"

	"tunepulse/analog"
)

func controllerConfig() Config {
	m := NewMotor(1000)
	m.PoleType = TypeStepper
	m.Connection = PatternABCD
	m.MaxCurrentMA = 3000
	m.MaxSupplyMV = 24000
	return Config{
		Motor:       m,
		Frequency:   10000,
		Probes:      BiABCD,
		SupplyMinMV: 8000,
		SupplyMaxMV: 24000,
		PID:         PIDGains{Kp: 200, Ki: 10, Limit: 3000},
	}
}

// plant is an ideal one-pole-pair rotor: it lands on the commanded
// electrical angle one tick later and reports it through the encoder.
type plant struct {
	prevEl uint16
	accum  int32
}

func (p *plant) frame() analog.Inputs {
	return analog.Inputs{
		AngleRaw:  uint16(p.accum),
		SupplyADC: 0xFFFF,
	}
}

func (p *plant) apply(angleEl uint16) {
	p.accum += int32(int16(angleEl - p.prevEl))
	p.prevEl = angleEl
}

func calibrate(t *testing.T, ctl *Controller, p *plant) {
	t.Helper()
	for i := 0; i < 200000; i++ {
		ctl.Tick(500, p.frame())
		p.apply(ctl.ElectricalAngle())
		if ctl.Status() != StatusCalibrating {
			return
		}
	}
	t.Fatal("controller stuck in calibration")
}

func TestControllerCalibratesToReady(t *testing.T) {
	ctl := NewController(controllerConfig(), golog.NewTestLogger(t))
	p := &plant{}

	if ctl.Status() != StatusCalibrating {
		t.Fatalf("initial status = %v, want calibrating", ctl.Status())
	}
	calibrate(t, ctl, p)
	if !ctl.Ready() {
		t.Fatalf("status = %v after calibration, want ready", ctl.Status())
	}

	// Full-scale supply ADC reads back as the configured maximum.
	if mv := ctl.SupplyMillivolts(); mv < 23900 || mv > 24000 {
		t.Errorf("supply = %dmV, want about 24000", mv)
	}
}

func TestControllerDrivesAfterCalibration(t *testing.T) {
	ctl := NewController(controllerConfig(), golog.NewTestLogger(t))
	p := &plant{}
	calibrate(t, ctl, p)
	if !ctl.Ready() {
		t.Fatal("calibration did not finish")
	}

	out := ctl.Tick(1000, p.frame())
	if out == ([4]int16{}) {
		t.Error("ready controller with current command produced no drive")
	}

	// Zero command must not drive the coils.
	if out := ctl.Tick(0, p.frame()); out != ([4]int16{}) {
		t.Errorf("zero command drove %v", out)
	}
}

func TestControllerPositionLoop(t *testing.T) {
	ctl := NewController(controllerConfig(), golog.NewTestLogger(t))
	p := &plant{}
	calibrate(t, ctl, p)
	if !ctl.Ready() {
		t.Fatal("calibration did not finish")
	}

	// At the target the error is zero, so the loop must rest.
	target := ctl.Position()
	for i := 0; i < 10; i++ {
		ctl.TickPosition(target, p.frame())
	}
	if out := ctl.Output(); out != ([4]int16{}) {
		t.Errorf("settled loop still drives %v", out)
	}
}

func TestControllerErrorCutsDrive(t *testing.T) {
	ctl := NewController(controllerConfig(), golog.NewTestLogger(t))

	// Encoder frozen at zero: calibration must fail, not finish.
	for i := 0; i < 200000 && ctl.Status() == StatusCalibrating; i++ {
		ctl.Tick(500, analog.Inputs{SupplyADC: 0xFFFF})
	}
	if ctl.Status() != StatusError {
		t.Fatalf("status = %v with a dead encoder, want error", ctl.Status())
	}

	if out := ctl.Tick(1000, analog.Inputs{SupplyADC: 0xFFFF}); out != ([4]int16{}) {
		t.Errorf("faulted controller drove %v", out)
	}
}

func TestControllerCurrentClamp(t *testing.T) {
	ctl := NewController(controllerConfig(), golog.NewTestLogger(t))
	if got := ctl.clampCurrent(1 << 20); got != 3000 {
		t.Errorf("clampCurrent high = %d, want 3000", got)
	}
	if got := ctl.clampCurrent(-(1 << 20)); got != -3000 {
		t.Errorf("clampCurrent low = %d, want -3000", got)
	}
	if got := ctl.clampCurrent(-42); got != -42 {
		t.Errorf("clampCurrent passthrough = %d, want -42", got)
	}
}
