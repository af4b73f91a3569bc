package motor

import "testing"

func pulseMotor() Motor {
	m := NewMotor(1000)
	m.PoleType = TypeStepper
	m.Connection = PatternABCD
	return m
}

func TestPulseDriverTick(t *testing.T) {
	d := NewPulseDriver(pulseMotor(), ModeVoltageAB, 9)
	d.Enable(true)

	out := d.TickControl(62, 123, 30000)
	want := [4]int16{1, 0, 2, 123}
	if out != want {
		t.Errorf("lines = %v, want [enable dir steps ref] %v", out, want)
	}
	if d.Output() != want {
		t.Errorf("Output() = %v, want %v", d.Output(), want)
	}
}

func TestPulseDriverEnableLine(t *testing.T) {
	d := NewPulseDriver(pulseMotor(), ModeVoltageAB, 9)

	if out := d.TickControl(0, 0, 30000); out[0] != 0 {
		t.Errorf("enable line high before Enable: %v", out)
	}
	d.Enable(true)
	if out := d.TickControl(0, 0, 30000); out[0] != 1 {
		t.Errorf("enable line low after Enable: %v", out)
	}
}

func TestPulseDriverFixedConfiguration(t *testing.T) {
	d := NewPulseDriver(pulseMotor(), ModeVoltageAB, 9)

	if d.Calibrate() {
		t.Error("pulse driver claims to calibrate")
	}
	if !d.Ready() {
		t.Error("pulse driver not ready")
	}
	if !d.SetMotorType(TypeStepper) || d.SetMotorType(TypeBLDC) {
		t.Error("SetMotorType must only accept the wired topology")
	}
	if !d.SetControlMode(ModeVoltageAB) || d.SetControlMode(ModeCurrentAB) {
		t.Error("SetControlMode must only accept the wired mode")
	}
	if a, b := d.TickCurrent([4]int16{1, 2, 3, 4}); a != 0 || b != 0 {
		t.Errorf("TickCurrent = (%d, %d), want zeros", a, b)
	}
}
