package motor

import "testing"

// At division 2^9 one microstep is 31 angle counts, so a ramp of 62
// counts per tick must emit exactly two steps per tick with no drift.
func TestAngle2PulseRamp(t *testing.T) {
	p := NewAngle2Pulse(9)

	angle := int16(0)
	for i := 0; i < 100; i++ {
		angle += 62
		dir, steps := p.Tick(angle)
		if dir != 0 {
			t.Fatalf("tick %d: direction = %d, want 0", i, dir)
		}
		if steps != 2 {
			t.Fatalf("tick %d: steps = %d, want 2", i, steps)
		}
	}
}

func TestAngle2PulseReverse(t *testing.T) {
	p := NewAngle2Pulse(9)

	p.Tick(62)
	dir, steps := p.Tick(0)
	if dir != 1 || steps != 2 {
		t.Errorf("reverse tick = (%d, %d), want (1, 2)", dir, steps)
	}
}

// The direction pin must not chatter between movements.
func TestAngle2PulseHoldsDirectionWhenIdle(t *testing.T) {
	p := NewAngle2Pulse(9)

	p.Tick(62)
	p.Tick(0)
	dir, steps := p.Tick(0)
	if steps != 0 {
		t.Fatalf("idle tick emitted %d steps", steps)
	}
	if dir != 1 {
		t.Errorf("idle direction = %d, want last moving direction 1", dir)
	}
}

// Sub-microstep motion accumulates across ticks instead of being lost.
func TestAngle2PulseCarriesRemainder(t *testing.T) {
	p := NewAngle2Pulse(9)

	total := int16(0)
	angle := int16(0)
	for i := 0; i < 31; i++ {
		angle += 10
		_, steps := p.Tick(angle)
		total += steps
	}
	// 310 counts of travel at 31 counts per microstep.
	if total != 10 {
		t.Errorf("accumulated %d steps over 310 counts, want 10", total)
	}
}

func TestAngle2PulseMicrostepCap(t *testing.T) {
	if got, want := ustepSize(20), ustepSize(9); got != want {
		t.Errorf("division above cap = %d, want %d", got, want)
	}
	if got := ustepSize(0); got != 16383 {
		t.Errorf("full step size = %d, want 16383", got)
	}
}
