package encoder

import "testing"

func TestSpeedEstimatorConstantRate(t *testing.T) {
	// 100 counts per tick at 1 kHz is 100000 counts per second.
	s := NewSpeedEstimator(0, 1000)
	pos := int32(0)
	var got int32
	for i := 0; i < 16; i++ {
		pos += 100
		got = s.Tick(pos)
	}
	if got != 100000 {
		t.Errorf("speed = %d, want 100000", got)
	}
}

func TestSpeedEstimatorDirection(t *testing.T) {
	s := NewSpeedEstimator(0, 1000)
	pos := int32(0)
	for i := 0; i < 16; i++ {
		pos -= 50
		s.Tick(pos)
	}
	if got := s.Speed(); got != -50000 {
		t.Errorf("speed = %d, want -50000", got)
	}
}

func TestSpeedEstimatorWindowDelay(t *testing.T) {
	s := NewSpeedEstimator(0, 1000)
	// A single step shows up in the estimate for exactly the window
	// length, then decays away.
	s.Tick(800)
	if got := s.Speed(); got != 100000 {
		t.Errorf("speed after step = %d, want 100000", got)
	}
	for i := 0; i < 7; i++ {
		s.Tick(800)
	}
	if got := s.Tick(800); got != 0 {
		t.Errorf("speed after window passed = %d, want 0", got)
	}
}
