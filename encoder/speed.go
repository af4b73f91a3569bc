// Package encoder turns raw absolute-angle samples into a continuous
// multi-turn position and a speed estimate. The raw angle lives on the
// uint16 circle (65536 counts per mechanical turn); positions are int32
// with the rotation count in the high half.
package encoder

import "tunepulse/intmath"

// speedWindow is the finite-difference span in ticks. Averaging over 8
// ticks trades an 8-tick reporting delay for 8x less quantization noise.
const speedWindow = 8

// SpeedEstimator derives speed in counts per second from the position
// delta across the last speedWindow ticks.
type SpeedEstimator struct {
	freq  int32
	speed int32
	ring  *intmath.Ring[int32]
}

// NewSpeedEstimator seeds the window with the initial position so the
// first estimates read zero instead of a startup spike. freq is the tick
// rate in Hz.
func NewSpeedEstimator(initial int32, freq uint16) *SpeedEstimator {
	return &SpeedEstimator{
		freq: int32(freq),
		ring: intmath.NewRing[int32](speedWindow, initial),
	}
}

// Tick records a new position sample and returns the updated estimate.
func (s *SpeedEstimator) Tick(position int32) int32 {
	oldest := s.ring.Push(position)
	s.speed = (position - oldest) * s.freq / speedWindow
	return s.speed
}

// Speed returns the last estimate in counts per second.
func (s *SpeedEstimator) Speed() int32 { return s.speed }
