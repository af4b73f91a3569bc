// Package analog conditions the raw ADC side of the control loop:
// supply-voltage tracking, VREF-based channel correction and the
// double-buffered snapshot that hands coherent input frames to the
// controller.
package analog

import "tunepulse/intmath"

// SupplyVoltage filters raw supply ADC readings and scales them to
// millivolts. The normalized value is the filter output halved into the
// positive int16 range, ready for the PWM full-scale computation.
type SupplyVoltage struct {
	filter *intmath.LPF
	maxMV  int32
	norm   int16
	mv     int32
}

// NewSupplyVoltage builds a tracker with the given filter strength and
// the supply voltage in millivolts that corresponds to full ADC scale.
func NewSupplyVoltage(alpha uint8, maxSupplyMV int32) *SupplyVoltage {
	return &SupplyVoltage{
		filter: intmath.NewLPF(0, alpha),
		maxMV:  maxSupplyMV,
	}
}

// Tick processes one raw ADC reading and returns the normalized voltage.
func (s *SupplyVoltage) Tick(adc uint16) int16 {
	s.filter.Tick(adc)
	s.norm = int16(s.filter.Output() >> 1)
	s.mv = intmath.NormToValue(s.norm, s.maxMV)
	return s.norm
}

// Norm returns the normalized supply voltage (0..32767).
func (s *SupplyVoltage) Norm() int16 { return s.norm }

// Millivolts returns the filtered supply voltage in mV.
func (s *SupplyVoltage) Millivolts() int32 { return s.mv }

// MaxMillivolts returns the configured full-scale voltage.
func (s *SupplyVoltage) MaxMillivolts() int32 { return s.maxMV }

// InWindow reports whether the filtered voltage is inside the allowed
// operating band.
func (s *SupplyVoltage) InWindow(minMV, maxMV int32) bool {
	return s.mv >= minMV && s.mv <= maxMV
}
