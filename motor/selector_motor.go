package motor

import "tunepulse/intmath"

// ZeroSpanPolicy decides what a three-phase stage does when the command
// collapses to a zero-length voltage vector.
type ZeroSpanPolicy uint8

const (
	// ZeroSpanSkipOffset leaves all phases at the unshifted zero level,
	// shorting the windings for maximum braking.
	ZeroSpanSkipOffset ZeroSpanPolicy = iota
	// ZeroSpanCenter applies the usual centering offset, parking the
	// phases at half the available voltage.
	ZeroSpanCenter
)

// MotorSelector turns the two-axis command into per-channel voltages for
// the configured topology. DC uses one coil pair, steppers use two, BLDC
// goes through the inverse Clarke transform plus SVPWM centering and
// scaling against the available supply.
type MotorSelector struct {
	mode   Type
	policy ZeroSpanPolicy
	ch     [4]int16
}

// NewMotorSelector starts in the given topology with the braking
// zero-span behavior.
func NewMotorSelector(mode Type) *MotorSelector {
	return &MotorSelector{mode: mode}
}

// SetMode switches the drive topology.
func (s *MotorSelector) SetMode(mode Type) { s.mode = mode }

// SetZeroSpanPolicy selects the zero-vector behavior for BLDC mode.
func (s *MotorSelector) SetZeroSpanPolicy(p ZeroSpanPolicy) { s.policy = p }

// Tick computes the channel voltages for one period. supply is the
// normalized available voltage.
func (s *MotorSelector) Tick(a, b, supply int16) [4]int16 {
	switch s.mode {
	case TypeDC:
		s.ch[0], s.ch[1] = intmath.CoilCenter(a)
		s.ch[2] = intmath.Disabled
		s.ch[3] = intmath.Disabled
	case TypeStepper:
		s.ch[0], s.ch[1] = intmath.CoilCenter(a)
		s.ch[2], s.ch[3] = intmath.CoilCenter(b)
	case TypeBLDC:
		s.ch[0], s.ch[1], s.ch[2] = s.svpwm(a, b, supply)
		s.ch[3] = intmath.Disabled
	default:
		s.ch = [4]int16{}
	}
	return s.ch
}

// Output returns the last computed channel voltages.
func (s *MotorSelector) Output() [4]int16 { return s.ch }

// svpwm expands the (sin, cos) vector into three phases and fits them
// into the available voltage: if the vector is too long it is scaled
// down and clamped to the bottom rail, otherwise all phases are shifted
// to center the waveform in the supply window.
func (s *MotorSelector) svpwm(sin, cos, available int16) (int16, int16, int16) {
	avail := int32(available)

	a, b, c := intmath.InverseClarke(sin, cos)

	min := a
	if b < min {
		min = b
	}
	if c < min {
		min = c
	}
	max := a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}

	span := max - min
	var offset int32
	if span > avail {
		scale := (avail << 15) / span
		a = (a * scale) >> 15
		b = (b * scale) >> 15
		c = (c * scale) >> 15
		offset = -((min * scale) >> 15)
	} else {
		offset = (avail - max - min) >> 1
	}

	if span != 0 || s.policy == ZeroSpanCenter {
		a += offset
		b += offset
		c += offset
	}
	return int16(a), int16(b), int16(c)
}
