package intmath

import "math"

// Disabled marks a channel that must not be driven at all. It propagates
// unchanged through duty mapping so the output stage can put the
// half-bridge in high-Z.
const Disabled = math.MinInt16

// CoilCenter maps a signed coil voltage reference onto two half-bridge
// duties straddling the PWM midpoint. Center alignment doubles the
// effective switching frequency, spreads heat over both half-bridges and
// only approaches 0% duty near full current rather than near zero
// current. Zero and Disabled pass through to both channels.
func CoilCenter(ref int16) (int16, int16) {
	if ref == Disabled || ref == 0 {
		return ref, ref
	}
	duty := ref >> 1
	const midpoint = math.MaxInt16 >> 1
	return midpoint + duty, midpoint - duty
}

// CoilEdge maps a signed coil voltage reference onto two edge-aligned
// duties: one channel carries the magnitude, the other stays low.
func CoilEdge(ref int16) (int16, int16) {
	if ref == Disabled || ref == 0 {
		return ref, ref
	}
	if ref < 0 {
		return 0, -ref
	}
	return ref, 0
}

// CoilCurrentDualUnipolar combines two unipolar shunt readings into one
// signed coil current.
func CoilCurrentDualUnipolar(a, b int16) int16 {
	return a - b
}

// CoilCurrentSingleBipolar passes a single bipolar shunt reading through.
func CoilCurrentSingleBipolar(c int16) int16 {
	return c
}

// CoilCurrentDualBipolar averages two bipolar shunt readings.
func CoilCurrentDualBipolar(a, b int16) int16 {
	return int16((int32(a) - int32(b)) >> 1)
}
