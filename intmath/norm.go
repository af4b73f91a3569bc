package intmath

// Normalized values are int16 where 32767 maps to 64/65 of full scale;
// keeping the scale slightly above the representable maximum leaves
// headroom for overshoot without wrapping.
const normShift = 9

// NormToValue converts a normalized int16 into engineering units given
// the full-scale value (for example millivolts at maximum supply).
func NormToValue(norm int16, fullScale int32) int32 {
	scale := fullScale >> 6
	return (int32(norm) * scale) >> normShift
}

// ValueToNorm converts an engineering-unit value into the normalized
// int16 domain. A zero full scale yields zero instead of dividing.
func ValueToNorm(value, fullScale int32) int16 {
	scale := fullScale >> 6
	if scale == 0 {
		return 0
	}
	return int16((value << normShift) / scale)
}
