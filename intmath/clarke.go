package intmath

// sqrt(3)/2 in u0.16 format.
const sqrt3Div2 = 56755

// Clarke projects three balanced phase values onto the two-axis
// alpha/beta frame. Inputs and outputs are i1.15.
func Clarke(a, b, c int16) (alpha, beta int16) {
	alpha = a
	beta = int16(((int32(b) - int32(c)) * sqrt3Div2) >> 16)
	return alpha, beta
}

// InverseClarke expands an alpha/beta vector, given as (sin, cos), into
// three phase values 120 degrees apart. Results are widened to int32 so
// the SVPWM stage can offset them without clipping.
func InverseClarke(sin, cos int16) (a, b, c int32) {
	a = int32(sin)
	half := -(int32(sin) >> 1)
	spread := (sqrt3Div2 * int32(cos)) >> 16
	b = half + spread
	c = half - spread
	return a, b, c
}
