package intmath

// PID is an integer PID controller with feed-forward, built for a fixed
// tick rate. Gains are whole percentages in -10000..10000 and are
// rescaled once at construction into Q7 coefficients, so kp=100 means a
// proportional gain of exactly 1. The integral uses the trapezoidal rule
// and is clamped to the output limit before its gain is applied, which
// bounds windup without a separate tuning knob.
type PID struct {
	kp, ki, kd, kff int32

	integral  int32
	prevError int32
	output    int16
}

// NewPID builds a controller from percent gains. Out-of-range gains are
// clamped, not rejected.
func NewPID(kp, ki, kd, kff int32) *PID {
	return &PID{
		kp:  fitCoef(kp),
		ki:  fitCoef(ki),
		kd:  fitCoef(kd),
		kff: fitCoef(kff),
	}
}

// Tick advances the controller one period. limit bounds both the
// integral accumulator and the final output to ±limit.
func (p *PID) Tick(err, feedfwd, limit int16) {
	e := int32(err)
	ff := int32(feedfwd)
	lim := int32(limit)

	prop := applyCoef(e, p.kp)

	p.integral += (e + p.prevError) >> 1
	p.integral = clamp32(p.integral, lim)
	integ := applyCoef(p.integral, p.ki)

	deriv := applyCoef(e-p.prevError, p.kd)
	p.prevError = e

	fwd := applyCoef(ff, p.kff)

	p.output = int16(clamp32(prop+integ+deriv+fwd, lim))
}

// Output returns the result of the last Tick.
func (p *PID) Output() int16 { return p.output }

// Reset clears the accumulated state without touching the gains.
func (p *PID) Reset() {
	p.integral = 0
	p.prevError = 0
	p.output = 0
}

func fitCoef(coef int32) int32 {
	return (clamp32(coef, 10000) << 7) / 100
}

func applyCoef(value, coef int32) int32 {
	return (value * coef) >> 7
}

func clamp32(value, limit int32) int32 {
	if value > limit {
		return limit
	}
	if value < -limit {
		return -limit
	}
	return value
}
