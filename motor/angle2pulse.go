package motor

// Angle2Pulse converts a stream of target angles into step counts and a
// direction flag for an external step/dir driver. Angle deltas feed an
// error accumulator; whole microsteps are emitted with rounding and the
// remainder is carried over, so no motion is lost to quantization.
type Angle2Pulse struct {
	ustep     int32
	prevAngle int16
	err       int32
	steps     int16
	direction bool
}

// NewAngle2Pulse builds a converter emitting 2^ustepPow microsteps per
// full step (four full steps per electrical turn).
func NewAngle2Pulse(ustepPow uint16) *Angle2Pulse {
	return &Angle2Pulse{ustep: ustepSize(ustepPow)}
}

// ustepSize caps the division at 1/512 to keep one microstep well above
// the rounding granularity.
func ustepSize(ustepPow uint16) int32 {
	if ustepPow > 9 {
		ustepPow = 9
	}
	return int32(uint16(0xFFFF) >> (2 + ustepPow))
}

// SetMicrostep changes the microstep division.
func (p *Angle2Pulse) SetMicrostep(ustepPow uint16) {
	p.ustep = ustepSize(ustepPow)
}

// Tick accumulates the angle change since the previous call and returns
// the direction (0 or 1) and step count to emit this period.
func (p *Angle2Pulse) Tick(angle int16) (int16, int16) {
	p.err += int32(angle - p.prevAngle)
	p.prevAngle = angle

	negative := p.err < 0

	abs := p.err
	if negative {
		abs = -abs
	}
	stepShift := (abs + p.ustep>>1) / p.ustep
	angleShift := stepShift * p.ustep

	// Remove the emitted angle from the accumulator, sign matching the
	// travel direction.
	if negative {
		p.err += angleShift
	} else {
		p.err -= angleShift
	}

	p.steps = int16(stepShift)
	// Hold the direction pin when idle so it does not chatter.
	if stepShift > 0 {
		p.direction = negative
	}

	dir := int16(0)
	if p.direction {
		dir = 1
	}
	return dir, p.steps
}
