package encoder

import "tunepulse/intmath"

// Tracker maintains an absolute multi-turn position from wrapped angle
// samples. Each sample is low-pass filtered on the circle, then the top
// two angle bits are watched for a 3<->0 sector jump, which is the only
// transition that crosses the zero point in one tick as long as the
// shaft moves less than a quarter turn per sample. The rotation count
// and the filtered angle combine into a single int32 position.
type Tracker struct {
	filter     *intmath.LPF
	speed      *SpeedEstimator
	angle      intmath.Angle
	rotations  int16
	position   int32
	prevSector int16
}

// NewTracker starts tracking at the given raw angle. alpha is the filter
// strength (0 disables filtering), freq the tick rate in Hz.
func NewTracker(raw uint16, freq uint16, alpha uint8) *Tracker {
	t := &Tracker{
		filter:     intmath.NewLPF(raw, alpha),
		angle:      intmath.Angle(raw),
		prevSector: int16(intmath.Angle(raw).Sector()),
	}
	t.position = int32(raw)
	t.speed = NewSpeedEstimator(t.position, freq)
	return t
}

// Tick ingests one raw angle sample and returns the new position.
func (t *Tracker) Tick(raw uint16) int32 {
	t.angle = intmath.Angle(t.filter.TickWrap(raw))

	sector := int16(t.angle.Sector())
	diff := t.prevSector - sector
	t.prevSector = sector
	switch diff {
	case 3:
		t.rotations++
	case -3:
		t.rotations--
	}

	t.position = int32(uint32(t.angle)) + int32(t.rotations)<<16
	t.speed.Tick(t.position)
	return t.position
}

// Angle returns the filtered angle within the current turn.
func (t *Tracker) Angle() uint16 { return uint16(t.angle) }

// Rotations returns the signed full-turn count.
func (t *Tracker) Rotations() int16 { return t.rotations }

// Position returns the combined multi-turn position.
func (t *Tracker) Position() int32 { return t.position }

// Speed returns the estimate in counts per second.
func (t *Tracker) Speed() int32 { return t.speed.Speed() }

// SetAlpha changes the angle filter strength.
func (t *Tracker) SetAlpha(alpha uint8) { t.filter.SetAlpha(alpha) }

// Accumulator integrates raw angle deltas into a multi-turn position
// without filtering or explicit zero-cross bookkeeping: the int16
// reinterpretation of the uint16 difference picks the short way around
// the circle, so wrap handling falls out of the arithmetic. Used where
// raw, lag-free position matters more than noise, such as during
// calibration sweeps.
type Accumulator struct {
	position int32
}

// NewAccumulator starts at the given raw angle.
func NewAccumulator(raw uint16) *Accumulator {
	return &Accumulator{position: int32(raw)}
}

// Tick folds one raw sample into the accumulated position.
func (a *Accumulator) Tick(raw uint16) int32 {
	diff := intmath.Angle(raw).Dist(intmath.Angle(uint16(a.position)))
	a.position += int32(diff)
	return a.position
}

// Position returns the accumulated multi-turn position.
func (a *Accumulator) Position() int32 { return a.position }

// Angle returns the in-turn component.
func (a *Accumulator) Angle() uint16 { return uint16(a.position) }

// Rotations returns the full-turn component.
func (a *Accumulator) Rotations() int16 { return int16(a.position >> 16) }

// Reset rebases the accumulator, for example on an index pulse.
func (a *Accumulator) Reset() { a.position = 0 }
