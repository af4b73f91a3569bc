// Package calibration measures and corrects the mapping between encoder
// readings and the electrical angle of the motor. A sampled table built
// from a forward and a backward sweep cancels hysteresis; afterwards a
// validation pass checks the table against the ideal linear ramp and
// lookups interpolate between neighboring samples.
package calibration

import "tunepulse/hal"

// spikeThreshold is the consecutive-sample jump on the backward pass
// that marks an electrical period boundary.
const spikeThreshold = 10

// Table holds encoder samples across one mechanical revolution, taken
// at fixed electrical-angle intervals. Filling happens forward
// (FillFirst) then backward (FillSecond, averaging against the forward
// samples), so the stored values sit in the middle of the hysteresis
// loop. Check normalizes the table and verifies it forms a clean ramp;
// CorrectPos then maps raw encoder angles onto corrected ones.
type Table struct {
	samples []uint16
	size    int
	div     int

	offsetIdx    int
	offsetVal    uint16
	maxDeviation uint16

	lastFirst  int
	lastSecond uint16

	log hal.Logger
}

// NewTable allocates a table for at most capacity sample points.
func NewTable(capacity int, log hal.Logger) *Table {
	return &Table{
		samples: make([]uint16, capacity),
		div:     1,
		log:     log,
	}
}

// Reset prepares for a new calibration run. div is the number of sample
// points per electrical period.
func (t *Table) Reset(div int) {
	t.size = 0
	t.div = div
	t.offsetIdx = 0
	t.offsetVal = 0xFFFF
	t.maxDeviation = 0
	t.lastFirst = 0
	t.lastSecond = 0
}

// Size returns the number of points collected so far.
func (t *Table) Size() int { return t.size }

// MaxDeviation returns the largest ramp deviation seen by Check.
func (t *Table) MaxDeviation() uint16 { return t.maxDeviation }

// FillFirst stores a forward-sweep sample. Indices must arrive in order
// without gaps; anything else is rejected with a warning and no table
// mutation.
func (t *Table) FillFirst(idx int, val uint16) bool {
	if idx < 0 || idx >= len(t.samples) || idx < t.lastFirst || idx-t.lastFirst > 1 {
		t.log.Warnf("cal table: fill first out of sequence at %d", idx)
		return false
	}
	t.lastFirst = idx
	t.samples[idx] = val
	if idx+1 > t.size {
		t.size = idx + 1
	}
	return true
}

// FillSecond folds a backward-sweep sample into the table by averaging
// it with the forward sample at the same index, centering out
// hysteresis. Every div-th index is a zero-electrical-angle candidate
// and the smallest one becomes the table offset. The return flag goes
// true at the sweep start index and on a deviation spike, both of which
// mark an electrical period boundary; the caller drives completion by
// index.
func (t *Table) FillSecond(idx int, val uint16) bool {
	if idx < 0 || idx >= len(t.samples) {
		t.log.Warnf("cal table: fill second out of range at %d", idx)
		return false
	}

	dif := int16(val - t.samples[idx])
	mid := t.samples[idx] + uint16(dif/2)
	t.samples[idx] = mid

	if idx%t.div == 0 && mid <= t.offsetVal {
		t.offsetVal = mid
		t.offsetIdx = idx
	}

	if idx+1 == t.size {
		t.lastSecond = mid
		return true
	}
	spike := int16(t.lastSecond - mid)
	t.lastSecond = mid
	return spike > spikeThreshold
}

// Check normalizes the table against the offset and validates every
// point against the ideal linear ramp. Deviation at or above one average
// step is a failed calibration.
func (t *Table) Check() bool {
	if t.size == 0 {
		t.log.Errorf("cal table: check on empty table")
		return false
	}
	avgStep := uint16(0xFFFF / t.size)
	t.maxDeviation = 0
	for i := 0; i < t.size; i++ {
		val := t.samples[i] - t.offsetVal
		correctedIdx := ((t.size + i) - t.offsetIdx) % t.size
		deviation := absDeviation(val, correctedIdx, t.size)

		t.samples[i] = val
		if deviation > t.maxDeviation {
			t.maxDeviation = deviation
		}
		if deviation >= avgStep {
			t.log.Errorf("cal table: step deviation too high (avg step %d, deviation %d)", avgStep, deviation)
			return false
		}
	}
	t.log.Infof("cal table: valid (offset %d at %d, max deviation %d)", t.offsetVal, t.offsetIdx, t.maxDeviation)
	return true
}

// valByIdx reads the table relative to the offset index, circularly.
func (t *Table) valByIdx(index int) uint16 {
	return t.samples[(t.offsetIdx+index)%t.size]
}

// CorrectPos maps a raw encoder angle onto the corrected angle and the
// angle within one electrical period. It rebases the position onto the
// normalized table, walks at most 8 segments from the estimated index
// to find the bracketing pair and interpolates between them.
func (t *Table) CorrectPos(position uint16) (corrected, mechEl uint16) {
	if t.size == 0 {
		return position, 0
	}
	realPos := position - t.offsetVal

	idx := int(uint32(realPos-t.maxDeviation)) * t.size >> 16
	result := uint16(0xFFFF)

	calPos1 := t.valByIdx(idx)
	idlPos1 := ideal(idx, t.size)
	for n := 0; n < 8; n++ {
		idx = (idx + 1) % t.size
		calPos2 := t.valByIdx(idx)
		idlPos2 := ideal(idx, t.size)

		diff1 := int16(realPos - calPos1)
		diff2 := int16(realPos - calPos2)
		if diff1 >= 0 && diff2 < 0 {
			result = interpolate(calPos1, idlPos1, calPos2, idlPos2, realPos)
			break
		}
		calPos1, idlPos1 = calPos2, idlPos2
	}

	corrected = result + t.offsetVal
	mechEl = uint16(uint32(result) * uint32(t.size) / uint32(t.div))
	return corrected, mechEl
}

// ideal is the perfect ramp value at index i of a range-point table.
func ideal(i, rng int) uint16 {
	return uint16(0xFFFF * i / rng)
}

func absDeviation(val uint16, idx, size int) uint16 {
	d := int16(ideal(idx, size) - val)
	if d < 0 {
		d = -d
	}
	return uint16(d)
}

// interpolate maps c1 from the measured segment (a1..b1) onto the ideal
// segment (a2..b2). A degenerate measured segment returns its ideal
// start instead of dividing by zero.
func interpolate(a1, a2, b1, b2, c1 uint16) uint16 {
	refRange := b1 - a1
	if refRange == 0 {
		return a2
	}
	trgtRange := b2 - a2
	c1Ofst := c1 - a1
	c2Ofst := uint32(c1Ofst) * uint32(trgtRange) / uint32(refRange)
	return uint16(uint32(a2) + c2Ofst)
}
