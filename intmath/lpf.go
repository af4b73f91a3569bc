package intmath

// lpfResolution adds fractional bits below the uint16 input so slow
// filters keep sub-count state between ticks.
const lpfResolution = 7

const (
	lpfThresholdPos = uint32(1) << (16 + lpfResolution - 1)
	lpfThresholdNeg = ^lpfThresholdPos + 1
	lpfMask         = 2*lpfThresholdPos - 1
)

// LPF is a single-pole IIR low-pass filter on uint16 samples. Alpha sets
// the smoothing strength: 0 passes input straight through, 255 latches
// the state so the output never changes. TickWrap treats the input as
// circular (one turn = 65536) and filters correctly across the 0/65535
// seam.
type LPF struct {
	alpha  uint32
	output uint16
	acc    uint32
}

// NewLPF seeds the filter state with initial so the first ticks do not
// slew from zero.
func NewLPF(initial uint16, alpha uint8) *LPF {
	return &LPF{
		alpha:  uint32(alpha),
		output: initial,
		acc:    uint32(initial) << lpfResolution,
	}
}

// Tick advances the filter with a linear (non-circular) sample and
// returns the new output.
func (f *LPF) Tick(input uint16) uint16 {
	if f.alpha == 255 {
		return f.output
	}
	current := uint32(input) << lpfResolution
	f.acc = f.blend(current, f.acc)
	f.output = uint16(f.acc >> lpfResolution)
	return f.output
}

// TickWrap advances the filter with a circular sample. When the sample
// and the state sit on opposite sides of the wrap seam, both are biased
// by half the range so the blend happens on a contiguous scale, then the
// bias is removed and the state masked back into range.
func (f *LPF) TickWrap(input uint16) uint16 {
	if f.alpha == 255 {
		return f.output
	}
	current := uint32(input) << lpfResolution

	diff := lpfThresholdPos + (f.acc - current)
	var offset uint32
	switch {
	case diff <= lpfMask:
		offset = 0
	case diff>>31 != 0:
		offset = lpfThresholdNeg
	default:
		offset = lpfThresholdPos
	}

	f.acc = f.blend(current+offset, f.acc-offset)
	f.acc = (f.acc + offset) & lpfMask
	f.output = uint16(f.acc >> lpfResolution)
	return f.output
}

// Output returns the last filtered value.
func (f *LPF) Output() uint16 { return f.output }

// SetAlpha changes the smoothing strength.
func (f *LPF) SetAlpha(alpha uint8) { f.alpha = uint32(alpha) }

func (f *LPF) blend(current, previous uint32) uint32 {
	return (f.alpha*previous + (256-f.alpha)*current) >> 8
}
