package analog

import "tunepulse/hal"

// kBitShift keeps fractional precision in the compensation factor.
const kBitShift = 15

// Correction rescales raw ADC channels against the internal reference
// voltage so readings stay accurate while the analog supply drifts. The
// factory VREF calibration is captured once; each Tick derives the
// compensation factor from the live VREF sample and applies it to every
// channel with an overflow clamp.
type Correction struct {
	vrefCal  uint32
	k        uint32
	vsup     uint16
	vtemp    uint16
	currents [4]uint16
}

// NewCorrection takes the calibrated VREF value, typically from
// VRefCalibrated or VRefApproximated.
func NewCorrection(vrefCal uint32) *Correction {
	return &Correction{
		vrefCal: vrefCal << kBitShift,
		k:       uint32(0xFFFF >> 1),
	}
}

// Tick corrects one burst of channels using the live VREF reading. A
// zero VREF sample leaves the previous compensation factor in place.
func (c *Correction) Tick(ch hal.AnalogChannels, vref uint16) {
	if vref != 0 {
		c.k = c.vrefCal / uint32(vref)
	}
	for i := 0; i < 4; i++ {
		c.currents[i] = c.adjust(ch[hal.ChCurrentA+i])
	}
	c.vsup = c.adjust(ch[hal.ChSupply])
	c.vtemp = c.adjust(ch[hal.ChTemper])
}

func (c *Correction) adjust(raw uint16) uint16 {
	corrected := (uint32(raw) * c.k) >> kBitShift
	if corrected>>16 != 0 {
		return 0xFFFF
	}
	return uint16(corrected)
}

// Supply returns the corrected supply-voltage channel.
func (c *Correction) Supply() uint16 { return c.vsup }

// Temper returns the corrected temperature channel.
func (c *Correction) Temper() uint16 { return c.vtemp }

// Currents returns the corrected current channels.
func (c *Correction) Currents() [4]uint16 { return c.currents }

// VRefCalibrated computes the reference value from factory calibration
// data: the stored calibration reading, the VDDA it was taken at, its
// bit width, and the design VDDA of this board.
func VRefCalibrated(designVddaMV, calVal, calVddaMV, calBits uint32) uint32 {
	return ((calVal << (16 - calBits)) * calVddaMV) / designVddaMV
}

// VRefApproximated derives the reference value from the nominal VREF
// voltage when no factory calibration is available.
func VRefApproximated(designVddaMV, vrefMV uint32) uint32 {
	return (vrefMV * uint32(0xFFFF>>1)) / designVddaMV
}
