package motor

import (
	"math"

	"tunepulse/intmath"
)

// Probes describes the current-sense hardware: which legs carry a shunt
// and whether the amplifiers are unipolar or bipolar.
type Probes uint32

const (
	ProbeA Probes = 1 << 0
	ProbeB Probes = 1 << 1
	ProbeC Probes = 1 << 2
	ProbeD Probes = 1 << 3

	probeUnipolar Probes = 1 << 16
)

// Common sense layouts.
const (
	BiAB   = ProbeA | ProbeB
	BiABC  = ProbeA | ProbeB | ProbeC
	BiABCD = ProbeA | ProbeB | ProbeC | ProbeD

	UniABCD = probeUnipolar | ProbeA | ProbeB | ProbeC | ProbeD
)

// senseInvalid marks combinations the hardware layout cannot resolve.
const senseInvalid = math.MinInt16

// CurrentSense recombines raw per-leg current samples into the two-axis
// frame of the drive command. The valid recombination depends on both
// the probe layout and the motor topology; impossible combinations
// produce the senseInvalid sentinel on both axes.
type CurrentSense struct {
	probes Probes
	motor  Type
	a, b   int16
}

// NewCurrentSense builds a recombiner for the given probe layout and
// motor topology.
func NewCurrentSense(probes Probes, motor Type) *CurrentSense {
	return &CurrentSense{probes: probes, motor: motor, a: senseInvalid, b: senseInvalid}
}

// SetMotorType follows a topology change on the driver.
func (c *CurrentSense) SetMotorType(t Type) { c.motor = t }

// Tick recombines one sample set and returns the two-axis currents.
func (c *CurrentSense) Tick(in [4]int16) (int16, int16) {
	if c.probes&probeUnipolar != 0 {
		c.tickUnipolar(in)
	} else {
		c.tickBipolar(in)
	}
	return c.a, c.b
}

// Current returns the last recombined values.
func (c *CurrentSense) Current() (int16, int16) { return c.a, c.b }

func (c *CurrentSense) probeCount() int {
	n := 0
	for p := c.probes & 0b1111; p != 0; p >>= 1 {
		n += int(p & 1)
	}
	return n
}

func (c *CurrentSense) tickBipolar(in [4]int16) {
	switch c.probeCount() {
	case 1:
		if c.motor == TypeDC {
			c.a, c.b = intmath.CoilCurrentSingleBipolar(in[0]), 0
		} else {
			c.a, c.b = senseInvalid, senseInvalid
		}
	case 2:
		switch c.motor {
		case TypeDC:
			c.a, c.b = intmath.CoilCurrentDualBipolar(in[0], in[1]), 0
		case TypeStepper:
			c.a, c.b = in[0], in[1]
		case TypeBLDC:
			c.a, c.b = bldcDual(in[0], in[1])
		default:
			c.a, c.b = senseInvalid, senseInvalid
		}
	case 3, 4:
		switch c.motor {
		case TypeDC:
			c.a, c.b = intmath.CoilCurrentDualBipolar(in[0], in[1]), 0
		case TypeStepper:
			if c.probeCount() == 4 {
				c.a = intmath.CoilCurrentDualBipolar(in[0], in[1])
				c.b = intmath.CoilCurrentDualBipolar(in[2], in[3])
			} else {
				c.a = intmath.CoilCurrentDualBipolar(in[0], in[1])
				c.b = in[2]
			}
		case TypeBLDC:
			c.a, c.b = bldcTriple(in[0], in[1], in[2])
		default:
			c.a, c.b = 0, 0
		}
	default:
		c.a, c.b = senseInvalid, senseInvalid
	}
}

func (c *CurrentSense) tickUnipolar(in [4]int16) {
	if c.probeCount() != 4 {
		c.a, c.b = senseInvalid, senseInvalid
		return
	}
	switch c.motor {
	case TypeDC:
		c.a, c.b = intmath.CoilCurrentDualUnipolar(in[0], in[1]), 0
	case TypeStepper:
		c.a = intmath.CoilCurrentDualUnipolar(in[0], in[1])
		c.b = intmath.CoilCurrentDualUnipolar(in[2], in[3])
	default:
		c.a, c.b = 0, 0
	}
}

// bldcDual reconstructs the third phase from Kirchhoff's law before the
// Clarke projection.
func bldcDual(a, b int16) (int16, int16) {
	third := -(int32(a) + int32(b))
	if third > math.MaxInt16 {
		third = math.MaxInt16
	} else if third < math.MinInt16 {
		third = math.MinInt16
	}
	return intmath.Clarke(a, b, int16(third))
}

func bldcTriple(a, b, c int16) (int16, int16) {
	return intmath.Clarke(a, b, c)
}
