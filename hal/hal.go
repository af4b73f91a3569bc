// Package hal defines the narrow hardware interfaces the control core
// depends on. Concrete implementations live under drivers/ (SPI encoders)
// or in the target firmware; tests substitute in-memory fakes.
package hal

// AngleSensor reads an absolute shaft angle scaled to the full uint16
// range (65536 counts per mechanical revolution).
type AngleSensor interface {
	ReadRawAngle() (uint16, error)
}

// AnalogChannels is the fixed layout of raw ADC readings consumed by the
// control loop: four phase-current channels, supply voltage, board
// temperature and the internal voltage reference.
type AnalogChannels [7]uint16

// Indices into AnalogChannels.
const (
	ChCurrentA = iota
	ChCurrentB
	ChCurrentC
	ChCurrentD
	ChSupply
	ChTemper
	ChVRef
)

// AnalogSource samples all ADC channels in one burst.
type AnalogSource interface {
	ReadChannels() (AnalogChannels, error)
}

// PWMOutput applies one duty value per output channel. A channel set to
// the disable sentinel (math.MinInt16) must be put in high-Z / not driven.
type PWMOutput interface {
	Apply(duties [4]int16) error
}
