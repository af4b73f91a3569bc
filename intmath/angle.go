// Package intmath holds the fixed-point building blocks of the control
// core: circular angle arithmetic, table-driven trigonometry, Clarke
// transforms, filters and the integer PID. Everything operates on
// integers; one mechanical or electrical turn is 65536 counts.
package intmath

// Angle is a position on the uint16 circle. Arithmetic wraps, so 65535+1
// lands back on 0 and distances are always taken the short way around
// when they fit in an int16.
type Angle uint16

// Add returns a advanced by d, wrapping around the circle.
func (a Angle) Add(d Angle) Angle { return a + d }

// Sub returns a moved back by d, wrapping around the circle.
func (a Angle) Sub(d Angle) Angle { return a - d }

// Dist returns the signed distance from b to a. The uint16 difference is
// reinterpreted as int16, which picks the representation in
// [-32768, 32767] and therefore the shorter way around the circle.
func (a Angle) Dist(b Angle) int16 { return int16(a - b) }

// Sector returns which quarter of the circle the angle is in (0..3),
// taken from the top two bits.
func (a Angle) Sector() uint8 { return uint8(a >> 14) }
