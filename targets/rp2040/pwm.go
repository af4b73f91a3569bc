//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tunepulse/intmath"
)

// pwmCarrierNS is the PWM period: 25 us gives a 40 kHz carrier, above
// the audible range and well above the 10 kHz control rate.
const pwmCarrierNS = 25000

// pwmPeripheral abstracts TinyGo's unexported pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// quadPWM drives the four half-bridge inputs. GPIO8/9 share PWM slice 4
// and GPIO10/11 share slice 5, so both channels of a coil pair switch
// phase-aligned.
type quadPWM struct {
	groups [4]pwmPeripheral
	chans  [4]uint8
	tops   [4]uint32
}

func newQuadPWM() (*quadPWM, error) {
	pins := [4]machine.Pin{machine.GPIO8, machine.GPIO9, machine.GPIO10, machine.GPIO11}
	groups := [4]pwmPeripheral{machine.PWM4, machine.PWM4, machine.PWM5, machine.PWM5}

	for _, g := range []pwmPeripheral{machine.PWM4, machine.PWM5} {
		if err := g.Configure(machine.PWMConfig{Period: pwmCarrierNS}); err != nil {
			return nil, err
		}
	}

	q := &quadPWM{groups: groups}
	for i := range pins {
		ch, err := groups[i].Channel(pins[i])
		if err != nil {
			return nil, err
		}
		q.chans[i] = ch
		q.tops[i] = groups[i].Top()
	}
	return q, nil
}

// Apply maps signed duty references onto compare values. Disabled
// channels drop to zero duty; true high-Z needs the gate driver enable
// line, which the power stage wires separately.
func (q *quadPWM) Apply(duties [4]int16) error {
	for i, d := range duties {
		var v uint32
		if d != intmath.Disabled && d > 0 {
			v = uint32(d) * q.tops[i] / 32767
		}
		q.groups[i].Set(q.chans[i], v)
	}
	return nil
}
