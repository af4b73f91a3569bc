//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tunepulse/hal"
)

// analogBurst samples the four ADC inputs: two shunt amplifiers, the
// supply divider and the board thermistor. The chip has no external
// reference channel, so ChVRef stays zero and the correction holds its
// factory factor.
type analogBurst struct {
	currentA machine.ADC
	currentB machine.ADC
	supply   machine.ADC
	temper   machine.ADC
}

func newAnalogBurst() *analogBurst {
	machine.InitADC()
	b := &analogBurst{
		currentA: machine.ADC{Pin: machine.ADC0},
		currentB: machine.ADC{Pin: machine.ADC1},
		supply:   machine.ADC{Pin: machine.ADC2},
		temper:   machine.ADC{Pin: machine.ADC3},
	}
	for _, a := range []machine.ADC{b.currentA, b.currentB, b.supply, b.temper} {
		a.Configure(machine.ADCConfig{})
	}
	return b
}

func (b *analogBurst) ReadChannels() (hal.AnalogChannels, error) {
	var ch hal.AnalogChannels
	ch[hal.ChCurrentA] = b.currentA.Get()
	ch[hal.ChCurrentB] = b.currentB.Get()
	ch[hal.ChSupply] = b.supply.Get()
	ch[hal.ChTemper] = b.temper.Get()
	return ch, nil
}
