//go:build rp2040 || rp2350

package main

import (
	"machine"

	"tunepulse/drivers/as5047"
)

// Encoder wiring on SPI0.
const (
	encSCK = machine.GPIO2
	encSDO = machine.GPIO3
	encSDI = machine.GPIO0
	encCS  = machine.GPIO1
)

func newEncoder() (*as5047.Device, error) {
	spi := machine.SPI0
	err := spi.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       encSCK,
		SDO:       encSDO,
		SDI:       encSDI,
		Mode:      1,
	})
	if err != nil {
		return nil, err
	}

	encCS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	encCS.High()

	return as5047.New(&csFramedSPI{bus: spi, cs: encCS}), nil
}

// csFramedSPI frames every transfer with the chip select line; the
// sensor latches a command per CS window.
type csFramedSPI struct {
	bus *machine.SPI
	cs  machine.Pin
}

func (s *csFramedSPI) Tx(w, r []byte) error {
	s.cs.Low()
	err := s.bus.Tx(w, r)
	s.cs.High()
	return err
}

func (s *csFramedSPI) Transfer(b byte) (byte, error) {
	s.cs.Low()
	v, err := s.bus.Transfer(b)
	s.cs.High()
	return v, err
}
