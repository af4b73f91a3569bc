// Package periphenc reads an AS5047 magnetic encoder through a host SPI
// port, for running the control loop on a Linux SBC instead of a
// microcontroller.
package periphenc

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"tunepulse/drivers/as5047"
)

// Sensor is an AS5047 behind a periph SPI connection. It implements the
// angle sensor contract of the hal package.
type Sensor struct {
	conn spi.Conn
	port spi.PortCloser
}

// Open initializes the host, opens the named SPI port (for example
// "SPI0.0") and configures it for the sensor.
func Open(name string) (*Sensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("encoder SPI open: %w", err)
	}
	conn, err := port.Connect(10*physic.MegaHertz, spi.Mode1, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("encoder SPI connect: %w", err)
	}
	return &Sensor{conn: conn, port: port}, nil
}

// NewFromConn wraps an already configured connection.
func NewFromConn(conn spi.Conn) *Sensor {
	return &Sensor{conn: conn}
}

// ReadRawAngle returns the dynamic-compensated angle scaled to the
// 16-bit circle.
func (s *Sensor) ReadRawAngle() (uint16, error) {
	if _, err := s.xfer(as5047.EncodeRead(as5047.RegAngleCom)); err != nil {
		return 0, err
	}
	resp, err := s.xfer(as5047.EncodeRead(as5047.RegNOP))
	if err != nil {
		return 0, err
	}
	data, err := as5047.DecodeData(resp)
	if err != nil {
		return 0, err
	}
	return data << 2, nil
}

func (s *Sensor) xfer(frame uint16) (uint16, error) {
	w := [2]byte{byte(frame >> 8), byte(frame)}
	var r [2]byte
	if err := s.conn.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("encoder SPI transfer: %w", err)
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// Close releases the SPI port if this sensor opened it.
func (s *Sensor) Close() error {
	if s.port != nil {
		return s.port.Close()
	}
	return nil
}
