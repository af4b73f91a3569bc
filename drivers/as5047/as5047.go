// Package as5047 reads the AS5047 family of on-axis magnetic rotary
// encoders over SPI. The sensor resolves 14 bits per turn; readings are
// shifted up to the full 16-bit angle circle used by the control loop.
package as5047

import (
	"errors"
	"math/bits"

	"tinygo.org/x/drivers"
)

// Register addresses.
const (
	RegNOP      = 0x0000
	RegERRFL    = 0x0001
	RegDIAAGC   = 0x3FFC
	RegMAG      = 0x3FFD
	RegAngleUnc = 0x3FFE
	RegAngleCom = 0x3FFF
)

const (
	readFlag  = 0x4000
	errorFlag = 0x4000
	dataMask  = 0x3FFF
)

var (
	// ErrParity means a response frame arrived with wrong parity, which
	// points at a wiring or clocking problem.
	ErrParity = errors.New("as5047: response parity mismatch")
	// ErrSensorFault means the sensor raised its error flag; read and
	// clear ERRFL to recover.
	ErrSensorFault = errors.New("as5047: sensor error flag set")
)

// EncodeRead builds a read command frame for the given register: the
// read bit plus even parity over the lower 15 bits.
func EncodeRead(addr uint16) uint16 {
	f := (addr & dataMask) | readFlag
	return f | parity(f)<<15
}

// DecodeData validates a response frame and extracts its payload.
func DecodeData(frame uint16) (uint16, error) {
	if parity(frame&0x7FFF) != frame>>15 {
		return 0, ErrParity
	}
	if frame&errorFlag != 0 {
		return 0, ErrSensorFault
	}
	return frame & dataMask, nil
}

func parity(v uint16) uint16 {
	return uint16(bits.OnesCount16(v) & 1)
}

// Device is an AS5047 on a TinyGo SPI bus. It implements the angle
// sensor contract of the hal package.
type Device struct {
	bus  drivers.SPI
	wbuf [2]byte
	rbuf [2]byte
}

// New returns a device on the given bus. The bus must be configured for
// mode 1 before use.
func New(bus drivers.SPI) *Device {
	return &Device{bus: bus}
}

// xfer clocks one 16-bit frame out and the simultaneous response in.
func (d *Device) xfer(frame uint16) (uint16, error) {
	d.wbuf[0] = byte(frame >> 8)
	d.wbuf[1] = byte(frame)
	if err := d.bus.Tx(d.wbuf[:], d.rbuf[:]); err != nil {
		return 0, err
	}
	return uint16(d.rbuf[0])<<8 | uint16(d.rbuf[1]), nil
}

// ReadRegister reads one register. The sensor answers a command in the
// following frame, so a NOP is clocked after the address.
func (d *Device) ReadRegister(addr uint16) (uint16, error) {
	if _, err := d.xfer(EncodeRead(addr)); err != nil {
		return 0, err
	}
	resp, err := d.xfer(EncodeRead(RegNOP))
	if err != nil {
		return 0, err
	}
	return DecodeData(resp)
}

// ReadRawAngle returns the dynamic-compensated angle scaled to the
// 16-bit circle.
func (d *Device) ReadRawAngle() (uint16, error) {
	v, err := d.ReadRegister(RegAngleCom)
	if err != nil {
		return 0, err
	}
	return v << 2, nil
}

// ClearFault reads the error register, which resets the error flag in
// following frames, and returns its raw content.
func (d *Device) ClearFault() (uint16, error) {
	return d.ReadRegister(RegERRFL)
}
