package analog

// Inputs is one coherent frame of everything the control loop reads per
// tick: the raw ADC channels and the raw encoder angle.
type Inputs struct {
	SupplyADC  uint16
	TemperADC  uint16
	CurrentADC [4]uint16
	AngleRaw   uint16
}

// Field bits track which parts of a buffer have been written this cycle.
const (
	FieldSupply  uint32 = 1 << 0
	FieldTemper  uint32 = 1 << 1
	FieldCurrent uint32 = 1 << 2
	FieldAngle   uint32 = 1 << 3

	fieldLock uint32 = 1 << 31
)

// FieldsAll marks every input field as mandatory.
const FieldsAll = FieldSupply | FieldTemper | FieldCurrent | FieldAngle

// Dump double-buffers Inputs between producers that fill fields at
// different moments of the cycle (ADC completion, encoder transfer) and
// a consumer that must never observe a half-written frame. One buffer
// collects writes while the other holds the last complete frame; they
// swap only once every mandatory field of the collecting buffer has
// been filled.
type Dump struct {
	buffers    [2]Inputs
	idx2update int
	flags      [2]uint32
	mandatory  uint32
	iter       uint32
	prevIter   uint32
}

// NewDump creates a dump whose buffers swap once all fields in the
// mandatory mask have been written. Pass FieldsAll when every producer
// runs each cycle, or a subset when some channels are absent.
func NewDump(mandatory uint32) *Dump {
	d := &Dump{mandatory: mandatory}
	d.flags[0] = mandatory
	return d
}

// SetSupplyADC stores a supply reading into the collecting buffer.
func (d *Dump) SetSupplyADC(v uint16) {
	d.buffers[d.idx2update].SupplyADC = v
	d.fill(FieldSupply)
}

// SetTemperADC stores a temperature reading into the collecting buffer.
func (d *Dump) SetTemperADC(v uint16) {
	d.buffers[d.idx2update].TemperADC = v
	d.fill(FieldTemper)
}

// SetCurrentADC stores the current readings into the collecting buffer.
func (d *Dump) SetCurrentADC(v [4]uint16) {
	d.buffers[d.idx2update].CurrentADC = v
	d.fill(FieldCurrent)
}

// SetAngleRaw stores an encoder angle into the collecting buffer.
func (d *Dump) SetAngleRaw(v uint16) {
	d.buffers[d.idx2update].AngleRaw = v
	d.fill(FieldAngle)
}

// Updated reports whether a new complete frame arrived since Get.
func (d *Dump) Updated() bool { return d.iter != d.prevIter }

// Get returns the last complete frame. The ready buffer is briefly
// locked against a swap while it is copied out.
func (d *Dump) Get() Inputs {
	ready := 1 - d.idx2update
	d.flags[ready] |= fieldLock
	data := d.buffers[ready]
	d.prevIter = d.iter
	d.flags[ready] &^= fieldLock
	return data
}

func (d *Dump) fill(bit uint32) {
	idx := d.idx2update
	d.flags[idx] &^= bit
	if d.flags[0] == 0 && d.flags[1] == 0 {
		other := 1 - idx
		d.flags[other] = d.mandatory
		d.idx2update = other
		d.iter++
	}
}
