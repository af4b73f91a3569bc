package analog

import "testing"

func fillFrame(d *Dump, base uint16) {
	d.SetAngleRaw(base)
	d.SetSupplyADC(base + 1)
	d.SetTemperADC(base + 2)
	d.SetCurrentADC([4]uint16{base + 3, base + 4, base + 5, base + 6})
}

func TestDumpSwapsOnCompleteFrame(t *testing.T) {
	d := NewDump(FieldsAll)
	if d.Updated() {
		t.Fatal("fresh dump reports update")
	}
	d.SetAngleRaw(100)
	d.SetSupplyADC(200)
	d.SetTemperADC(300)
	if d.Updated() {
		t.Fatal("partial frame reported as update")
	}
	d.SetCurrentADC([4]uint16{1, 2, 3, 4})
	if !d.Updated() {
		t.Fatal("complete frame not reported")
	}
	got := d.Get()
	if got.AngleRaw != 100 || got.SupplyADC != 200 || got.TemperADC != 300 || got.CurrentADC != [4]uint16{1, 2, 3, 4} {
		t.Errorf("frame = %+v", got)
	}
	if d.Updated() {
		t.Error("Updated still set after Get")
	}
}

func TestDumpNeverServesPartialFrame(t *testing.T) {
	d := NewDump(FieldsAll)
	fillFrame(d, 1000)
	d.Get()
	// A half-written next frame must not leak through: the reader keeps
	// getting the previous complete one.
	d.SetAngleRaw(2000)
	d.SetSupplyADC(2001)
	got := d.Get()
	if got.AngleRaw != 1000 {
		t.Errorf("reader saw partial frame: angle=%d, want 1000", got.AngleRaw)
	}
	d.SetTemperADC(2002)
	d.SetCurrentADC([4]uint16{9, 9, 9, 9})
	got = d.Get()
	if got.AngleRaw != 2000 || got.SupplyADC != 2001 {
		t.Errorf("frame after completion = %+v", got)
	}
}

func TestDumpMandatorySubset(t *testing.T) {
	// Only angle and supply are mandatory here; the other producers
	// never run and the dump must still cycle.
	d := NewDump(FieldAngle | FieldSupply)
	d.SetAngleRaw(7)
	d.SetSupplyADC(8)
	if !d.Updated() {
		t.Fatal("subset frame not reported complete")
	}
	got := d.Get()
	if got.AngleRaw != 7 || got.SupplyADC != 8 {
		t.Errorf("frame = %+v", got)
	}
}

func TestDumpAlternatesBuffers(t *testing.T) {
	d := NewDump(FieldsAll)
	for i := 0; i < 6; i++ {
		base := uint16(100 * (i + 1))
		fillFrame(d, base)
		got := d.Get()
		if got.AngleRaw != base {
			t.Fatalf("cycle %d: angle = %d, want %d", i, got.AngleRaw, base)
		}
	}
}
