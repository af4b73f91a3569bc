package intmath

import "testing"

func TestCoilCenter(t *testing.T) {
	tests := []struct {
		name   string
		ref    int16
		hi, lo int16
	}{
		{"zero", 0, 0, 0},
		{"disabled", Disabled, Disabled, Disabled},
		{"forward", 1000, 16883, 15883},
		{"reverse", -1000, 15883, 16883},
		{"full", 32767, 32766, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hi, lo := CoilCenter(tt.ref)
			if hi != tt.hi || lo != tt.lo {
				t.Errorf("CoilCenter(%d) = (%d, %d), want (%d, %d)", tt.ref, hi, lo, tt.hi, tt.lo)
			}
		})
	}
}

func TestCoilEdge(t *testing.T) {
	if a, b := CoilEdge(1000); a != 1000 || b != 0 {
		t.Errorf("CoilEdge(1000) = (%d, %d)", a, b)
	}
	if a, b := CoilEdge(-1000); a != 0 || b != 1000 {
		t.Errorf("CoilEdge(-1000) = (%d, %d)", a, b)
	}
	if a, b := CoilEdge(Disabled); a != Disabled || b != Disabled {
		t.Errorf("CoilEdge(disabled) = (%d, %d)", a, b)
	}
}

func TestCoilCurrents(t *testing.T) {
	if got := CoilCurrentDualUnipolar(300, 100); got != 200 {
		t.Errorf("dual unipolar = %d, want 200", got)
	}
	if got := CoilCurrentSingleBipolar(-42); got != -42 {
		t.Errorf("single bipolar = %d, want -42", got)
	}
	if got := CoilCurrentDualBipolar(300, 100); got != 100 {
		t.Errorf("dual bipolar = %d, want 100", got)
	}
	// Arithmetic shift rounds toward negative infinity.
	if got := CoilCurrentDualBipolar(-301, 100); got != -201 {
		t.Errorf("dual bipolar negative = %d, want -201", got)
	}
}
