package intmath

import "testing"

func TestNormRoundTrip(t *testing.T) {
	const fullScale = 25600 // 25.6 V supply in mV
	norm := ValueToNorm(12800, fullScale)
	if norm != 16384 {
		t.Fatalf("ValueToNorm(12800) = %d, want 16384", norm)
	}
	if got := NormToValue(norm, fullScale); got != 12800 {
		t.Errorf("round trip = %d, want 12800", got)
	}
}

func TestNormZeroScale(t *testing.T) {
	if got := ValueToNorm(1000, 0); got != 0 {
		t.Errorf("zero full scale = %d, want 0", got)
	}
	if got := NormToValue(1000, 0); got != 0 {
		t.Errorf("NormToValue with zero scale = %d, want 0", got)
	}
}

func TestOhmHelpers(t *testing.T) {
	if got := Current(12000, 3000); got != 4000 {
		t.Errorf("Current = %d, want 4000", got)
	}
	if got := Voltage(2000, 1500); got != 3000 {
		t.Errorf("Voltage = %d, want 3000", got)
	}
	if got := Resistance(12000, 4000); got != 3000 {
		t.Errorf("Resistance = %d, want 3000", got)
	}
	if got := Power(12000, 2000); got != 24000 {
		t.Errorf("Power = %d, want 24000", got)
	}
}

func TestOhmZeroGuards(t *testing.T) {
	if got := Current(12000, 0); got != 0 {
		t.Errorf("Current with zero resistance = %d, want 0", got)
	}
	if got := Resistance(12000, 0); got != 0 {
		t.Errorf("Resistance with zero current = %d, want 0", got)
	}
}
