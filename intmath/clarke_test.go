package intmath

import "testing"

func TestInverseClarkeBalanced(t *testing.T) {
	tests := []struct {
		name     string
		sin, cos int16
	}{
		{"cos axis", 0, 32767},
		{"sin axis", 32767, 0},
		{"diagonal", 23169, 23169},
		{"negative", -23169, 23169},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := InverseClarke(tt.sin, tt.cos)
			// Phases must stay balanced within shift truncation.
			if sum := a + b + c; sum < -2 || sum > 2 {
				t.Errorf("phase sum = %d, want ~0 (a=%d b=%d c=%d)", sum, a, b, c)
			}
			if a != int32(tt.sin) {
				t.Errorf("phase a = %d, want sin %d", a, tt.sin)
			}
		})
	}
}

func TestInverseClarkeSpread(t *testing.T) {
	a, b, c := InverseClarke(0, 32767)
	if a != 0 || b != 28376 || c != -28376 {
		t.Errorf("InverseClarke(0, 32767) = (%d, %d, %d), want (0, 28376, -28376)", a, b, c)
	}
}

func TestClarkeDirect(t *testing.T) {
	alpha, beta := Clarke(100, 200, -200)
	if alpha != 100 {
		t.Errorf("alpha = %d, want 100", alpha)
	}
	if beta != 346 {
		t.Errorf("beta = %d, want 346", beta)
	}
}
