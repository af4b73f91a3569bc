package intmath

import "testing"

func TestAngleWrap(t *testing.T) {
	if got := Angle(65535).Add(1); got != 0 {
		t.Errorf("65535+1 = %d, want 0", got)
	}
	if got := Angle(0).Sub(1); got != 65535 {
		t.Errorf("0-1 = %d, want 65535", got)
	}
}

func TestAngleDist(t *testing.T) {
	tests := []struct {
		a, b Angle
		want int16
	}{
		{5, 65530, 11},     // forward across the seam
		{65530, 5, -11},    // backward across the seam
		{1000, 500, 500},   // plain forward
		{0, 32768, -32768}, // antipode resolves to the negative bound
	}
	for _, tt := range tests {
		if got := tt.a.Dist(tt.b); got != tt.want {
			t.Errorf("Dist(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAngleSector(t *testing.T) {
	tests := []struct {
		a    Angle
		want uint8
	}{
		{0, 0}, {16383, 0}, {16384, 1}, {32768, 2}, {49152, 3}, {65535, 3},
	}
	for _, tt := range tests {
		if got := tt.a.Sector(); got != tt.want {
			t.Errorf("Sector(%d) = %d, want %d", tt.a, got, tt.want)
		}
	}
}

func TestRing(t *testing.T) {
	r := NewRing[int32](3, 7)
	if r.Len() != 3 {
		t.Fatalf("Len = %d", r.Len())
	}
	// First pushes evict the fill value.
	for i := 0; i < 3; i++ {
		if got := r.Push(int32(i)); got != 7 {
			t.Fatalf("push %d evicted %d, want fill 7", i, got)
		}
	}
	// Then elements come back out in insertion order.
	for i := 0; i < 3; i++ {
		if got := r.Push(0); got != int32(i) {
			t.Errorf("evicted %d, want %d", got, i)
		}
	}
}
