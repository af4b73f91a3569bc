package intmath

import "testing"

func TestLPFAlphaZeroPassesThrough(t *testing.T) {
	f := NewLPF(0, 0)
	for _, in := range []uint16{12345, 0, 65535, 7} {
		if got := f.Tick(in); got != in {
			t.Errorf("alpha=0 Tick(%d) = %d, want input back", in, got)
		}
	}
}

func TestLPFAlphaMaxFreezes(t *testing.T) {
	f := NewLPF(100, 255)
	for _, in := range []uint16{60000, 0, 100, 32768} {
		if got := f.TickWrap(in); got != 100 {
			t.Errorf("alpha=255 TickWrap(%d) = %d, want frozen 100", in, got)
		}
		if got := f.Tick(in); got != 100 {
			t.Errorf("alpha=255 Tick(%d) = %d, want frozen 100", in, got)
		}
	}
}

func TestLPFStepResponse(t *testing.T) {
	f := NewLPF(0, 128)
	if got := f.Tick(1000); got != 500 {
		t.Errorf("first tick toward 1000 = %d, want 500", got)
	}
	// Converges monotonically onto the target.
	prev := uint16(500)
	for i := 0; i < 100; i++ {
		got := f.Tick(1000)
		if got < prev || got > 1000 {
			t.Fatalf("tick %d: output %d left [%d, 1000]", i, got, prev)
		}
		prev = got
	}
	if prev < 990 {
		t.Errorf("after 100 ticks output = %d, expected near 1000", prev)
	}
}

func TestLPFWrapSeam(t *testing.T) {
	// State just below the wrap point, input just above it: the filter
	// must move across the seam, not average through the middle of the
	// range.
	f := NewLPF(65530, 128)
	got := f.TickWrap(5)
	if got != 65535 {
		t.Errorf("TickWrap across seam = %d, want 65535", got)
	}
	// Keep feeding the wrapped input; output must come around to it.
	// Truncation in the blend can settle one count below the target.
	for i := 0; i < 200; i++ {
		got = f.TickWrap(5)
	}
	if got < 4 || got > 5 {
		t.Errorf("after convergence output = %d, want 4 or 5", got)
	}
}

func TestLPFWrapMatchesLinearAwayFromSeam(t *testing.T) {
	a := NewLPF(10000, 200)
	b := NewLPF(10000, 200)
	for i := 0; i < 50; i++ {
		x := uint16(10000 + i*13)
		if got, want := a.TickWrap(x), b.Tick(x); got != want {
			t.Fatalf("tick %d: TickWrap=%d Tick=%d", i, got, want)
		}
	}
}

func TestLPFSetAlpha(t *testing.T) {
	f := NewLPF(0, 255)
	f.Tick(1000)
	if f.Output() != 0 {
		t.Fatalf("frozen filter moved to %d", f.Output())
	}
	f.SetAlpha(0)
	if got := f.Tick(1000); got != 1000 {
		t.Errorf("after SetAlpha(0) Tick = %d, want 1000", got)
	}
}
