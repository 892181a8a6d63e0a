package easing

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestEndpoints(t *testing.T) {
	kinds := []Kind{ElasticOut, SpringOut, BackOut, Linear, Harmonica}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			b, c, d := 400.0, -35.0, 0.5
			if got := k.Ease(0, b, c, d); math.Abs(got-b) > eps {
				t.Errorf("Ease(0) = %v, want %v", got, b)
			}
			if got := k.Ease(d, b, c, d); math.Abs(got-(b+c)) > eps {
				t.Errorf("Ease(d) = %v, want %v", got, b+c)
			}
			if got := k.Ease(2*d, b, c, d); math.Abs(got-(b+c)) > eps {
				t.Errorf("Ease(2d) = %v, want %v", got, b+c)
			}
			for i := 0; i <= 100; i++ {
				v := k.Ease(d*float64(i)/100, b, c, d)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite value at step %d", i)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{"elastic", "spring", "back", "linear", "harmonica"} {
		k, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("round trip %q -> %q", name, k.String())
		}
	}
	if _, err := Parse("wobble"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestUnknownKindFallsBack(t *testing.T) {
	got := Kind(42).Ease(0.25, 0, 1, 0.5)
	want := ElasticOut.Ease(0.25, 0, 1, 0.5)
	if got != want {
		t.Errorf("unknown kind = %v, want elastic %v", got, want)
	}
}

func TestHarmonicaSettles(t *testing.T) {
	// The spring overshoots and then settles close to the target.
	var peak float64
	for i := 0; i < springSteps; i++ {
		peak = math.Max(peak, springCurve[i])
	}
	if peak <= 1 {
		t.Errorf("expected overshoot, peak = %v", peak)
	}
	if last := springCurve[springSteps]; math.Abs(last-1) > 0.05 {
		t.Errorf("spring did not settle: %v", last)
	}
}

func TestShadowFalloff(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.75},
		{0.5, 1},
		{0.75, 0.75},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := ShadowFalloff(tt.t); math.Abs(got-tt.want) > eps {
			t.Errorf("ShadowFalloff(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
