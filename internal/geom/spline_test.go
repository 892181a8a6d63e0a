package geom

import (
	"math"
	"testing"
)

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCatmullRomPassesThroughControlPoints(t *testing.T) {
	p0, p1, p2, p3 := Vec{0, 0}, Vec{10, 5}, Vec{20, -5}, Vec{30, 0}
	if got := CatmullRom(p0, p1, p2, p3, 0); !near(got, p1) {
		t.Errorf("t=0: got %v, want %v", got, p1)
	}
	if got := CatmullRom(p0, p1, p2, p3, 1); !near(got, p2) {
		t.Errorf("t=1: got %v, want %v", got, p2)
	}
}

func TestSplineAngleOnStraightLine(t *testing.T) {
	p := [4]Vec{{0, 100}, {0, 100}, {400, 100}, {800, 100}}
	for _, tt := range []float64{0, 0.3, 0.9} {
		if a := SplineAngle(p[0], p[1], p[2], p[3], tt, AngleStep); math.Abs(a) > 1e-9 {
			t.Errorf("angle at %v = %v, want 0", tt, a)
		}
	}
	down := SplineAngle(Vec{0, 0}, Vec{0, 0}, Vec{0, 100}, Vec{0, 100}, 0.5, AngleStep)
	if math.Abs(down-math.Pi/2) > 1e-9 {
		t.Errorf("vertical spline angle = %v, want pi/2", down)
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		thickness float64
		per, min  int
		want      int
	}{
		{20, 4, 8, 80},
		{12, 4, 8, 48},
		{1, 4, 8, 8},
		{2.6, 3, 0, 8},
		{0, 4, 1, 4},
	}
	for _, tt := range tests {
		if got := SampleCount(tt.thickness, tt.per, tt.min); got != tt.want {
			t.Errorf("SampleCount(%v, %d, %d) = %d, want %d", tt.thickness, tt.per, tt.min, got, tt.want)
		}
	}
}

func TestAppendQuadsStraightString(t *testing.T) {
	points := [5]Vec{{100, 50}, {100, 50}, {400, 50}, {700, 50}, {700, 50}}
	quads := AppendQuads(nil, points, 80, 20)
	if len(quads) != 80 {
		t.Fatalf("got %d quads, want 80", len(quads))
	}
	if !near(quads[0].Center, points[0]) {
		t.Errorf("first quad at %v, want left anchor", quads[0].Center)
	}
	if !near(quads[len(quads)-1].Center, points[4]) {
		t.Errorf("last quad at %v, want right anchor", quads[len(quads)-1].Center)
	}
	wantWidth := 600.0/80 + 10
	for i, q := range quads {
		if math.Abs(q.Center.Y-50) > 1e-9 || math.Abs(q.Angle) > 1e-9 {
			t.Fatalf("quad %d off the rest line: %+v", i, q)
		}
		if q.Width != wantWidth || q.Height != 20 {
			t.Fatalf("quad %d size %vx%v", i, q.Width, q.Height)
		}
		if q.T < 0 || q.T > 1 {
			t.Fatalf("quad %d T=%v out of range", i, q.T)
		}
	}
}

func TestAppendQuadsFollowsMobilePoint(t *testing.T) {
	points := [5]Vec{{100, 50}, {100, 50}, {420, 70}, {700, 50}, {700, 50}}
	quads := AppendQuads(make([]Quad, 0, 16), points, 16, 12)
	// The last sample of the first segment sits on the mobile point.
	mid := quads[len(quads)/2-1]
	if !near(mid.Center, points[2]) {
		t.Errorf("segment end at %v, want %v", mid.Center, points[2])
	}
	if mid.T != 0.5 {
		t.Errorf("segment end T = %v, want 0.5", mid.T)
	}
}

func TestRectOverlapsY(t *testing.T) {
	r := RectCentered(Vec{0, 100}, 40, 20)
	if !r.OverlapsY(105, 130) || !r.OverlapsY(110, 120) || r.OverlapsY(111, 120) || r.OverlapsY(60, 89) {
		t.Errorf("unexpected overlap result for %+v", r)
	}
}

func TestAppendQuadsParameterSpansString(t *testing.T) {
	points := [5]Vec{{100, 50}, {100, 50}, {400, 80}, {700, 50}, {700, 50}}
	quads := AppendQuads(nil, points, 12, 10)
	if len(quads) != 12 {
		t.Fatalf("got %d quads, want 12", len(quads))
	}
	if quads[0].T != 0 || quads[len(quads)-1].T != 1 {
		t.Errorf("T runs %v..%v, want 0..1", quads[0].T, quads[len(quads)-1].T)
	}
	if quads[5].T != 0.5 || quads[6].T != 0.5 {
		t.Errorf("segment boundary T = %v, %v, want 0.5", quads[5].T, quads[6].T)
	}
	for i := 1; i < len(quads); i++ {
		if quads[i].T < quads[i-1].T {
			t.Fatalf("T decreases at %d: %v < %v", i, quads[i].T, quads[i-1].T)
		}
	}
}
