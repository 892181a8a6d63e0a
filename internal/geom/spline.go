package geom

import "math"

// AngleStep is the parameter offset used to estimate the spline tangent.
const AngleStep = 0.01

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at
// t in [0, 1], using p0 and p3 as the outer control points.
func CatmullRom(p0, p1, p2, p3 Vec, t float64) Vec {
	t2 := t * t
	t3 := t2 * t
	q0 := -t3 + 2*t2 - t
	q1 := 3*t3 - 5*t2 + 2
	q2 := -3*t3 + 4*t2 + t
	q3 := t3 - t2
	return Vec{
		X: 0.5 * (p0.X*q0 + p1.X*q1 + p2.X*q2 + p3.X*q3),
		Y: 0.5 * (p0.Y*q0 + p1.Y*q1 + p2.Y*q2 + p3.Y*q3),
	}
}

// SplineAngle returns the direction of the segment at t in radians, measured
// with a forward difference of dt.
func SplineAngle(p0, p1, p2, p3 Vec, t, dt float64) float64 {
	a := CatmullRom(p0, p1, p2, p3, t)
	b := CatmullRom(p0, p1, p2, p3, t+dt)
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Quad is one texture placement along a string.
type Quad struct {
	Center Vec
	// Angle is the rotation in radians.
	Angle  float64
	Width  float64
	Height float64
	// T is the position along the whole string, 0 at the left anchor and 1 at the right.
	T float64
}

// SampleCount is the number of quads drawn for a string of the given
// thickness. It is always even and at least min.
func SampleCount(thickness float64, perThickness, min int) int {
	n := int(thickness * float64(perThickness))
	if n < min {
		n = min
	}
	if n < 4 {
		n = 4
	}
	if n%2 != 0 {
		n++
	}
	return n
}

// AppendQuads appends samples quads placed along the two segments of a
// five-point string spline and returns the extended slice.
func AppendQuads(dst []Quad, points [5]Vec, samples int, height float64) []Quad {
	const segments = len(points) - 3
	perSegment := samples / segments
	if perSegment < 2 {
		perSegment = 2
	}
	length := points[4].X - points[0].X
	width := length/float64(perSegment*segments) + 10

	for seg := 0; seg < segments; seg++ {
		p0, p1, p2, p3 := points[seg], points[seg+1], points[seg+2], points[seg+3]
		for j := 0; j < perSegment; j++ {
			t := float64(j) / float64(perSegment-1)
			dst = append(dst, Quad{
				Center: CatmullRom(p0, p1, p2, p3, t),
				Angle:  SplineAngle(p0, p1, p2, p3, t, AngleStep),
				Width:  width,
				Height: height,
				T:      (float64(seg) + t) / float64(segments),
			})
		}
	}
	return dst
}
