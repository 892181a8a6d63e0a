// Package geom has the 2D math behind the harp: vectors, Catmull-Rom splines
// and the placement of texture quads along a string.
package geom

import "math"

// Vec is a point or direction in screen space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp interpolates from v to o by t.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Polar returns the offset of length r in direction angle (radians).
func Polar(r, angle float64) Vec {
	return Vec{r * math.Cos(angle), r * math.Sin(angle)}
}

// Rect is an axis aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Vec
}

// RectCentered returns a w*h rectangle centred on c.
func RectCentered(c Vec, w, h float64) Rect {
	return Rect{
		Min: Vec{c.X - w/2, c.Y - h/2},
		Max: Vec{c.X + w/2, c.Y + h/2},
	}
}

// OverlapsY reports whether the rectangle's vertical extent intersects [lo, hi].
func (r Rect) OverlapsY(lo, hi float64) bool {
	return r.Max.Y >= lo && r.Min.Y <= hi
}
