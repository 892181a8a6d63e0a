package harp

import (
	"math"

	"github.com/iburimskiy/digiharp/internal/easing"
	"github.com/iburimskiy/digiharp/internal/geom"
)

// Mobile is the index of the control point moved by interaction.
const Mobile = 2

// Animation drives the mobile point from Start back to End once a string is
// let go. Elapsed is held at zero while the string is grabbed.
type Animation struct {
	Elapsed  float64
	Duration float64
	Start    geom.Vec
	End      geom.Vec
	Easing   easing.Kind
}

// Restart begins a new return animation from the given point.
func (a *Animation) Restart(from geom.Vec) {
	a.Start = from
	a.Elapsed = 0
}

func (a *Animation) Done() bool {
	return a.Elapsed >= a.Duration
}

// Position evaluates the animation at its current elapsed time.
func (a *Animation) Position() geom.Vec {
	if a.Done() {
		return a.End
	}
	f := a.Easing.Func()
	return geom.Vec{
		X: f(a.Elapsed, a.Start.X, a.End.X-a.Start.X, a.Duration),
		Y: f(a.Elapsed, a.Start.Y, a.End.Y-a.Start.Y, a.Duration),
	}
}

// Advance moves the clock forward by dt, never past Duration.
func (a *Animation) Advance(dt float64) geom.Vec {
	if !a.Done() {
		a.Elapsed = math.Min(a.Elapsed+dt, a.Duration)
	}
	return a.Position()
}

// BowEpisode tracks whether the bow may grab a string. A string is grabbed at
// most once per episode; the episode ends when the bow fully leaves the band.
type BowEpisode int

const (
	BowClear BowEpisode = iota
	BowEngaged
)

// Chord is one playable course of the harp: a five point Catmull-Rom spline
// with fixed anchors at 0 and 4, padding at 1 and 3 and the mobile point at 2.
type Chord struct {
	Index  int
	Points [5]geom.Vec
	Anim   Animation
	Grab   bool
	Bow    BowEpisode

	Thickness float64
	Pitch     float64

	capture float64
	pluck   float64
}

// Rest is the resting position of the mobile point.
func (c *Chord) Rest() geom.Vec { return c.Anim.End }

func (c *Chord) Length() float64 { return c.Points[4].X - c.Points[0].X }

// Margin is the dead zone next to each anchor where the string can't be grabbed.
func (c *Chord) Margin() float64 { return c.Length() / 6 }

// InSpan reports whether x lies in the grabbable part of the string, bounds included.
func (c *Chord) InSpan(x float64) bool {
	m := c.Margin()
	return x >= c.Points[0].X+m && x <= c.Points[4].X-m
}

// Band is the vertical capture band around the rest line.
func (c *Chord) Band() (lo, hi float64) {
	y := c.Rest().Y
	return y - c.capture, y + c.capture
}

// Capturable reports whether a pointer at p would grab the string.
func (c *Chord) Capturable(p geom.Vec) bool {
	return math.Abs(p.Y-c.Rest().Y) <= c.capture && c.InSpan(p.X)
}

// CanBeGrabbed reports whether the bow may grab the string in its current episode.
func (c *Chord) CanBeGrabbed() bool { return c.Bow == BowClear }

func (c *Chord) Mobile() geom.Vec { return c.Points[Mobile] }

// Interact feeds one pointer sample and reports whether it plucked the string.
func (c *Chord) Interact(p geom.Vec) bool {
	return c.step(p, true)
}

func (c *Chord) step(p geom.Vec, mayCapture bool) bool {
	if !c.Grab && mayCapture && c.Capturable(p) {
		c.Grab = true
	}
	if !c.Grab {
		return false
	}

	c.Anim.Elapsed = 0
	if math.Abs(p.Y-c.Rest().Y) <= c.pluck {
		if c.InSpan(p.X) {
			c.Points[Mobile] = p
		} else {
			c.release()
		}
		return false
	}
	c.release()
	return true
}

func (c *Chord) release() {
	c.Grab = false
	c.Anim.Restart(c.Points[Mobile])
}

// Animate advances the return animation by dt seconds. A grabbed string holds
// its animation at zero and is left where the pointer put it.
func (c *Chord) Animate(dt float64) {
	if c.Grab {
		c.Anim.Elapsed = 0
		return
	}
	c.Points[Mobile] = c.Anim.Advance(dt)
}
