package harp

import (
	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/geom"
)

// Bow simulates a rectangular bow centred on the pointer. Its leading edge,
// the side facing the direction of vertical motion, is what touches strings.
type Bow struct {
	Width, Height float64

	rect    geom.Rect
	dir     float64
	lastY   float64
	hasLast bool
}

func NewBow(width, height float64) *Bow {
	return &Bow{Width: width, Height: height, dir: 1}
}

func (b *Bow) Name() string { return config.InputBow }

// Rect is the bow area of the last frame.
func (b *Bow) Rect() geom.Rect { return b.rect }

// Edge is the contact point of the leading edge for the last frame.
func (b *Bow) Edge() geom.Vec {
	c := b.rect.Min.Lerp(b.rect.Max, 0.5)
	return geom.Vec{X: c.X, Y: c.Y + b.dir*b.Height/2}
}

func (b *Bow) Drive(chords []*Chord, cursor geom.Vec, pluck func(*Chord)) {
	if b.hasLast {
		switch {
		case cursor.Y > b.lastY:
			b.dir = 1
		case cursor.Y < b.lastY:
			b.dir = -1
		}
	}
	b.lastY, b.hasLast = cursor.Y, true
	b.rect = geom.RectCentered(cursor, b.Width, b.Height)
	edge := b.Edge()

	for _, c := range chords {
		if !c.Grab && !b.rect.OverlapsY(c.Band()) {
			c.Bow = BowClear
		}
		grabbed := c.Grab
		plucked := c.step(edge, c.CanBeGrabbed())
		if !grabbed && c.Grab {
			c.Bow = BowEngaged
		}
		if plucked {
			pluck(c)
		}
	}
}
