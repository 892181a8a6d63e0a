package harp

import (
	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/easing"
	"github.com/iburimskiy/digiharp/internal/geom"
)

// Layout holds everything needed to build the strings of a harp.
type Layout struct {
	Width, Height float64
	Strings       int

	MinLength, MaxLength float64
	MinSize, MaxSize     float64
	MinPitch, MaxPitch   float64

	Capture  float64
	Pluck    float64
	Duration float64
	Easing   easing.Kind
}

// LayoutFor returns the layout described by cfg.
func LayoutFor(cfg config.Config, kind easing.Kind) Layout {
	return Layout{
		Width:     float64(cfg.WindowWidth),
		Height:    float64(cfg.WindowHeight),
		Strings:   cfg.Strings,
		MinLength: config.MinStringLength,
		MaxLength: config.MaxStringLength,
		MinSize:   config.MinStringSize,
		MaxSize:   config.MaxStringSize,
		MinPitch:  config.MinPitch,
		MaxPitch:  config.MaxPitch,
		Capture:   config.CaptureThreshold,
		Pluck:     config.PluckThreshold,
		Duration:  config.AnimationDuration,
		Easing:    kind,
	}
}

// Rate is the per-index step when interpolating from min to max over n
// strings. A single string has no step and takes the index-0 value.
func Rate(min, max float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return (max - min) / float64(n-1)
}

// Pitch rises from MinPitch on the first string to MaxPitch on the last.
func (l Layout) Pitch(i int) float64 {
	return l.MinPitch + Rate(l.MinPitch, l.MaxPitch, l.Strings)*float64(i)
}

// Length shrinks from MaxLength on the first string to MinLength on the last.
func (l Layout) Length(i int) float64 {
	return l.MaxLength - Rate(l.MinLength, l.MaxLength, l.Strings)*float64(i)
}

// Thickness shrinks from MaxSize on the first string to MinSize on the last.
func (l Layout) Thickness(i int) float64 {
	return l.MaxSize - Rate(l.MinSize, l.MaxSize, l.Strings)*float64(i)
}

// RestY spaces the strings evenly, 50px from the top and bottom edges.
func (l Layout) RestY(i int) float64 {
	if l.Strings < 1 {
		return 50
	}
	return (l.Height-100)/float64(l.Strings)*float64(i) + 50
}

// NewChords builds the strings of the layout, index 0 at the top.
func (l Layout) NewChords() []*Chord {
	chords := make([]*Chord, 0, l.Strings)
	for i := 0; i < l.Strings; i++ {
		y := l.RestY(i)
		length := l.Length(i)
		startX := (l.Width - length) / 2
		endX := l.Width - startX
		rest := geom.Vec{X: l.Width / 2, Y: y}

		chords = append(chords, &Chord{
			Index: i,
			Points: [5]geom.Vec{
				{X: startX, Y: y},
				{X: startX, Y: y},
				rest,
				{X: endX, Y: y},
				{X: endX, Y: y},
			},
			Anim: Animation{
				Elapsed:  l.Duration,
				Duration: l.Duration,
				Start:    rest,
				End:      rest,
				Easing:   l.Easing,
			},
			Thickness: l.Thickness(i),
			Pitch:     l.Pitch(i),
			capture:   l.Capture,
			pluck:     l.Pluck,
		})
	}
	return chords
}
