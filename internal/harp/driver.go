package harp

import (
	"fmt"

	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/geom"
)

// Driver turns the pointer position of one frame into interaction samples for
// every string. pluck is called once for each string that was plucked.
type Driver interface {
	Name() string
	Drive(chords []*Chord, cursor geom.Vec, pluck func(*Chord))
}

// NewDriver returns the driver registered under name.
func NewDriver(name string) (Driver, error) {
	switch name {
	case config.InputPointer:
		return Pointer{}, nil
	case config.InputTrail:
		return NewTrail(config.TrailCapacity, config.CaptureThreshold), nil
	case config.InputBow:
		return NewBow(config.BowWidth, config.BowHeight), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownInput, name)
	}
}

// Pointer feeds the instantaneous pointer position.
type Pointer struct{}

func (Pointer) Name() string { return config.InputPointer }

func (Pointer) Drive(chords []*Chord, cursor geom.Vec, pluck func(*Chord)) {
	for _, c := range chords {
		if c.Interact(cursor) {
			pluck(c)
		}
	}
}
