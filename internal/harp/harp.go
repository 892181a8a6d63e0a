// Package harp models the strings of the harp, their return animation and the
// interaction state machine that grabs and plucks them.
package harp

import (
	"log/slog"

	"github.com/iburimskiy/digiharp/internal/geom"
)

// Player plays the pluck sample at the given pitch and returns the voice slot used.
type Player interface {
	PlayNext(pitch float64) int
}

// Pluck describes one release event.
type Pluck struct {
	String int
	Pitch  float64
	Slot   int
}

// Harp owns the strings and routes pointer input to them once per frame.
type Harp struct {
	layout Layout
	chords []*Chord
	player Player
	driver Driver
	logger *slog.Logger

	plucks []Pluck
}

func New(layout Layout, player Player, driver Driver, logger *slog.Logger) *Harp {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harp{
		layout: layout,
		chords: layout.NewChords(),
		player: player,
		driver: driver,
		logger: logger,
	}
}

func (h *Harp) Layout() Layout { return h.layout }

func (h *Harp) Chords() []*Chord { return h.chords }

func (h *Harp) Driver() Driver { return h.driver }

// SetDriver swaps the input driver. Grabs held by the previous driver are
// released without a pluck.
func (h *Harp) SetDriver(d Driver) {
	for _, c := range h.chords {
		if c.Grab {
			c.release()
		}
		c.Bow = BowClear
	}
	h.driver = d
}

// Update runs one frame: interaction for the pointer at cursor, then dt
// seconds of animation. It returns the plucks of this frame; the slice is
// reused by the next call.
func (h *Harp) Update(cursor geom.Vec, dt float64) []Pluck {
	h.plucks = h.plucks[:0]
	h.driver.Drive(h.chords, cursor, h.pluck)
	for _, c := range h.chords {
		c.Animate(dt)
	}
	return h.plucks
}

func (h *Harp) pluck(c *Chord) {
	slot := -1
	if h.player != nil {
		slot = h.player.PlayNext(c.Pitch)
	}
	p := Pluck{String: c.Index, Pitch: c.Pitch, Slot: slot}
	h.plucks = append(h.plucks, p)
	h.logger.Debug("pluck", "string", p.String, "pitch", p.Pitch, "slot", p.Slot)
}
