package harp

import (
	"math"

	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/geom"
)

// Trail queues the pointer path between frames and replays it in order, so a
// fast swipe crosses every string it passed over instead of jumping past them.
// The queue holds raw pointer samples; the path between them is filled in
// when it is replayed, so a long swipe never pushes its own start out.
type Trail struct {
	queue    []geom.Vec
	capacity int
	step     float64

	prev    geom.Vec
	hasPrev bool
}

// NewTrail returns a trail holding at most capacity pointer samples. Replayed
// movements longer than step are subdivided; a step <= 0 disables that.
func NewTrail(capacity int, step float64) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		queue:    make([]geom.Vec, 0, capacity),
		capacity: capacity,
		step:     step,
	}
}

func (t *Trail) Name() string { return config.InputTrail }

// Len is the number of queued pointer samples.
func (t *Trail) Len() int { return len(t.queue) }

// Push records a pointer sample, dropping the oldest when the queue is full.
func (t *Trail) Push(p geom.Vec) {
	if len(t.queue) == t.capacity {
		copy(t.queue, t.queue[1:])
		t.queue = t.queue[:len(t.queue)-1]
	}
	t.queue = append(t.queue, p)
}

// Drain calls fn for every point on the queued path, oldest first, and
// empties the queue. The path continues from the last point replayed.
func (t *Trail) Drain(fn func(geom.Vec)) {
	for _, p := range t.queue {
		if !t.hasPrev || t.step <= 0 {
			fn(p)
			t.prev, t.hasPrev = p, true
			continue
		}
		n := int(math.Ceil(p.Sub(t.prev).Len() / t.step))
		if n < 1 {
			n = 1
		}
		from := t.prev
		for k := 1; k <= n; k++ {
			fn(from.Lerp(p, float64(k)/float64(n)))
		}
		t.prev = p
	}
	t.queue = t.queue[:0]
}

func (t *Trail) Drive(chords []*Chord, cursor geom.Vec, pluck func(*Chord)) {
	t.Push(cursor)
	t.Drain(func(p geom.Vec) {
		for _, c := range chords {
			if c.Interact(p) {
				pluck(c)
			}
		}
	})
}
