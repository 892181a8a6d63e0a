package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a stream through unchanged and keeps the most recent output,
// folded to mono, for the resonance meter.
type Tap struct {
	src beep.Streamer

	mu      sync.RWMutex
	ring    []float64
	head    int // next write position
	written int // samples recorded, capped at len(ring)
}

// NewTap records the last size mono samples streamed from src.
func NewTap(src beep.Streamer, size int) *Tap {
	return &Tap{src: src, ring: make([]float64, max(size, 1))}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 {
		return n, ok
	}
	t.mu.Lock()
	for _, s := range samples[:n] {
		t.ring[t.head] = (s[0] + s[1]) / 2
		t.head = (t.head + 1) % len(t.ring)
	}
	t.written = min(t.written+n, len(t.ring))
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Snapshot copies up to the last n recorded samples into dst, oldest first,
// and returns the filled slice. Fewer than n come back until the ring fills.
func (t *Tap) Snapshot(dst []float64, n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	dst = dst[:0]
	n = min(n, t.written)
	if n <= 0 {
		return dst
	}
	start := (t.head - n + len(t.ring)) % len(t.ring)
	if end := start + n; end <= len(t.ring) {
		return append(dst, t.ring[start:end]...)
	}
	dst = append(dst, t.ring[start:]...)
	return append(dst, t.ring[:t.head]...)
}
