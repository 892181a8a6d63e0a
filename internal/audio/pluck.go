package audio

import (
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

const (
	// PluckFrequency is the pitch of the synthesized sample at playback rate 1.
	PluckFrequency = 440.0
	PluckDuration  = 1500 * time.Millisecond

	pluckDecay = 0.996
	pluckGain  = 0.5
)

// Pluck is a Karplus-Strong plucked string: a noise burst circulating through
// a delay line one period long, averaged and damped on every pass.
type Pluck struct {
	line      []float64
	pos       int
	remaining int
}

// NewPluck returns a pluck of the given frequency lasting d. The noise burst
// is seeded so every pluck sounds the same.
func NewPluck(sr beep.SampleRate, freq float64, d time.Duration) *Pluck {
	period := int(float64(sr) / freq)
	if period < 2 {
		period = 2
	}
	rng := rand.New(rand.NewSource(1))
	line := make([]float64, period)
	for i := range line {
		line[i] = rng.Float64()*2 - 1
	}
	return &Pluck{line: line, remaining: sr.N(d)}
}

func (p *Pluck) Stream(samples [][2]float64) (n int, ok bool) {
	if p.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if p.remaining <= 0 {
			break
		}
		next := (p.pos + 1) % len(p.line)
		v := p.line[p.pos]
		p.line[p.pos] = pluckDecay * 0.5 * (v + p.line[next])
		p.pos = next

		samples[i][0] = v * pluckGain
		samples[i][1] = v * pluckGain
		p.remaining--
		n++
	}
	return n, true
}

func (p *Pluck) Err() error { return nil }

// SynthesizePluck renders the fallback pluck sample used when no sample file
// is configured.
func SynthesizePluck(format beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(NewPluck(format.SampleRate, PluckFrequency, PluckDuration))
	return buf
}
