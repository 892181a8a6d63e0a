// Package audio plays the pluck sample: a rotating pool of voices that share
// one decoded waveform, the sample loader and a tap on the mixed output.
package audio

import (
	"sync"

	"github.com/faiface/beep"
)

const resampleQuality = 4

// Pool rotates through a fixed number of voices, all aliasing one decoded
// buffer, so overlapping plucks never allocate a new decoder. Once every voice
// has been used the oldest one is cut off and reused.
type Pool struct {
	locker sync.Locker
	mixer  *beep.Mixer
	buffer *beep.Buffer
	voices []*beep.Ctrl
	cursor int
}

// NewPool returns a pool of size voices playing buffer into mixer. Every
// mixer change happens under locker, which must be the lock of whatever
// goroutine drains the mixer.
func NewPool(buffer *beep.Buffer, size int, mixer *beep.Mixer, locker sync.Locker) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		locker: locker,
		mixer:  mixer,
		buffer: buffer,
		voices: make([]*beep.Ctrl, size),
	}
}

// PlayNext plays the sample at pitch (a playback rate, 1 is the original
// pitch) on the voice under the cursor and advances the cursor. It returns
// the slot that was used.
func (p *Pool) PlayNext(pitch float64) int {
	p.locker.Lock()
	defer p.locker.Unlock()

	slot := p.cursor
	if old := p.voices[slot]; old != nil {
		old.Streamer = nil
	}

	var s beep.Streamer = p.buffer.Streamer(0, p.buffer.Len())
	if pitch > 0 && pitch != 1 {
		s = beep.ResampleRatio(resampleQuality, pitch, s)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	p.voices[slot] = ctrl
	p.mixer.Add(ctrl)

	p.cursor = (p.cursor + 1) % len(p.voices)
	return slot
}

// Strum plays the next voice at the original pitch.
func (p *Pool) Strum() int {
	return p.PlayNext(1)
}

// Reload swaps the shared waveform. Voices already sounding keep playing the
// old one.
func (p *Pool) Reload(buffer *beep.Buffer) {
	p.locker.Lock()
	p.buffer = buffer
	p.locker.Unlock()
}

// Cursor is the slot the next PlayNext will use.
func (p *Pool) Cursor() int {
	p.locker.Lock()
	defer p.locker.Unlock()
	return p.cursor
}

func (p *Pool) Size() int { return len(p.voices) }

// Active is the number of streamers the mixer still holds.
func (p *Pool) Active() int {
	p.locker.Lock()
	defer p.locker.Unlock()
	return p.mixer.Len()
}

// Stop silences every voice.
func (p *Pool) Stop() {
	p.locker.Lock()
	defer p.locker.Unlock()
	for i, v := range p.voices {
		if v != nil {
			v.Streamer = nil
			p.voices[i] = nil
		}
	}
	p.mixer.Clear()
}
