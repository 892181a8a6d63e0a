// Package device owns the speaker: the one goroutine that drains the mixer.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Latency is the speaker buffer length.
const Latency = time.Second / 20

// Open initializes the speaker for format and starts playing s.
func Open(format beep.Format, s beep.Streamer) error {
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(Latency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s)
	return nil
}

// Close stops everything the speaker is playing.
func Close() {
	speaker.Clear()
}

type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// Locker is the lock the speaker holds while it drains its streamers.
func Locker() sync.Locker { return speakerLocker{} }
