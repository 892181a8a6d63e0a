package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func testPool(size int) (*Pool, *beep.Mixer) {
	mixer := &beep.Mixer{}
	return NewPool(SynthesizePluck(Format(44100)), size, mixer, &sync.Mutex{}), mixer
}

func TestPoolRotation(t *testing.T) {
	const size = 4
	pool, _ := testPool(size)
	for k := 1; k <= 11; k++ {
		slot := pool.PlayNext(0.4 + 0.05*float64(k))
		if slot != (k-1)%size {
			t.Fatalf("call %d used slot %d, want %d", k, slot, (k-1)%size)
		}
		if got := pool.Cursor(); got != k%size {
			t.Fatalf("after %d calls cursor = %d, want %d", k, got, k%size)
		}
	}
	if pool.Size() != size {
		t.Errorf("Size() = %d", pool.Size())
	}
}

func TestPoolRecyclesOldestVoice(t *testing.T) {
	pool, mixer := testPool(4)
	for i := 0; i < 6; i++ {
		pool.PlayNext(1)
	}
	samples := make([][2]float64, 512)
	mixer.Stream(samples)
	if got := pool.Active(); got != 4 {
		t.Errorf("active voices = %d, want 4", got)
	}
	var energy float64
	for _, s := range samples {
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("pool produced silence")
	}
}

func TestPoolStrumAndStop(t *testing.T) {
	pool, mixer := testPool(3)
	if slot := pool.Strum(); slot != 0 {
		t.Errorf("first strum used slot %d", slot)
	}
	pool.PlayNext(0.4)
	pool.Stop()
	if pool.Active() != 0 {
		t.Errorf("active voices after Stop = %d", pool.Active())
	}
	samples := make([][2]float64, 64)
	mixer.Stream(samples)
	for i, s := range samples {
		if s != [2]float64{} {
			t.Fatalf("sample %d not silent after Stop: %v", i, s)
		}
	}
}

func TestPoolReload(t *testing.T) {
	pool, mixer := testPool(2)
	short := beep.NewBuffer(Format(44100))
	short.Append(NewPluck(44100, 880, 10*time.Millisecond))
	pool.Reload(short)
	pool.PlayNext(1)

	samples := make([][2]float64, 2048)
	mixer.Stream(samples)
	if pool.Active() != 0 {
		t.Errorf("a 10ms voice should have drained, %d active", pool.Active())
	}
}

func TestSynthesizePluck(t *testing.T) {
	format := Format(44100)
	buf := SynthesizePluck(format)
	if want := format.SampleRate.N(PluckDuration); buf.Len() != want {
		t.Fatalf("pluck length = %d, want %d", buf.Len(), want)
	}

	s := buf.Streamer(0, buf.Len())
	all := make([][2]float64, buf.Len())
	n, _ := s.Stream(all)
	rms := func(part [][2]float64) float64 {
		var sum float64
		for _, v := range part {
			if v[0] < -1 || v[0] > 1 {
				t.Fatalf("sample out of range: %v", v)
			}
			sum += v[0] * v[0]
		}
		return math.Sqrt(sum / float64(len(part)))
	}
	head, tail := rms(all[:2000]), rms(all[n-2000:n])
	if tail >= head/4 {
		t.Errorf("pluck does not decay: head %v tail %v", head, tail)
	}
}

func TestLoadSampleUnsupported(t *testing.T) {
	if _, err := LoadSample("pluck.ogg", Format(44100)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadSampleMissing(t *testing.T) {
	_, err := LoadSample(filepath.Join(t.TempDir(), "pluck1.wav"), Format(44100))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadSampleResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pluck.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	src := Format(22050)
	if err := wav.Encode(f, NewPluck(src.SampleRate, 220, 200*time.Millisecond), src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	buf, err := LoadSample(path, Format(44100))
	if err != nil {
		t.Fatalf("LoadSample: %v", err)
	}
	want := Format(44100).SampleRate.N(200 * time.Millisecond)
	if got := buf.Len(); math.Abs(float64(got-want)) > float64(want)/20 {
		t.Errorf("resampled length = %d, want about %d", got, want)
	}
}

func TestTapSnapshot(t *testing.T) {
	var next float64
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
	tap := NewTap(src, 8)
	tap.Stream(make([][2]float64, 5))
	tap.Stream(make([][2]float64, 6))

	got := tap.Snapshot(nil, 4)
	want := []float64{8, 9, 10, 11}
	if len(got) != len(want) {
		t.Fatalf("snapshot = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}
	if full := tap.Snapshot(nil, 100); len(full) != 8 || full[0] != 4 || full[7] != 11 {
		t.Errorf("full snapshot = %v", full)
	}
}

func TestTapSnapshotBeforeRingFills(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 0}
		}
		return len(samples), true
	})
	tap := NewTap(src, 16)
	if got := tap.Snapshot(nil, 4); len(got) != 0 {
		t.Fatalf("empty tap returned %v", got)
	}
	tap.Stream(make([][2]float64, 3))
	got := tap.Snapshot(nil, 10)
	if len(got) != 3 {
		t.Fatalf("snapshot = %v, want 3 samples", got)
	}
	for _, v := range got {
		if v != 0.5 {
			t.Errorf("stereo sample not folded to mono: %v", got)
		}
	}
}
