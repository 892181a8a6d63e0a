package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("audio: unsupported file type")

// Format is the output format every sample is converted to.
func Format(rate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
}

// Extensions lists the sample file patterns LoadSample understands.
func Extensions() []string {
	return []string{"*.wav", "*.mp3", "*.flac"}
}

// LoadSample decodes a wav, mp3 or flac file fully into memory, resampled to
// format's sample rate.
func LoadSample(path string, format beep.Format) (*beep.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		src      beep.Format
	)
	switch ext {
	case ".wav":
		streamer, src, err = wav.Decode(f)
	case ".mp3":
		streamer, src, err = mp3.Decode(f)
	case ".flac":
		streamer, src, err = flac.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if src.SampleRate != format.SampleRate {
		s = beep.Resample(resampleQuality, src.SampleRate, format.SampleRate, s)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no audio data", filepath.Base(path))
	}
	return buf, nil
}
