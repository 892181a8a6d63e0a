package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iburimskiy/digiharp/internal/easing"
)

const (
	WindowTitle = "DigiHarp"
	TPS         = 60

	// String geometry
	MinStringSize   = 12.0
	MaxStringSize   = 20.0
	MinStringLength = 400.0
	MaxStringLength = 600.0

	// Pitch range across the strings, as a playback rate of the pluck sample
	MinPitch = 0.4
	MaxPitch = 1.0

	// Interaction thresholds (pixels from the rest line)
	CaptureThreshold = 10.0
	PluckThreshold   = 30.0

	// Return animation
	AnimationDuration = 0.5 // seconds

	// Audio
	SoundSlots = 400
	SampleRate = 44100

	// Pointer trail
	TrailCapacity = 64

	// Simulated bow
	BowWidth  = 140.0
	BowHeight = 18.0

	// Rendering
	TexturesPerThickness = 4
	MinTexturesPerString = 8
	BoltSizeFactor       = 15
	ShadowOffset         = 10.0
	MeterRingSize        = 4096
)

var (
	ErrTooFewStrings   = errors.New("config: at least one string is required")
	ErrUnknownVariant  = errors.New("config: unknown variant")
	ErrUnknownInput    = errors.New("config: unknown input driver")
	ErrUnknownEasing   = errors.New("config: unknown easing")
	ErrInvalidGeometry = errors.New("config: invalid geometry")
)

// Variant names.
const (
	VariantFlat     = "flat"
	VariantTextured = "textured"
	VariantGrand    = "grand"
)

// Input driver names.
const (
	InputPointer = "pointer"
	InputTrail   = "trail"
	InputBow     = "bow"
)

// Config describes one harp variant plus the runtime choices made on the command line.
type Config struct {
	Variant      string
	WindowWidth  int
	WindowHeight int
	Strings      int

	// Textured enables shadows, bolts, frets, background art and the meter.
	Textured bool

	Input     string
	Easing    string
	SoundPath string
	AssetDir  string
	Debug     bool
}

// Preset returns the configuration of a named variant with default runtime choices.
func Preset(variant string) (Config, error) {
	cfg := Config{
		Variant:      variant,
		WindowWidth:  800,
		WindowHeight: 800,
		Strings:      10,
		Input:        InputPointer,
		Easing:       easing.ElasticOut.String(),
	}
	switch strings.ToLower(variant) {
	case VariantFlat:
	case VariantTextured:
		cfg.Textured = true
	case VariantGrand:
		cfg.Textured = true
		cfg.Strings = 16
		cfg.WindowHeight = 1000
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	cfg.Variant = strings.ToLower(variant)
	return cfg, nil
}

// Validate reports the first invariant the configuration breaks.
func (c Config) Validate() error {
	if c.Strings < 1 {
		return fmt.Errorf("%w: got %d", ErrTooFewStrings, c.Strings)
	}
	if c.WindowWidth < int(MaxStringLength) || c.WindowHeight < 100+c.Strings {
		return fmt.Errorf("%w: window %dx%d too small for %d strings",
			ErrInvalidGeometry, c.WindowWidth, c.WindowHeight, c.Strings)
	}
	switch c.Input {
	case InputPointer, InputTrail, InputBow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInput, c.Input)
	}
	if _, err := easing.Parse(c.Easing); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEasing, c.Easing)
	}
	return nil
}

// Inputs lists the input drivers in cycling order.
func Inputs() []string {
	return []string{InputPointer, InputTrail, InputBow}
}
