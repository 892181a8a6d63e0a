package config

import (
	"errors"
	"testing"

	"github.com/iburimskiy/digiharp/internal/easing"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name     string
		strings  int
		height   int
		textured bool
	}{
		{VariantFlat, 10, 800, false},
		{VariantTextured, 10, 800, true},
		{VariantGrand, 16, 1000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Preset(tt.name)
			if err != nil {
				t.Fatalf("Preset(%q): %v", tt.name, err)
			}
			if cfg.Strings != tt.strings || cfg.WindowHeight != tt.height || cfg.Textured != tt.textured {
				t.Errorf("Preset(%q) = %+v", tt.name, cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q does not validate: %v", tt.name, err)
			}
		})
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("ukulele"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base, _ := Preset(VariantFlat)

	single := base
	single.Strings = 1
	if err := single.Validate(); err != nil {
		t.Errorf("a single string should be allowed, got %v", err)
	}

	none := base
	none.Strings = 0
	if err := none.Validate(); !errors.Is(err, ErrTooFewStrings) {
		t.Errorf("expected ErrTooFewStrings, got %v", err)
	}

	input := base
	input.Input = "theremin"
	if err := input.Validate(); !errors.Is(err, ErrUnknownInput) {
		t.Errorf("expected ErrUnknownInput, got %v", err)
	}

	ease := base
	ease.Easing = "bouncy"
	if err := ease.Validate(); !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("expected ErrUnknownEasing, got %v", err)
	}

	narrow := base
	narrow.WindowWidth = 300
	if err := narrow.Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestValidateAcceptsEveryEasing(t *testing.T) {
	base, _ := Preset(VariantFlat)
	for _, name := range easing.Names() {
		cfg := base
		cfg.Easing = name
		if err := cfg.Validate(); err != nil {
			t.Errorf("easing %q rejected: %v", name, err)
		}
	}
}
