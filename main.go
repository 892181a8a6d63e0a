package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/easing"
	"github.com/iburimskiy/digiharp/internal/game"
)

// logger is replaced by initLogger once flags are parsed.
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func main() {
	variant := flag.String("variant", config.VariantTextured, "harp variant: flat, textured or grand")
	input := flag.String("input", config.InputPointer, "input driver: pointer, trail or bow")
	easingName := flag.String("easing", easing.ElasticOut.String(), "return animation: "+strings.Join(easing.Names(), ", "))
	sound := flag.String("sound", "", "pluck sample (wav, mp3 or flac); synthesized when empty")
	assets := flag.String("assets", "", "directory with texture overrides")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	initLogger(*debug)

	cfg, err := config.Preset(*variant)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	cfg.Input = *input
	cfg.Easing = *easingName
	cfg.SoundPath = *sound
	cfg.AssetDir = *assets
	cfg.Debug = *debug
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
