// Package game ties the harp, its audio and its renderer into an ebiten.Game.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/digiharp/internal/audio"
	"github.com/iburimskiy/digiharp/internal/audio/device"
	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/easing"
	"github.com/iburimskiy/digiharp/internal/geom"
	"github.com/iburimskiy/digiharp/internal/harp"
	"github.com/iburimskiy/digiharp/internal/render"
)

type Game struct {
	cfg    config.Config
	logger *slog.Logger

	// audio
	format  beep.Format
	mixer   *beep.Mixer
	tap     *audio.Tap
	pool    *audio.Pool
	audioOK bool
	drain   [][2]float64

	// harp
	harp     *harp.Harp
	renderer *render.Renderer

	// status
	lastPluck harp.Pluck
	plucked   bool
	lastErr   error
}

// New acquires every resource the game needs. Missing assets and an
// unavailable audio device are logged and the game runs without them.
func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	kind, err := easing.Parse(cfg.Easing)
	if err != nil {
		return nil, err
	}
	driver, err := harp.NewDriver(cfg.Input)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		format: audio.Format(config.SampleRate),
		mixer:  &beep.Mixer{},
	}

	sample := g.loadSample(cfg.SoundPath)
	g.tap = audio.NewTap(g.mixer, config.MeterRingSize)
	g.pool = audio.NewPool(sample, config.SoundSlots, g.mixer, device.Locker())
	if err := device.Open(g.format, g.tap); err != nil {
		logger.Error("audio unavailable, running silent", "err", err)
		g.drain = make([][2]float64, g.format.SampleRate.N(time.Second/config.TPS))
	} else {
		g.audioOK = true
	}

	g.harp = harp.New(harp.LayoutFor(cfg, kind), g.pool, driver, logger)
	g.renderer = render.New(cfg, logger)

	logger.Info("harp ready",
		"variant", cfg.Variant,
		"strings", cfg.Strings,
		"input", driver.Name(),
		"easing", kind.String(),
		"voices", g.pool.Size(),
	)
	return g, nil
}

func (g *Game) loadSample(path string) *beep.Buffer {
	if path == "" {
		g.logger.Debug("no sample configured, synthesizing pluck")
		return audio.SynthesizePluck(g.format)
	}
	buf, err := audio.LoadSample(path, g.format)
	if err != nil {
		g.logger.Warn("sample unavailable, synthesizing pluck", "path", path, "err", err)
		return audio.SynthesizePluck(g.format)
	}
	g.logger.Debug("sample loaded", "path", path, "samples", buf.Len())
	return buf
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		slot := g.pool.Strum()
		g.logger.Debug("strum", "slot", slot)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleDriver()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openSampleDialog(); err != nil {
			g.logger.Error("open sample", "err", err)
			g.lastErr = err
		}
	}

	if !g.audioOK {
		g.drainSilently()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	cursor := geom.Vec{X: float64(mouseX), Y: float64(mouseY)}
	dt := 1.0 / float64(ebiten.TPS())
	if plucks := g.harp.Update(cursor, dt); len(plucks) > 0 {
		g.lastPluck = plucks[len(plucks)-1]
		g.plucked = true
	}
	return nil
}

// drainSilently pulls one frame of audio through the mixer when no speaker
// does, so finished voices are released and the meter keeps moving.
func (g *Game) drainSilently() {
	locker := device.Locker()
	locker.Lock()
	g.tap.Stream(g.drain)
	locker.Unlock()
}

func (g *Game) cycleDriver() {
	inputs := config.Inputs()
	next := inputs[(slices.Index(inputs, g.harp.Driver().Name())+1)%len(inputs)]
	d, err := harp.NewDriver(next)
	if err != nil {
		g.lastErr = err
		return
	}
	g.harp.SetDriver(d)
	g.logger.Info("input driver changed", "input", next)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.harp, g.tap)

	status := fmt.Sprintf("input: %s | voice %d/%d", g.harp.Driver().Name(), g.pool.Cursor(), g.pool.Size())
	if g.plucked {
		status += fmt.Sprintf(" | string %d pitch %.2f", g.lastPluck.String, g.lastPluck.Pitch)
	}
	if !g.audioOK {
		status += " | no audio"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	help := "Space: strum  Tab: input  O: open sample  Esc/Q: quit"

	vector.DrawFilledRect(screen, 0, 0, float32(g.cfg.WindowWidth), 36, color.RGBA{A: 140}, false)
	ebitenutil.DebugPrintAt(screen, status, 12, 4)
	ebitenutil.DebugPrintAt(screen, help, 12, 18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// Close releases resources in reverse order of acquisition.
func (g *Game) Close() {
	g.renderer.Close()
	if g.audioOK {
		device.Close()
	}
	g.pool.Stop()
}
