// Package render draws the harp with ebiten: strings placed along their
// splines, shadows, bolts, frets, the background and the resonance meter.
package render

import (
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/digiharp/internal/audio"
	"github.com/iburimskiy/digiharp/internal/config"
	"github.com/iburimskiy/digiharp/internal/easing"
	"github.com/iburimskiy/digiharp/internal/geom"
	"github.com/iburimskiy/digiharp/internal/harp"
	"github.com/iburimskiy/digiharp/internal/render/palette"
)

const (
	boltInset       = 10
	boltShadowAngle = math.Pi / 4
	boltShadowDist  = 4
	meterHeight     = 40
	meterSamples    = 512
)

// Renderer owns the textures and scratch buffers used every frame.
type Renderer struct {
	cfg       config.Config
	textures  *Textures
	roundMask *ebiten.Shader

	op    *ebiten.DrawImageOptions
	quads []geom.Quad
	meter []float64
	phase float64
}

// New prepares a renderer for cfg. A shader that fails to compile is logged
// and the background is then drawn without rounded corners.
func New(cfg config.Config, logger *slog.Logger) *Renderer {
	r := &Renderer{
		cfg: cfg,
		op:  &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear},
	}
	if !cfg.Textured {
		return r
	}
	r.textures = LoadTextures(cfg.AssetDir, cfg.WindowWidth, cfg.WindowHeight, logger)
	shader, err := compileRoundMask()
	if err != nil {
		logger.Error("shader unavailable", "err", err)
	} else {
		r.roundMask = shader
	}
	return r
}

// Close releases textures and the shader.
func (r *Renderer) Close() {
	if r.roundMask != nil {
		r.roundMask.Deallocate()
		r.roundMask = nil
	}
	if r.textures != nil {
		r.textures.Deallocate()
		r.textures = nil
	}
}

// Draw renders one frame. tap may be nil, which hides the meter.
func (r *Renderer) Draw(screen *ebiten.Image, h *harp.Harp, tap *audio.Tap) {
	r.phase += 1.0 / config.TPS

	if r.textures == nil {
		screen.Fill(color.White)
		r.drawFlat(screen, h)
	} else {
		screen.Fill(color.RGBA{R: 24, G: 16, B: 12, A: 255})
		r.drawMasked(screen, r.textures.Background)
		r.drawFrets(screen, h)
		r.drawTextured(screen, h)
		if tap != nil {
			r.drawMeter(screen, tap)
		}
	}

	if bow, ok := h.Driver().(*harp.Bow); ok {
		r.drawBow(screen, bow)
	}
}

func (r *Renderer) samples(c *harp.Chord) int {
	return geom.SampleCount(c.Thickness, config.TexturesPerThickness, config.MinTexturesPerString)
}

func (r *Renderer) drawFlat(screen *ebiten.Image, h *harp.Harp) {
	for _, c := range h.Chords() {
		r.quads = geom.AppendQuads(r.quads[:0], c.Points, r.samples(c), c.Thickness)
		clr := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		if c.Grab {
			clr = color.RGBA{R: 180, G: 60, B: 40, A: 255}
		}
		w := float32(c.Thickness / 2)
		for i := 1; i < len(r.quads); i++ {
			a, b := r.quads[i-1].Center, r.quads[i].Center
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
		}
		for _, p := range []geom.Vec{c.Points[0], c.Points[4]} {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), w, clr, true)
		}
	}
}

func (r *Renderer) drawTextured(screen *ebiten.Image, h *harp.Harp) {
	for _, c := range h.Chords() {
		r.quads = geom.AppendQuads(r.quads[:0], c.Points, r.samples(c), c.Thickness)

		for _, q := range r.quads {
			f := easing.ShadowFalloff(q.T)
			shadow := q
			shadow.Center = q.Center.Add(geom.Vec{Y: config.ShadowOffset * f})
			shadow.Height = q.Height * (0.6 + 0.8*f)
			r.drawQuad(screen, r.textures.Shadow, shadow, 0.55)
		}
		for _, q := range r.quads {
			r.drawQuad(screen, r.textures.String, q, 1)
		}
		r.drawBolts(screen, c)
	}
}

// drawQuad draws img stretched to q, rotated around its centre.
func (r *Renderer) drawQuad(dst, img *ebiten.Image, q geom.Quad, alpha float32) {
	b := img.Bounds()
	op := r.op
	op.GeoM.Reset()
	op.GeoM.Scale(q.Width/float64(b.Dx()), q.Height/float64(b.Dy()))
	op.GeoM.Translate(-q.Width/2, -q.Height/2)
	op.GeoM.Rotate(q.Angle)
	op.GeoM.Translate(q.Center.X, q.Center.Y)
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

func (r *Renderer) drawBolts(screen *ebiten.Image, c *harp.Chord) {
	size := c.Thickness + config.BoltSizeFactor
	shadowOffset := geom.Polar(boltShadowDist, boltShadowAngle)
	for _, p := range []geom.Vec{
		c.Points[0].Sub(geom.Vec{X: boltInset}),
		c.Points[4].Add(geom.Vec{X: boltInset}),
	} {
		q := geom.Quad{Center: p.Add(shadowOffset), Width: size, Height: size}
		r.drawTinted(screen, r.textures.Bolt, q, 0, 0.45)
		q.Center = p
		r.drawQuad(screen, r.textures.Bolt, q, 1)
	}
}

// drawTinted draws img as a flat silhouette of the given brightness.
func (r *Renderer) drawTinted(dst, img *ebiten.Image, q geom.Quad, brightness, alpha float32) {
	b := img.Bounds()
	op := r.op
	op.GeoM.Reset()
	op.GeoM.Scale(q.Width/float64(b.Dx()), q.Height/float64(b.Dy()))
	op.GeoM.Translate(q.Center.X-q.Width/2, q.Center.Y-q.Height/2)
	op.ColorScale.Reset()
	op.ColorScale.Scale(brightness*alpha, brightness*alpha, brightness*alpha, alpha)
	dst.DrawImage(img, op)
}

// drawFrets marks where the grabbable span of each string begins and ends.
func (r *Renderer) drawFrets(screen *ebiten.Image, h *harp.Harp) {
	for _, c := range h.Chords() {
		rest := c.Rest()
		m := c.Margin()
		height := c.Thickness + 8
		for _, x := range []float64{c.Points[0].X + m, c.Points[4].X - m} {
			q := geom.Quad{Center: geom.Vec{X: x, Y: rest.Y}, Width: 4, Height: height}
			r.drawQuad(screen, r.textures.Fret, q, 0.8)
		}
	}
}

// drawMeter plots the most recent output as a thin oscilloscope strip.
func (r *Renderer) drawMeter(screen *ebiten.Image, tap *audio.Tap) {
	r.meter = tap.Snapshot(r.meter, meterSamples)
	if len(r.meter) < 2 {
		return
	}
	w := float64(r.cfg.WindowWidth)
	mid := float64(r.cfg.WindowHeight) - meterHeight/2 - 6
	step := w / float64(len(r.meter)-1)
	clr := palette.HSV(r.phase*40, 0.5, 0.95, 0.7)
	for i := 1; i < len(r.meter); i++ {
		y0 := mid - clampUnit(r.meter[i-1])*meterHeight/2
		y1 := mid - clampUnit(r.meter[i])*meterHeight/2
		x0, x1 := float64(i-1)*step, float64(i)*step
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func (r *Renderer) drawBow(screen *ebiten.Image, bow *harp.Bow) {
	rect := bow.Rect()
	w, h := rect.Max.X-rect.Min.X, rect.Max.Y-rect.Min.Y
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(w), float32(h),
		color.RGBA{R: 120, G: 80, B: 40, A: 90}, true)
	edge := bow.Edge()
	vector.StrokeLine(screen, float32(rect.Min.X), float32(edge.Y), float32(rect.Max.X), float32(edge.Y), 2,
		color.RGBA{R: 240, G: 220, B: 180, A: 220}, true)
}
