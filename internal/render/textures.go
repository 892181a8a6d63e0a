package render

import (
	"image"
	"image/color"
	_ "image/png"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/digiharp/internal/render/palette"
)

// Textures are the images drawn along and around the strings. Each one is
// generated at startup unless an override file exists in the asset directory.
type Textures struct {
	String     *ebiten.Image
	Shadow     *ebiten.Image
	Bolt       *ebiten.Image
	Fret       *ebiten.Image
	Background *ebiten.Image
}

// LoadTextures builds the texture set for a width*height window. Files named
// string.png, shadow.png, bolt.png, fret.png and background.png in dir
// replace the generated images.
func LoadTextures(dir string, width, height int, logger *slog.Logger) *Textures {
	load := func(name string, gen func() image.Image) *ebiten.Image {
		if dir != "" {
			path := filepath.Join(dir, name)
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				logger.Debug("texture loaded", "path", path)
				return img
			}
			logger.Debug("texture override unavailable, generating", "path", path, "err", err)
		}
		return ebiten.NewImageFromImage(gen())
	}
	return &Textures{
		String:     load("string.png", func() image.Image { return stringImage(32, 16) }),
		Shadow:     load("shadow.png", func() image.Image { return shadowImage(32, 16) }),
		Bolt:       load("bolt.png", func() image.Image { return boltImage(32) }),
		Fret:       load("fret.png", func() image.Image { return fretImage(8, 32) }),
		Background: load("background.png", func() image.Image { return backgroundImage(width, height) }),
	}
}

// Deallocate releases the GPU memory of every texture.
func (t *Textures) Deallocate() {
	for _, img := range []*ebiten.Image{t.String, t.Shadow, t.Bolt, t.Fret, t.Background} {
		if img != nil {
			img.Deallocate()
		}
	}
}

// stringImage is a wound metal string: diagonal windings over a cylinder shade.
func stringImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		ny := (float64(y)+0.5)/float64(h)*2 - 1
		shade := math.Sqrt(math.Max(0, 1-ny*ny))
		for x := 0; x < w; x++ {
			winding := 0.5 + 0.5*math.Sin(float64(x+y)*math.Pi/3)
			v := (0.35 + 0.5*shade) * (0.8 + 0.2*winding)
			img.SetRGBA(x, y, palette.Opaque(40, 0.35, v))
		}
	}
	return img
}

// shadowImage is a horizontal band with a gaussian vertical falloff, standing
// in for a blurred copy of the string.
func shadowImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		ny := (float64(y)+0.5)/float64(h)*2 - 1
		a := uint8(200 * math.Exp(-4*ny*ny))
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{A: a})
		}
	}
	return img
}

// boltImage is a round tuning pin with a highlight and a slot.
func boltImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := (float64(x)+0.5-c)/c, (float64(y)+0.5-c)/c
			d := math.Hypot(dx, dy)
			if d > 1 {
				continue
			}
			light := 1 - math.Hypot(dx+0.35, dy+0.35)/1.6
			v := 0.45 + 0.5*math.Max(0, light)
			if math.Abs(dx-dy) < 0.12 && d < 0.7 {
				v *= 0.45
			}
			alpha := math.Min(1, (1-d)*c)
			img.SetRGBA(x, y, palette.HSV(45, 0.55, v, alpha))
		}
	}
	return img
}

// fretImage is a vertical metal bar, lit from the left.
func fretImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		nx := (float64(x) + 0.5) / float64(w)
		v := 0.55 + 0.4*math.Sin(nx*math.Pi)*(1-0.4*nx)
		c := palette.Opaque(210, 0.08, v)
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// backgroundImage is a warm wooden soundboard: a vertical gradient with grain.
func backgroundImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			grain := math.Sin(float64(x)*0.045+math.Sin(float64(y)*0.013)*3) * 0.04
			v := 0.42 - 0.12*ratio + grain
			img.SetRGBA(x, y, palette.Opaque(28+6*ratio, 0.55, v))
		}
	}
	return img
}
