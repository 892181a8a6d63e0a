// Package palette builds the premultiplied colours the renderer and the
// procedural textures are painted with.
package palette

import (
	"image/color"
	"math"
)

// HSV returns the colour of hue h (degrees, any sign), saturation s and value
// v at opacity alpha, premultiplied as color.RGBA requires. s, v and alpha
// are clamped to [0, 1].
func HSV(h, s, v, alpha float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v, alpha = unit(s), unit(v), unit(alpha)

	// Each channel dips from v towards v*(1-s) around its own hue offset.
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/60, 6)
		return uint8(math.Round(255 * alpha * (v - v*s*math.Max(0, math.Min(1, math.Min(k, 4-k))))))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: uint8(math.Round(255 * alpha))}
}

// Opaque is HSV at full opacity.
func Opaque(h, s, v float64) color.RGBA {
	return HSV(h, s, v, 1)
}

func unit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
