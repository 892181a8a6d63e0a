package render

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/roundmask.kage
var roundMaskSrc []byte

const cornerRadius = 28

func compileRoundMask() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(roundMaskSrc)
	if err != nil {
		return nil, fmt.Errorf("compile rounded mask shader: %w", err)
	}
	return s, nil
}

// drawMasked draws img over dst with rounded corners, or plainly when the
// shader is unavailable.
func (r *Renderer) drawMasked(dst, img *ebiten.Image) {
	if r.roundMask == nil {
		r.op.GeoM.Reset()
		r.op.ColorScale.Reset()
		dst.DrawImage(img, r.op)
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = img
	op.Uniforms = map[string]any{
		"Radius": float32(cornerRadius),
		"Size":   []float32{float32(w), float32(h)},
	}
	dst.DrawRectShader(w, h, r.roundMask, op)
}
