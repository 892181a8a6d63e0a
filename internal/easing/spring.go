package easing

import "github.com/charmbracelet/harmonica"

const (
	springSteps     = 240
	springFrequency = 14.0
	springDamping   = 0.3
)

// springCurve is the normalized step response of a harmonica spring sampled
// over one unit of time. Index i holds the position at time i/springSteps.
var springCurve = sampleSpring()

func sampleSpring() []float64 {
	spring := harmonica.NewSpring(harmonica.FPS(springSteps), springFrequency, springDamping)
	curve := make([]float64, springSteps+1)
	var pos, vel float64
	for i := 1; i <= springSteps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		curve[i] = pos
	}
	return curve
}

func harmonicaOut(t, b, c, d float64) float64 {
	if t <= 0 {
		return b
	}
	if t >= d {
		return b + c
	}
	x := t / d * springSteps
	i := int(x)
	frac := x - float64(i)
	v := springCurve[i]*(1-frac) + springCurve[i+1]*frac
	return b + c*v
}
