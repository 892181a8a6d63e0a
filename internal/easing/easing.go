// Package easing holds the return-to-rest curves used by plucked strings and
// the shadow falloff used when drawing them.
package easing

import (
	"fmt"
	"math"
)

// Func maps elapsed time t in [0, d] to a value moving from b to b+c.
type Func func(t, b, c, d float64) float64

// Kind selects one of the fixed easing curves.
type Kind int

const (
	ElasticOut Kind = iota
	SpringOut
	BackOut
	Linear
	Harmonica
)

var names = [...]string{
	ElasticOut: "elastic",
	SpringOut:  "spring",
	BackOut:    "back",
	Linear:     "linear",
	Harmonica:  "harmonica",
}

var funcs = [...]Func{
	ElasticOut: elasticOut,
	SpringOut:  springOut,
	BackOut:    backOut,
	Linear:     linear,
	Harmonica:  harmonicaOut,
}

// Parse returns the kind registered under name.
func Parse(name string) (Kind, error) {
	for k, n := range names {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("easing: unknown kind %q", name)
}

// Names lists the registered kinds in declaration order.
func Names() []string {
	return append([]string(nil), names[:]...)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Func returns the curve for k, falling back to ElasticOut for unknown kinds.
func (k Kind) Func() Func {
	if k < 0 || int(k) >= len(funcs) {
		return funcs[ElasticOut]
	}
	return funcs[k]
}

// Ease evaluates the curve of k.
func (k Kind) Ease(t, b, c, d float64) float64 {
	return k.Func()(t, b, c, d)
}

func elasticOut(t, b, c, d float64) float64 {
	if t <= 0 {
		return b
	}
	if t >= d {
		return b + c
	}
	t /= d
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// springOut is a damped cosine: 4 half-oscillations decaying with factor 2.
func springOut(t, b, c, d float64) float64 {
	if t <= 0 {
		return b
	}
	if t >= d {
		return b + c
	}
	const (
		frequency = 4.0
		damping   = 2.0
	)
	n := t / d
	return b + c*(1-math.Exp(-damping*n)*math.Cos(frequency*math.Pi*n))
}

func backOut(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	const s = 1.70158
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func linear(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	return c*t/d + b
}

// ShadowFalloff is an inverse parabola over t in [0, 1]: zero at both ends and
// one in the middle. It scales the shadow under a taut string so the shadow
// thins out towards the anchors.
func ShadowFalloff(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return 4 * t * (1 - t)
}
