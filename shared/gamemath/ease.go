package gamemath

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Curve maps normalized time in [0,1] to normalized progress.
type Curve func(t float64) float64

// Linear is evaluated in float64; gween curves run in float32.
func Linear(t float64) float64 { return t }

var easings = map[string]ease.TweenFunc{
	"inquad":    ease.InQuad,
	"outquad":   ease.OutQuad,
	"inoutquad": ease.InOutQuad,
	"outcubic":  ease.OutCubic,
	"inoutsine": ease.InOutSine,
	"outback":   ease.OutBack,
}

// FromTween adapts a gween easing function to a Curve.
func FromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Ease looks up an easing curve by name, case-insensitively. Unknown names
// fall back to linear.
func Ease(name string) Curve {
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return FromTween(fn)
	}
	return Linear
}

// KnownEase reports whether name maps to a curve.
func KnownEase(name string) bool {
	name = strings.ToLower(name)
	if name == "linear" {
		return true
	}
	_, ok := easings[name]
	return ok
}

// Interpolate evaluates c between from and to at t. The endpoints are exact:
// t <= 0 returns from and t >= 1 returns to.
func Interpolate(c Curve, from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	if c == nil {
		c = Linear
	}
	return from + (to-from)*c(t)
}
