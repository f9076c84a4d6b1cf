package anim

import (
	"log"

	"github.com/fogleman/ease"

	"github.com/matt-g-everett/rtanim/util"
)

// An Interpolator reshapes a linear progress fraction in [0,1] into an
// eased one. Implementations must be stateless; an animator owns its
// interpolator exclusively.
type Interpolator interface {
	Interpolate(fraction float64) float64
}

// An EaseInterpolator adapts a fogleman/ease function.
type EaseInterpolator struct {
	fn ease.Function
}

// NewEaseInterpolator creates an interpolator over fn.
func NewEaseInterpolator(fn ease.Function) *EaseInterpolator {
	return &EaseInterpolator{fn: fn}
}

// Interpolate applies the easing function.
func (e *EaseInterpolator) Interpolate(fraction float64) float64 {
	return e.fn(fraction)
}

// DefaultInterpolator returns the accelerate/decelerate curve installed
// when an animator starts without one.
func DefaultInterpolator() Interpolator {
	return NewEaseInterpolator(ease.InOutSine)
}

// A LUTInterpolator runs an arbitrary curve through a precomputed table,
// keeping the per-frame cost flat no matter how expensive the curve is.
type LUTInterpolator struct {
	values []float64
}

// NewLUTInterpolator bakes fn into a table of size entries.
func NewLUTInterpolator(fn ease.Function, size int) *LUTInterpolator {
	if size < 2 {
		size = 2
	}
	values := make([]float64, size)
	increment := 1.0 / float64(size-1)
	for i := range values {
		values[i] = fn(float64(i) * increment)
	}
	return &LUTInterpolator{values: values}
}

// Interpolate reads the table, interpolating linearly between entries.
func (l *LUTInterpolator) Interpolate(fraction float64) float64 {
	last := len(l.values) - 1
	if fraction <= 0 {
		return l.values[0]
	}
	if fraction >= 1 {
		return l.values[last]
	}
	scaled := fraction * float64(last)
	i := int(scaled)
	return util.Lerp(l.values[i], l.values[i+1], scaled-float64(i))
}

var easingNames = map[string]ease.Function{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-out-sine":    ease.InOutSine,
	"out-elastic":    ease.OutElastic,
	"out-bounce":     ease.OutBounce,
	"in-out-elastic": ease.InOutElastic,
	"in-out-bounce":  ease.InOutBounce,
}

// InterpolatorByName resolves a config-file easing name. Unknown names get
// the default curve with a warning rather than an error.
func InterpolatorByName(name string) Interpolator {
	if name == "" || name == "default" {
		return DefaultInterpolator()
	}
	fn, ok := easingNames[name]
	if !ok {
		log.Printf("Unknown easing %q, using the default", name)
		return DefaultInterpolator()
	}
	return NewEaseInterpolator(fn)
}
