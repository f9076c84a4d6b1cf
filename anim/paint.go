package anim

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaintField names an animatable field of a Paint. The set is closed;
// referencing anything else is a programming error.
type PaintField int

const (
	StrokeWidth PaintField = iota
	PaintAlpha
)

// A Paint is the attribute bundle a piece of content is drawn with. Alpha
// is an 8-bit channel; animators work in float and convert on write.
type Paint struct {
	Colour      colorful.Color
	Alpha       uint8
	StrokeWidth float64
}

// NewPaint creates an opaque paint in the given colour.
func NewPaint(colour colorful.Color) Paint {
	return Paint{Colour: colour, Alpha: 255, StrokeWidth: 1}
}

// A CanvasPropertyPaint is a shared mutable Paint cell, the paint-bundle
// analogue of CanvasPropertyPrimitive.
type CanvasPropertyPaint struct {
	Value Paint
}

// NewCanvasPropertyPaint creates a paint cell holding paint.
func NewCanvasPropertyPaint(paint Paint) *CanvasPropertyPaint {
	return &CanvasPropertyPaint{Value: paint}
}

// A PaintAnimator drives one field of a CanvasPropertyPaint. The node
// target passed during evaluation is ignored.
type PaintAnimator struct {
	baseAnimator
	property *CanvasPropertyPaint
	field    PaintField
}

// NewPaintAnimator creates an animator that takes field on property to
// finalValue.
func NewPaintAnimator(property *CanvasPropertyPaint, field PaintField, finalValue float64) *PaintAnimator {
	a := &PaintAnimator{property: property, field: field}
	a.baseAnimator = newBaseAnimator(finalValue, valueAccess{get: a.getValue, set: a.setValue})
	a.self = a
	return a
}

func (a *PaintAnimator) getValue(PropertyTarget) float64 {
	switch a.field {
	case StrokeWidth:
		return a.property.Value.StrokeWidth
	case PaintAlpha:
		return float64(a.property.Value.Alpha)
	}
	panic(fmt.Sprintf("unknown paint field %d", int(a.field)))
}

func (a *PaintAnimator) setValue(_ PropertyTarget, value float64) {
	switch a.field {
	case StrokeWidth:
		a.property.Value.StrokeWidth = value
		return
	case PaintAlpha:
		a.property.Value.Alpha = toUint8(value)
		return
	}
	panic(fmt.Sprintf("unknown paint field %d", int(a.field)))
}

// toUint8 rounds to the nearest channel value and clamps to [0, 255].
func toUint8(value float64) uint8 {
	c := int(value + 0.5)
	if c < 0 {
		c = 0
	} else if c > 255 {
		c = 255
	}
	return uint8(c)
}
