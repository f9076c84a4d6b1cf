package anim

// A CanvasPropertyPrimitive is a free-standing mutable float shared between
// recorded display content and the animators that drive it.
type CanvasPropertyPrimitive struct {
	Value float64
}

// NewCanvasPropertyPrimitive creates a primitive cell holding value.
func NewCanvasPropertyPrimitive(value float64) *CanvasPropertyPrimitive {
	return &CanvasPropertyPrimitive{Value: value}
}

// A PrimitiveAnimator drives a CanvasPropertyPrimitive directly. The node
// target passed during evaluation is ignored.
type PrimitiveAnimator struct {
	baseAnimator
	property *CanvasPropertyPrimitive
}

// NewPrimitiveAnimator creates an animator that takes property's value to
// finalValue.
func NewPrimitiveAnimator(property *CanvasPropertyPrimitive, finalValue float64) *PrimitiveAnimator {
	a := &PrimitiveAnimator{property: property}
	a.baseAnimator = newBaseAnimator(finalValue, valueAccess{
		get: func(PropertyTarget) float64 { return property.Value },
		set: func(_ PropertyTarget, value float64) { property.Value = value },
	})
	a.self = a
	return a
}
