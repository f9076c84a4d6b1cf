package anim

// A PropertyTarget is a scene object whose animatable properties exist in
// two copies: a staging copy mutated by the control thread and a committed
// copy consumed by the render thread. The target's lifetime is the caller's
// problem; animators only ever borrow it for the duration of a call.
type PropertyTarget interface {
	// StagingProperties is the control-side copy.
	StagingProperties() *Properties

	// RenderProperties is the committed copy, read during evaluation.
	RenderProperties() *Properties

	// AnimatorProperties is the committed copy as written by animators.
	AnimatorProperties() *Properties

	// IsPropertyDirty reports whether a staging value covered by mask has a
	// pending, uncommitted edit.
	IsPropertyDirty(mask DirtyMask) bool
}

type propertyAccess struct {
	dirtyMask DirtyMask
	get       func(p *Properties) float64
	set       func(p *Properties, value float64)
}

// Maps the Property enum to accessors.
var propertyAccessLUT = [...]propertyAccess{
	TranslationX: {DirtyTranslationX, (*Properties).TranslationX, (*Properties).SetTranslationX},
	TranslationY: {DirtyTranslationY, (*Properties).TranslationY, (*Properties).SetTranslationY},
	TranslationZ: {DirtyTranslationZ, (*Properties).TranslationZ, (*Properties).SetTranslationZ},
	ScaleX:       {DirtyScaleX, (*Properties).ScaleX, (*Properties).SetScaleX},
	ScaleY:       {DirtyScaleY, (*Properties).ScaleY, (*Properties).SetScaleY},
	Rotation:     {DirtyRotation, (*Properties).Rotation, (*Properties).SetRotation},
	RotationX:    {DirtyRotationX, (*Properties).RotationX, (*Properties).SetRotationX},
	RotationY:    {DirtyRotationY, (*Properties).RotationY, (*Properties).SetRotationY},
	X:            {DirtyX, (*Properties).X, (*Properties).SetX},
	Y:            {DirtyY, (*Properties).Y, (*Properties).SetY},
	Z:            {DirtyZ, (*Properties).Z, (*Properties).SetZ},
	Alpha:        {DirtyAlpha, (*Properties).Alpha, (*Properties).SetAlpha},
}

// A PropertyAnimator drives one geometric or visual property of a scene
// node. Evaluation reads and writes the node's committed property copy;
// only attachment touches the staging copy.
type PropertyAnimator struct {
	baseAnimator
	access *propertyAccess
}

// NewPropertyAnimator creates an animator that takes property to
// finalValue.
func NewPropertyAnimator(property Property, finalValue float64) *PropertyAnimator {
	a := &PropertyAnimator{access: &propertyAccessLUT[property]}
	a.baseAnimator = newBaseAnimator(finalValue, valueAccess{get: a.getValue, set: a.setValue})
	a.self = a
	return a
}

// OnAttach captures a pending staging edit as the start value, then writes
// the final value through to the staging copy so a node that never runs the
// animation still lands on the right end state.
func (a *PropertyAnimator) OnAttach(target PropertyTarget) {
	if !a.hasStartValue && target.IsPropertyDirty(a.access.dirtyMask) {
		a.SetStartValue(a.access.get(target.StagingProperties()))
	}
	a.access.set(target.StagingProperties(), a.finalValue)
}

// DirtyMask returns the bit covering the animated property.
func (a *PropertyAnimator) DirtyMask() DirtyMask {
	return a.access.dirtyMask
}

func (a *PropertyAnimator) getValue(target PropertyTarget) float64 {
	return a.access.get(target.RenderProperties())
}

func (a *PropertyAnimator) setValue(target PropertyTarget, value float64) {
	a.access.set(target.AnimatorProperties(), value)
}
