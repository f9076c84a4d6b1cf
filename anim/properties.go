package anim

// Property identifies one animatable quantity on a scene node. The set is
// fixed and dense so accessors can live in a small table.
type Property int

const (
	TranslationX Property = iota
	TranslationY
	TranslationZ
	ScaleX
	ScaleY
	Rotation
	RotationX
	RotationY
	X
	Y
	Z
	Alpha
)

var propertyNames = map[string]Property{
	"translationX": TranslationX,
	"translationY": TranslationY,
	"translationZ": TranslationZ,
	"scaleX":       ScaleX,
	"scaleY":       ScaleY,
	"rotation":     Rotation,
	"rotationX":    RotationX,
	"rotationY":    RotationY,
	"x":            X,
	"y":            Y,
	"z":            Z,
	"alpha":        Alpha,
}

// PropertyByName resolves a config-file property name.
func PropertyByName(name string) (Property, bool) {
	p, ok := propertyNames[name]
	return p, ok
}

// DirtyMask marks which staging-side properties have pending, uncommitted
// edits. One bit per property.
type DirtyMask uint32

const (
	DirtyTranslationX DirtyMask = 1 << iota
	DirtyTranslationY
	DirtyTranslationZ
	DirtyScaleX
	DirtyScaleY
	DirtyRotation
	DirtyRotationX
	DirtyRotationY
	DirtyX
	DirtyY
	DirtyZ
	DirtyAlpha
)

// Properties is one copy of a node's animatable values. A node holds two: a
// staging copy written by the control thread and a committed copy consumed
// by the render thread.
type Properties struct {
	translationX float64
	translationY float64
	translationZ float64
	scaleX       float64
	scaleY       float64
	rotation     float64
	rotationX    float64
	rotationY    float64
	x            float64
	y            float64
	z            float64
	alpha        float64
}

// DefaultProperties returns a property block at identity: unit scale, full
// alpha, zero everywhere else.
func DefaultProperties() Properties {
	return Properties{scaleX: 1, scaleY: 1, alpha: 1}
}

func (p *Properties) TranslationX() float64 { return p.translationX }
func (p *Properties) TranslationY() float64 { return p.translationY }
func (p *Properties) TranslationZ() float64 { return p.translationZ }
func (p *Properties) ScaleX() float64       { return p.scaleX }
func (p *Properties) ScaleY() float64       { return p.scaleY }
func (p *Properties) Rotation() float64     { return p.rotation }
func (p *Properties) RotationX() float64    { return p.rotationX }
func (p *Properties) RotationY() float64    { return p.rotationY }
func (p *Properties) X() float64            { return p.x }
func (p *Properties) Y() float64            { return p.y }
func (p *Properties) Z() float64            { return p.z }
func (p *Properties) Alpha() float64        { return p.alpha }

func (p *Properties) SetTranslationX(v float64) { p.translationX = v }
func (p *Properties) SetTranslationY(v float64) { p.translationY = v }
func (p *Properties) SetTranslationZ(v float64) { p.translationZ = v }
func (p *Properties) SetScaleX(v float64)       { p.scaleX = v }
func (p *Properties) SetScaleY(v float64)       { p.scaleY = v }
func (p *Properties) SetRotation(v float64)     { p.rotation = v }
func (p *Properties) SetRotationX(v float64)    { p.rotationX = v }
func (p *Properties) SetRotationY(v float64)    { p.rotationY = v }
func (p *Properties) SetX(v float64)            { p.x = v }
func (p *Properties) SetY(v float64)            { p.y = v }
func (p *Properties) SetZ(v float64)            { p.z = v }
func (p *Properties) SetAlpha(v float64)        { p.alpha = v }

// Get reads one property by identifier.
func (p *Properties) Get(property Property) float64 {
	return propertyAccessLUT[property].get(p)
}

// Set writes one property by identifier.
func (p *Properties) Set(property Property, value float64) {
	propertyAccessLUT[property].set(p, value)
}

// DirtyBit returns the dirty-mask bit covering a property.
func DirtyBit(property Property) DirtyMask {
	return propertyAccessLUT[property].dirtyMask
}
