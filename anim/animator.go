package anim

import (
	"fmt"
	"log"
)

// Durations or delays outside this window are tolerated but almost
// certainly a caller mistake.
const maxSaneTimeMs = 50000

// PlayState tracks an animator through its lifecycle. States are ordered
// and an animator only ever moves forward through them.
type PlayState int

const (
	NotStarted PlayState = iota
	Running
	Finished
)

// An Animator drives one float quantity on one target from a start value to
// a final value over a fixed duration. The control thread configures and
// starts it; the render thread evaluates it once per frame.
type Animator interface {
	// OnAttach is called when the animator is bound to a target on the
	// control side.
	OnAttach(target PropertyTarget)

	// PushStaging is the commit point: control-side state becomes visible
	// to the render side. Called at most once per sync pass.
	PushStaging(target PropertyTarget, info *TreeInfo)

	// Animate evaluates one frame and reports whether the animator just
	// finished.
	Animate(target PropertyTarget, info *TreeInfo) bool

	// Start requests the staging side to begin running. The request takes
	// effect at the next sync.
	Start()

	SetInterpolator(interpolator Interpolator)
	SetDuration(durationMs int64)
	SetStartDelay(startDelayMs int64)
	SetStartValue(value float64)
	SetListener(listener Listener)

	FinalValue() float64
	PlayState() PlayState
	DirtyMask() DirtyMask
}

// A valueAccess is the bound getter/setter pair an animator reads and
// writes its target quantity through.
type valueAccess struct {
	get func(target PropertyTarget) float64
	set func(target PropertyTarget, value float64)
}

// baseAnimator is the state machine shared by every animator variant. The
// variants differ only in the valueAccess they bind.
type baseAnimator struct {
	finalValue float64
	deltaValue float64
	fromValue  float64

	interpolator Interpolator
	listener     Listener

	stagingPlayState PlayState
	playState        PlayState
	hasStartValue    bool

	startTime  int64
	duration   int64
	startDelay int64

	access valueAccess

	// self is the concrete animator handed to listeners.
	self Animator
}

func newBaseAnimator(finalValue float64, access valueAccess) baseAnimator {
	return baseAnimator{
		finalValue: finalValue,
		duration:   300,
		access:     access,
	}
}

// The control-side API has its own guards, so hitting this is a
// programming error rather than bad input.
func (b *baseAnimator) checkMutable() {
	if b.stagingPlayState != NotStarted {
		panic("animator has already been started")
	}
}

// SetInterpolator replaces the interpolator. The animator owns it
// exclusively; the previous one is discarded.
func (b *baseAnimator) SetInterpolator(interpolator Interpolator) {
	b.checkMutable()
	b.interpolator = interpolator
}

// SetStartValue fixes the value at progress 0. Without it, the target's
// current value is captured at the first sync.
func (b *baseAnimator) SetStartValue(value float64) {
	b.checkMutable()
	b.doSetStartValue(value)
}

func (b *baseAnimator) doSetStartValue(value float64) {
	b.fromValue = value
	b.deltaValue = b.finalValue - b.fromValue
	b.hasStartValue = true
}

// SetDuration sets how long the animation runs, in milliseconds.
func (b *baseAnimator) SetDuration(durationMs int64) {
	b.checkMutable()
	b.duration = durationMs
}

// SetStartDelay delays the effective start past the activation frame.
func (b *baseAnimator) SetStartDelay(startDelayMs int64) {
	b.checkMutable()
	b.startDelay = startDelayMs
}

// SetListener registers the finished callback. It fires at most once.
func (b *baseAnimator) SetListener(listener Listener) {
	b.listener = listener
}

// Start moves the staging state to Running. The render side sees the
// transition at the next sync.
func (b *baseAnimator) Start() {
	b.stagingPlayState = Running
}

// FinalValue returns the value at progress 1.
func (b *baseAnimator) FinalValue() float64 {
	return b.finalValue
}

// PlayState returns the committed, render-visible state.
func (b *baseAnimator) PlayState() PlayState {
	return b.playState
}

// OnAttach is a no-op for variants without attach behaviour.
func (b *baseAnimator) OnAttach(target PropertyTarget) {}

// DirtyMask is zero for variants without a staging dirty concept.
func (b *baseAnimator) DirtyMask() DirtyMask {
	return 0
}

// PushStaging copies the staging play state forward into the committed one
// and resolves a lazily captured start value. The committed state never
// regresses.
func (b *baseAnimator) PushStaging(target PropertyTarget, info *TreeInfo) {
	if !b.hasStartValue {
		b.doSetStartValue(b.access.get(target))
	}
	if b.stagingPlayState > b.playState {
		b.playState = b.stagingPlayState
		if b.playState == Running {
			b.transitionToRunning(info)
		}
	}
}

func (b *baseAnimator) transitionToRunning(info *TreeInfo) {
	if info.FrameTimeMs <= 0 {
		panic(fmt.Sprintf("%dms isn't a real frame time", info.FrameTimeMs))
	}
	if b.startDelay < 0 || b.startDelay > maxSaneTimeMs {
		log.Printf("Start delay of %dms is strange and confusing", b.startDelay)
	}
	b.startTime = info.FrameTimeMs + b.startDelay
	if b.startTime < 0 {
		log.Printf("Ended up with a weird start time of %dms from frame time %dms and start delay %dms; clamping to 0",
			b.startTime, info.FrameTimeMs, b.startDelay)
		// The animation then finishes on its next evaluation.
		b.startTime = 0
	}
	if b.interpolator == nil {
		b.interpolator = DefaultInterpolator()
	}
	if b.duration < 0 || b.duration > maxSaneTimeMs {
		log.Printf("Duration of %dms is strange and confusing", b.duration)
	}
}

// Animate evaluates one frame. A missed frame is absorbed by the larger
// fraction on the next call, never retried.
func (b *baseAnimator) Animate(target PropertyTarget, info *TreeInfo) bool {
	if b.playState < Running {
		return false
	}
	if b.playState == Finished {
		return false
	}

	if b.startTime > info.FrameTimeMs {
		info.Out.HasAnimations = true
		return false
	}

	fraction := 1.0
	if b.duration > 0 {
		fraction = float64(info.FrameTimeMs-b.startTime) / float64(b.duration)
	}
	if fraction >= 1.0 {
		fraction = 1.0
		b.playState = Finished
	}

	fraction = b.interpolator.Interpolate(fraction)
	b.access.set(target, b.fromValue+b.deltaValue*fraction)

	if b.playState == Finished {
		b.callOnFinishedListener(info)
		return true
	}

	info.Out.HasAnimations = true
	return false
}

func (b *baseAnimator) callOnFinishedListener(info *TreeInfo) {
	if b.listener == nil {
		return
	}
	if info.AnimationHook == nil {
		b.listener.OnAnimationFinished(b.self)
	} else {
		info.AnimationHook.CallOnFinished(b.self, b.listener)
	}
}
