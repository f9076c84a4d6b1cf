package anim

// TreeInfo carries per-frame state through a sync or animate pass over the
// scene tree. One instance is built per frame by the render loop.
type TreeInfo struct {
	// FrameTimeMs is the frame clock in milliseconds. It must be positive
	// by the time any animator activates.
	FrameTimeMs int64

	// AnimationHook, when set, receives finished callbacks instead of the
	// listener being invoked directly on the render loop.
	AnimationHook AnimationHook

	Out TreeInfoOutput
}

// TreeInfoOutput accumulates results across every animator evaluated this
// frame.
type TreeInfoOutput struct {
	// HasAnimations is true when something still needs another frame.
	HasAnimations bool
}

// A Listener is notified when an animator finishes. It fires at most once
// per animator, on the frame the animator reaches Finished.
type Listener interface {
	OnAnimationFinished(a Animator)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(a Animator)

// OnAnimationFinished calls f.
func (f ListenerFunc) OnAnimationFinished(a Animator) {
	f(a)
}

// An AnimationHook reroutes finished callbacks, typically onto a thread
// where listener code is safe to run. The render loop never needs to know
// whether the listener can be called in place.
type AnimationHook interface {
	CallOnFinished(a Animator, l Listener)
}
