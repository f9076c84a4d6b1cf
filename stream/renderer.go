package stream

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/rtanim/anim"
	"github.com/matt-g-everett/rtanim/api"
	"github.com/matt-g-everett/rtanim/scene"
	"github.com/matt-g-everett/rtanim/util"
)

// A segment is the slice of the strip one scene node paints, together with
// the free-standing cells its animators can drive.
type segment struct {
	node   *scene.Node
	paint  *anim.CanvasPropertyPaint
	gain   *anim.CanvasPropertyPrimitive
	start  int
	length int
}

// A delivery is one finished callback waiting to run on the control side.
type delivery struct {
	animator anim.Animator
	listener anim.Listener
}

// A deferredHook queues finished callbacks for the control goroutine so the
// render loop never runs listener code.
type deferredHook struct {
	deliveries chan<- delivery
}

// CallOnFinished hands the callback to the control goroutine.
func (h *deferredHook) CallOnFinished(a anim.Animator, l anim.Listener) {
	h.deliveries <- delivery{animator: a, listener: l}
}

// Renderer evaluates the scene once per frame and streams the resulting RGB
// data to an ledrx device.
type Renderer struct {
	config Config
	client mqtt.Client
	tree   *scene.Tree

	segments map[string]*segment
	back     colorful.Color

	// animations is shared between the config-reload and control-command
	// goroutines.
	animMu     sync.Mutex
	animations []AnimationConfig

	start      time.Time
	deliveries chan delivery
	hook       *deferredHook

	frames      int64
	lastFrameMs int64
	animating   int32
}

// NewRenderer creates an instance of a Renderer and builds the scene the
// config declares.
func NewRenderer(config Config, client mqtt.Client) *Renderer {
	r := new(Renderer)
	r.config = config
	r.client = client
	r.tree = scene.NewTree()
	r.segments = make(map[string]*segment)
	r.animations = config.Animations
	r.deliveries = make(chan delivery, 64)
	r.hook = &deferredHook{deliveries: r.deliveries}

	r.back, _ = colorful.Hex("#000005")
	if config.Background != "" {
		back, err := colorful.Hex(config.Background)
		if err != nil {
			log.Printf("Bad background colour %q: %v", config.Background, err)
		} else {
			r.back = back
		}
	}

	r.tree.Stage(func(root *scene.Node) {
		for _, nc := range config.Nodes {
			colour, err := colorful.Hex(nc.Colour)
			if err != nil {
				log.Printf("Bad colour %q for node %s: %v", nc.Colour, nc.Name, err)
				colour, _ = colorful.Hex("#808080")
			}
			node := scene.NewNode(nc.Name)
			root.AddChild(node)
			r.segments[nc.Name] = &segment{
				node:   node,
				paint:  anim.NewCanvasPropertyPaint(anim.NewPaint(colour)),
				gain:   anim.NewCanvasPropertyPrimitive(1),
				start:  nc.Start,
				length: nc.Length,
			}
		}
	})

	return r
}

// Subscribe registers the control-topic handler. Called on connect.
func (r *Renderer) Subscribe() {
	topic := r.config.Mqtt.Topics.Control
	if topic == "" {
		return
	}
	token := r.client.Subscribe(topic, 1, r.handleControl)
	token.Wait()
	if token.Error() != nil {
		log.Printf("Subscribe to %s failed: %v", topic, token.Error())
	}
}

func (r *Renderer) handleControl(client mqtt.Client, msg mqtt.Message) {
	command := string(msg.Payload())
	log.Printf("Control command: %s", command)
	r.Play(command)
}

// UpdateAnimations swaps the declared animation set. Control side; already
// staged animators are unaffected.
func (r *Renderer) UpdateAnimations(animations []AnimationConfig) {
	r.animMu.Lock()
	r.animations = animations
	r.animMu.Unlock()
	log.Printf("Loaded %d animation declarations", len(animations))
}

// Play stages and starts the declared animations whose name matches, or all
// of them when name is empty or "play".
func (r *Renderer) Play(name string) {
	r.animMu.Lock()
	declared := r.animations
	r.animMu.Unlock()

	for _, ac := range declared {
		if name != "" && name != "play" && name != ac.Name {
			continue
		}
		r.playOne(ac)
	}
}

func (r *Renderer) playOne(ac AnimationConfig) {
	seg, ok := r.segments[ac.Node]
	if !ok {
		log.Printf("Animation %s targets unknown node %s", ac.Name, ac.Node)
		return
	}

	animator := r.buildAnimator(ac, seg)
	if animator == nil {
		return
	}

	animator.SetDuration(ac.DurationMs)
	animator.SetStartDelay(ac.DelayMs)
	animator.SetInterpolator(anim.InterpolatorByName(ac.Ease))
	if ac.From != nil {
		animator.SetStartValue(*ac.From)
	}
	animName := ac.Name
	animator.SetListener(anim.ListenerFunc(func(a anim.Animator) {
		log.Printf("Animation %s finished at %v", animName, a.FinalValue())
	}))

	r.tree.Stage(func(root *scene.Node) {
		seg.node.AddAnimator(animator)
		animator.Start()
	})
}

func (r *Renderer) buildAnimator(ac AnimationConfig, seg *segment) anim.Animator {
	switch ac.Target {
	case "gain":
		return anim.NewPrimitiveAnimator(seg.gain, ac.To)
	case "paint.strokeWidth":
		return anim.NewPaintAnimator(seg.paint, anim.StrokeWidth, ac.To)
	case "paint.alpha":
		return anim.NewPaintAnimator(seg.paint, anim.PaintAlpha, ac.To)
	}
	property, ok := anim.PropertyByName(ac.Target)
	if !ok {
		log.Printf("Animation %s has unknown target %q", ac.Name, ac.Target)
		return nil
	}
	return anim.NewPropertyAnimator(property, ac.To)
}

// step advances the scene to frameTimeMs and snapshots a frame. One call
// per render frame.
func (r *Renderer) step(frameTimeMs int64) *Frame {
	info := anim.TreeInfo{FrameTimeMs: frameTimeMs, AnimationHook: r.hook}
	r.tree.Sync(&info)
	r.tree.Animate(&info)

	f := r.snapshot()

	atomic.StoreInt64(&r.lastFrameMs, frameTimeMs)
	if info.Out.HasAnimations {
		atomic.StoreInt32(&r.animating, 1)
	} else {
		atomic.StoreInt32(&r.animating, 0)
	}

	return f
}

// snapshot paints the strip from the committed scene state.
func (r *Renderer) snapshot() *Frame {
	f := NewFrame(r.config.NumPixels)
	f.Fill(r.back)

	r.tree.Visit(func(n *scene.Node) {
		seg, ok := r.segments[n.Name()]
		if !ok {
			return
		}
		props := n.RenderProperties()
		paint := seg.paint.Value

		gain := props.Alpha() * (float64(paint.Alpha) / 255.0) * seg.gain.Value
		gain = util.Clamp(gain, 0, 1)

		lit := int(paint.StrokeWidth * float64(seg.length))
		if lit > seg.length {
			lit = seg.length
		}
		offset := int(props.TranslationX())
		for i := 0; i < lit; i++ {
			f.Blend(seg.start+offset+i, paint.Colour, gain)
		}
	})

	return f
}

func (r *Renderer) sendFrame() {
	f := r.step(time.Since(r.start).Milliseconds() + 1)
	b, err := f.MarshalBinary()
	if err != nil {
		log.Printf("Dropping frame: %v", err)
		return
	}
	token := r.client.Publish(r.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
	atomic.AddInt64(&r.frames, 1)
}

// deliverFinished runs queued finished callbacks on the control side.
func (r *Renderer) deliverFinished() {
	for d := range r.deliveries {
		d.listener.OnAnimationFinished(d.animator)
	}
}

// Status reports renderer state for the status endpoint.
func (r *Renderer) Status() api.Status {
	return api.Status{
		FrameTimeMs: atomic.LoadInt64(&r.lastFrameMs),
		Animating:   atomic.LoadInt32(&r.animating) != 0,
		Frames:      atomic.LoadInt64(&r.frames),
	}
}

// Run causes the Renderer to evaluate and send frames continuously.
func (r *Renderer) Run() {
	go r.deliverFinished()

	frameRate := r.config.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	r.start = time.Now()

	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	for {
		<-publishTimer.C
		r.sendFrame()
	}
}
