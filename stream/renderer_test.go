package stream

import (
	"sync"
	"testing"

	"gopkg.in/yaml.v2"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	var config Config
	if err := yaml.Unmarshal([]byte(sampleConfig), &config); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	config.NumPixels = 60
	return NewRenderer(config, nil)
}

func TestRendererBuildsDeclaredSegments(t *testing.T) {
	r := testRenderer(t)
	seg, ok := r.segments["star"]
	if !ok {
		t.Fatal("star segment missing")
	}
	if seg.start != 0 || seg.length != 50 {
		t.Fatalf("segment = %+v", seg)
	}
	if seg.paint.Value.Alpha != 255 || seg.gain.Value != 1 {
		t.Fatal("segment cells not at their defaults")
	}
}

func TestPlayRunsDeclaredAnimationToCompletion(t *testing.T) {
	r := testRenderer(t)
	r.Play("grow")

	// First frame commits and activates; the stroke width then eases from
	// its captured value to the declared target.
	r.step(1)
	if !r.Status().Animating {
		t.Fatal("expected the renderer to report animating")
	}

	r.step(251)
	seg := r.segments["star"]
	mid := seg.paint.Value.StrokeWidth

	r.step(601)
	if got := seg.paint.Value.StrokeWidth; got != 0.5 {
		t.Fatalf("expected stroke width to land on 0.5, got %v", got)
	}
	if mid == 0.5 {
		t.Fatal("stroke width jumped straight to the target")
	}

	r.step(700)
	if r.Status().Animating {
		t.Fatal("renderer still reports animating after completion")
	}
}

func TestPlayWithDelayReportsAnimating(t *testing.T) {
	r := testRenderer(t)
	r.Play("fade")

	r.step(1) // activates with a 200ms delay
	f := r.step(100)
	if f == nil || f.Len() != 60 {
		t.Fatalf("bad frame: %+v", f)
	}
	if !r.Status().Animating {
		t.Fatal("a delayed animation must keep frames coming")
	}
}

func TestPlayUnknownNameIsHarmless(t *testing.T) {
	r := testRenderer(t)
	r.Play("nonsense")
	r.step(1)
	if r.Status().Animating {
		t.Fatal("nothing should be animating")
	}
}

func TestUpdateAnimationsSwapsDeclarations(t *testing.T) {
	r := testRenderer(t)
	r.UpdateAnimations([]AnimationConfig{{
		Name:       "blink",
		Node:       "star",
		Target:     "gain",
		To:         0,
		DurationMs: 100,
	}})

	r.Play("blink")
	r.step(1)
	r.step(201)

	if got := r.segments["star"].gain.Value; got != 0 {
		t.Fatalf("expected gain driven to 0, got %v", got)
	}
}

func TestUpdateAnimationsConcurrentWithPlay(t *testing.T) {
	// The config-reload and control-command goroutines touch the declared
	// animations at the same time.
	r := testRenderer(t)

	declarations := []AnimationConfig{{
		Name:       "blink",
		Node:       "star",
		Target:     "gain",
		To:         0,
		DurationMs: 100,
	}}

	// Load the declarations once up front so every Play can observe them;
	// the concurrent loops below remain the -race exerciser.
	r.UpdateAnimations(declarations)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			r.UpdateAnimations(declarations)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			r.Play("blink")
		}
	}()
	wg.Wait()

	// Every staged copy finishes on the same frame; drain their callbacks
	// the way Run does.
	go r.deliverFinished()

	r.step(1)
	r.step(201)
	if got := r.segments["star"].gain.Value; got != 0 {
		t.Fatalf("expected gain driven to 0, got %v", got)
	}
}

func TestStatusCountsFrames(t *testing.T) {
	r := testRenderer(t)
	if r.Status().Frames != 0 {
		t.Fatal("fresh renderer has published frames")
	}
	r.step(1)
	if got := r.Status().FrameTimeMs; got != 1 {
		t.Fatalf("frame time = %d", got)
	}
}
