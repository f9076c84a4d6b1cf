package anim

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

func TestToUint8ClampsAndRounds(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.6, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := toUint8(tt.in); got != tt.want {
			t.Errorf("toUint8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStrokeWidthZeroDurationSetsExactFinal(t *testing.T) {
	paint := NewCanvasPropertyPaint(NewPaint(colorful.Color{R: 1}))
	paint.Value.StrokeWidth = 1.0

	a := NewPaintAnimator(paint, StrokeWidth, 5.0)
	a.SetDuration(0)
	a.Start()
	a.PushStaging(nil, &TreeInfo{FrameTimeMs: 1})

	if !a.Animate(nil, &TreeInfo{FrameTimeMs: 1}) {
		t.Fatal("zero-duration paint animator should finish immediately")
	}
	if got := paint.Value.StrokeWidth; got != 5.0 {
		t.Fatalf("expected stroke width exactly 5.0, got %v", got)
	}
}

func TestAlphaAnimationWritesRoundedChannel(t *testing.T) {
	paint := NewCanvasPropertyPaint(NewPaint(colorful.Color{B: 1}))
	paint.Value.Alpha = 0

	a := NewPaintAnimator(paint, PaintAlpha, 255)
	a.SetDuration(1000)
	a.SetInterpolator(NewEaseInterpolator(ease.Linear))
	a.Start()
	a.PushStaging(nil, &TreeInfo{FrameTimeMs: 1})

	a.Animate(nil, &TreeInfo{FrameTimeMs: 501})
	if got := paint.Value.Alpha; got != 128 {
		t.Fatalf("expected alpha channel 128 at the halfway point, got %d", got)
	}

	a.Animate(nil, &TreeInfo{FrameTimeMs: 1001})
	if got := paint.Value.Alpha; got != 255 {
		t.Fatalf("expected alpha channel 255 at the end, got %d", got)
	}
}

func TestAlphaLazyCaptureReadsChannelAsFloat(t *testing.T) {
	paint := NewCanvasPropertyPaint(NewPaint(colorful.Color{G: 1}))
	paint.Value.Alpha = 64

	a := NewPaintAnimator(paint, PaintAlpha, 255)
	a.Start()
	a.PushStaging(nil, &TreeInfo{FrameTimeMs: 1})
	if a.fromValue != 64 {
		t.Fatalf("expected the current channel value 64 captured, got %v", a.fromValue)
	}
}

func TestUnknownPaintFieldPanics(t *testing.T) {
	paint := NewCanvasPropertyPaint(NewPaint(colorful.Color{}))
	a := NewPaintAnimator(paint, PaintField(99), 1)

	mustPanic(t, "getValue", func() { a.getValue(nil) })
	mustPanic(t, "setValue", func() { a.setValue(nil, 1) })
}

func TestNewPaintIsOpaque(t *testing.T) {
	p := NewPaint(colorful.Color{R: 0.5})
	if p.Alpha != 255 {
		t.Fatalf("expected a new paint to be opaque, alpha %d", p.Alpha)
	}
}
