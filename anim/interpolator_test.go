package anim

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
)

func TestEaseInterpolatorWrapsFunction(t *testing.T) {
	in := NewEaseInterpolator(ease.InQuad)
	if got := in.Interpolate(0.5); got != 0.25 {
		t.Fatalf("InQuad(0.5) = %v, want 0.25", got)
	}
}

func TestDefaultInterpolatorEndpoints(t *testing.T) {
	in := DefaultInterpolator()
	if got := in.Interpolate(0); math.Abs(got) > 1e-9 {
		t.Fatalf("default curve at 0 = %v", got)
	}
	if got := in.Interpolate(1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("default curve at 1 = %v", got)
	}
	if got := in.Interpolate(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("default curve at 0.5 = %v", got)
	}
}

func TestLUTInterpolatorTracksTheCurve(t *testing.T) {
	lut := NewLUTInterpolator(ease.InOutQuad, 256)
	for _, fraction := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		want := ease.InOutQuad(fraction)
		got := lut.Interpolate(fraction)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("lut(%v) = %v, want about %v", fraction, got, want)
		}
	}
}

func TestLUTInterpolatorClampsInput(t *testing.T) {
	lut := NewLUTInterpolator(ease.Linear, 16)
	if got := lut.Interpolate(-0.5); got != 0 {
		t.Fatalf("lut(-0.5) = %v, want 0", got)
	}
	if got := lut.Interpolate(1.5); got != 1 {
		t.Fatalf("lut(1.5) = %v, want 1", got)
	}
}

func TestLUTInterpolatorMinimumSize(t *testing.T) {
	lut := NewLUTInterpolator(ease.Linear, 0)
	if got := lut.Interpolate(1); got != 1 {
		t.Fatalf("degenerate lut(1) = %v, want 1", got)
	}
}

func TestInterpolatorByName(t *testing.T) {
	if in := InterpolatorByName("linear"); in.Interpolate(0.25) != 0.25 {
		t.Fatal("linear did not resolve to the linear curve")
	}
	// Unknown names fall back to the default rather than failing.
	in := InterpolatorByName("wibble")
	if in == nil {
		t.Fatal("unknown easing returned nil")
	}
	if got := in.Interpolate(1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("fallback curve at 1 = %v", got)
	}
	if in := InterpolatorByName(""); in == nil {
		t.Fatal("empty easing returned nil")
	}
}
