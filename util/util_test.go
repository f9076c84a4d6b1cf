package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(20, 100, 0.5); got != 60 {
		t.Errorf("Lerp(20, 100, 0.5) = %v, want 60", got)
	}
	if got := Lerp(5, 5, 0.7); got != 5 {
		t.Errorf("Lerp(5, 5, 0.7) = %v, want 5", got)
	}
}
