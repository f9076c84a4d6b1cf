package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestMarshalBinaryLayout(t *testing.T) {
	f := NewFrame(3)
	f.Fill(colorful.Color{R: 1, G: 0, B: 0})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 2+3*3 {
		t.Fatalf("expected 11 bytes, got %d", len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 3 {
		t.Fatalf("expected pixel count 3, got %d", n)
	}
	if data[2] != 255 || data[3] != 0 || data[4] != 0 {
		t.Fatalf("expected a red pixel, got % x", data[2:5])
	}
}

func TestBlendIgnoresOutOfRangeIndexes(t *testing.T) {
	f := NewFrame(4)
	white := colorful.Color{R: 1, G: 1, B: 1}

	// Segments sliding off the strip must be harmless.
	f.Blend(-1, white, 1)
	f.Blend(4, white, 1)
	f.Blend(100, white, 1)

	f.Blend(2, white, 1)
	data, _ := f.MarshalBinary()
	if data[2+2*3] != 255 {
		t.Fatal("in-range blend did not land")
	}
}
