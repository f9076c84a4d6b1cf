package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance with numPixels pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Fill sets every pixel to colour.
func (f *Frame) Fill(colour colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = colour
	}
}

// Blend mixes colour into pixel i by gain in [0,1]. Out-of-range indexes
// are ignored so animated segments can slide off either end of the strip.
func (f *Frame) Blend(i int, colour colorful.Color, gain float64) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = f.pixels[i].BlendHcl(colour, gain)
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
