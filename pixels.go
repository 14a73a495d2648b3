package texscale

import (
	"github.com/akeil/texscale/internal/errors"
)

// Color is an RGBA color with float channels.
//
// The nominal range of each channel is [0, 1]. Values produced by bilinear
// scaling are not clamped and may fall slightly outside that range.
type Color struct {
	R, G, B, A float32
}

// lerpUnclamped blends c and o at t without clamping t or the result.
func (c Color) lerpUnclamped(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// PixelBuffer is a row-major grid of colors.
// The pixel at (x, y) is stored at index y*Width + x.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []Color
}

// NewPixelBuffer allocates a zeroed buffer of the given size.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// At returns the color at (x, y).
func (p *PixelBuffer) At(x, y int) Color {
	return p.Pix[y*p.Width+x]
}

// Set sets the color at (x, y).
func (p *PixelBuffer) Set(x, y int, c Color) {
	p.Pix[y*p.Width+x] = c
}

// Fill sets every pixel to c.
func (p *PixelBuffer) Fill(c Color) {
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// Validate checks that the declared dimensions match the pixel data.
// Returns a CorruptInput error if they do not.
func (p *PixelBuffer) Validate() error {
	if p == nil {
		return errors.NewCorruptInput("nil pixel buffer")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.NewCorruptInput("source dimensions %dx%d", p.Width, p.Height)
	}
	if len(p.Pix) != p.Width*p.Height {
		return errors.NewCorruptInput("%d pixels for %dx%d image", len(p.Pix), p.Width, p.Height)
	}
	return nil
}
