package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
)

// ToRGBA returns an RGBA copy of the given image.
// The pixel at the top-left of the source bounds is the first pixel of Pix.
func ToRGBA(i image.Image) *image.RGBA {
	return clone.AsRGBA(i)
}

// Straight converts premultiplied 8-bit channels to straight alpha floats
// in [0, 1]. Fully transparent pixels come out as zero.
func Straight(r, g, b, a uint8) (float32, float32, float32, float32) {
	if a == 0 {
		return 0, 0, 0, 0
	}
	fa := float32(a) / 255
	return float32(r) / 255 / fa,
		float32(g) / 255 / fa,
		float32(b) / 255 / fa,
		fa
}

// Quantize maps a float channel to 8 bits.
// Values outside [0, 1] are clamped, NaN maps to 0.
func Quantize(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
