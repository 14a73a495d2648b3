package texscale

import (
	"image"

	"github.com/akeil/texscale/internal/imaging"
)

// FromImage converts an image into a PixelBuffer with straight alpha
// channels in [0, 1]. The top-left pixel of the image bounds becomes (0, 0).
func FromImage(img image.Image) *PixelBuffer {
	rgba := imaging.ToRGBA(img)
	b := rgba.Bounds()
	buf := NewPixelBuffer(b.Dx(), b.Dy())

	for y := 0; y < buf.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+buf.Width*4]
		for x := 0; x < buf.Width; x++ {
			p := row[x*4 : x*4+4]
			r, g, bl, a := imaging.Straight(p[0], p[1], p[2], p[3])
			buf.Pix[y*buf.Width+x] = Color{r, g, bl, a}
		}
	}

	return buf
}

// ToImage converts the buffer to an 8-bit image.
// Channels are clamped to [0, 1] here; the buffer itself is not changed.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, c := range p.Pix {
		px := img.Pix[i*4 : i*4+4]
		px[0] = imaging.Quantize(c.R)
		px[1] = imaging.Quantize(c.G)
		px[2] = imaging.Quantize(c.B)
		px[3] = imaging.Quantize(c.A)
	}
	return img
}

// ScaleImage resizes an image with the default Scaler.
func ScaleImage(img image.Image, newWidth, newHeight int, alg Algorithm) (*image.NRGBA, error) {
	return DefaultScaler().ScaleImage(img, newWidth, newHeight, alg)
}

// ScaleImage converts img to a PixelBuffer, scales it and converts the
// result back.
func (s *Scaler) ScaleImage(img image.Image, newWidth, newHeight int, alg Algorithm) (*image.NRGBA, error) {
	dst, err := s.Scale(FromImage(img), newWidth, newHeight, alg)
	if err != nil {
		return nil, err
	}
	return dst.ToImage(), nil
}
