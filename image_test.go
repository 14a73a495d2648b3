package texscale

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.SetNRGBA(10, 20, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(11, 20, color.NRGBA{0, 0, 255, 255})

	buf := FromImage(img)
	if buf.Width != 2 || buf.Height != 1 {
		t.Fatalf("unexpected size %dx%d", buf.Width, buf.Height)
	}
	if buf.Pix[0] != red {
		t.Errorf("unexpected first pixel %v", buf.Pix[0])
	}
	if buf.Pix[1] != blue {
		t.Errorf("unexpected second pixel %v", buf.Pix[1])
	}
}

func TestToImageClamps(t *testing.T) {
	buf := &PixelBuffer{
		Width:  2,
		Height: 1,
		Pix:    []Color{{1.5, -0.5, 0.5, 1}, {0, 0, 0, 0}},
	}

	img := buf.ToImage()
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{255, 0, 128, 255}
	if got != want {
		t.Errorf("unexpected pixel %v, want %v", got, want)
	}
	if img.NRGBAAt(1, 0) != (color.NRGBA{}) {
		t.Errorf("unexpected pixel %v", img.NRGBAAt(1, 0))
	}

	// the buffer keeps its out-of-range values
	if buf.Pix[0].R != 1.5 {
		t.Errorf("ToImage modified the buffer")
	}
}

func TestScaleImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	r := color.NRGBA{255, 0, 0, 255}
	b := color.NRGBA{0, 0, 255, 255}
	img.SetNRGBA(0, 0, r)
	img.SetNRGBA(1, 0, b)

	dst, err := ScaleImage(img, 4, 1, NearestNeighbor)
	if err != nil {
		t.Fatal(err)
	}

	want := []color.NRGBA{r, r, b, b}
	for x, c := range want {
		if got := dst.NRGBAAt(x, 0); got != c {
			t.Errorf("pixel %d = %v, want %v", x, got, c)
		}
	}
}

func TestScaleImageEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	_, err := ScaleImage(img, 4, 4, NearestNeighbor)
	if !IsCorruptInput(err) {
		t.Errorf("expected corrupt input, got %v", err)
	}
}
