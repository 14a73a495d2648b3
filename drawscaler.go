package texscale

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/akeil/texscale/internal/logging"
)

// DrawScaler adapts a Scaler to the golang.org/x/image/draw.Scaler
// interface, so it can be used wherever x/image/draw interpolators are.
type DrawScaler struct {
	Algorithm Algorithm
	// Scaler runs the work. If nil, the default Scaler is used.
	Scaler *Scaler
}

var _ draw.Scaler = DrawScaler{}

// Scale implements draw.Scaler.
//
// The sr part of src is scaled to the size of dr and composed onto dst with
// op. opts.DstMask is honored; source masks are not supported.
// Bilinear requests on a source region smaller than 2x2 fall back to
// nearest-neighbor.
func (d DrawScaler) Scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, opts *draw.Options) {
	sr = sr.Intersect(src.Bounds())
	if dr.Empty() || sr.Empty() {
		return
	}

	s := d.Scaler
	if s == nil {
		s = DefaultScaler()
	}

	alg := d.Algorithm
	if alg == Bilinear && (sr.Dx() < 2 || sr.Dy() < 2) {
		logging.Debug("Source region %v too small for bilinear, using nearest", sr)
		alg = NearestNeighbor
	}

	region := image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	draw.Draw(region, region.Bounds(), src, sr.Min, draw.Src)

	scaled, err := s.ScaleImage(region, dr.Dx(), dr.Dy(), alg)
	if err != nil {
		// dr and sr are non-empty, so this is not reachable with valid input
		logging.Error("Scale %v -> %v failed: %v", sr, dr, err)
		return
	}

	if opts != nil && opts.DstMask != nil {
		draw.DrawMask(dst, dr, scaled, image.Point{}, opts.DstMask, opts.DstMaskP, op)
		return
	}
	draw.Draw(dst, dr, scaled, image.Point{}, op)
}
