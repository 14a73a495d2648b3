package texscale

import (
	"github.com/akeil/texscale/internal/errors"
)

// ratios returns the factors that map target coordinates to source
// coordinates along each axis.
//
// For bilinear scaling the source extent is reduced by one so that the last
// target pixel maps onto the last-but-one source pixel and its +1 neighbour
// is still inside the image. That requires a source of at least 2x2.
func ratios(srcW, srcH, dstW, dstH int, alg Algorithm) (float64, float64, error) {
	if dstW <= 0 || dstH <= 0 {
		return 0, 0, errors.NewInvalidArgument("target dimensions %dx%d", dstW, dstH)
	}

	switch alg {
	case Bilinear:
		if srcW < 2 || srcH < 2 {
			return 0, 0, errors.NewInvalidArgument("bilinear scaling needs a source of at least 2x2, got %dx%d", srcW, srcH)
		}
		rx := 1.0 / (float64(dstW) / float64(srcW-1))
		ry := 1.0 / (float64(dstH) / float64(srcH-1))
		return rx, ry, nil
	case NearestNeighbor:
		rx := float64(srcW) / float64(dstW)
		ry := float64(srcH) / float64(dstH)
		return rx, ry, nil
	}

	return 0, 0, errors.NewInvalidArgument("unknown algorithm %v", alg)
}
