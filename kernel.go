package texscale

import (
	"math"
)

// kernel computes the color of target pixel (x, y).
type kernel func(x, y int, c *scalingContext) Color

// scalingContext holds everything the workers of a single scale call share.
// It is built once per call and never modified after workers start, except
// for the rows of dst that each worker owns.
type scalingContext struct {
	src    []Color
	srcW   int
	srcH   int
	ratioX float64
	ratioY float64
	dst    []Color
	dstW   int
	kernel kernel
}

func newScalingContext(src *PixelBuffer, dst *PixelBuffer, alg Algorithm) (*scalingContext, error) {
	rx, ry, err := ratios(src.Width, src.Height, dst.Width, dst.Height, alg)
	if err != nil {
		return nil, err
	}

	k := bilinear
	if alg == NearestNeighbor {
		k = nearest
	}

	return &scalingContext{
		src:    src.Pix,
		srcW:   src.Width,
		srcH:   src.Height,
		ratioX: rx,
		ratioY: ry,
		dst:    dst.Pix,
		dstW:   dst.Width,
		kernel: k,
	}, nil
}

// run fills all target pixels in the rows of r.
func (c *scalingContext) run(r RowRange) {
	for y := r.Start; y < r.End; y++ {
		row := c.dst[y*c.dstW : (y+1)*c.dstW]
		for x := range row {
			row[x] = c.kernel(x, y, c)
		}
	}
}

// bilinear blends the four source pixels around the sample point,
// first horizontally, then vertically. The blend is not clamped.
func bilinear(x, y int, c *scalingContext) Color {
	fy := float64(y) * c.ratioY
	yFloor := min(int(math.Floor(fy)), c.srcH-2)
	row1 := yFloor * c.srcW
	row2 := (yFloor + 1) * c.srcW

	fx := float64(x) * c.ratioX
	xFloor := min(int(math.Floor(fx)), c.srcW-2)

	xLerp := float32(fx - float64(xFloor))
	yLerp := float32(fy - float64(yFloor))

	top := c.src[row1+xFloor].lerpUnclamped(c.src[row1+xFloor+1], xLerp)
	bottom := c.src[row2+xFloor].lerpUnclamped(c.src[row2+xFloor+1], xLerp)
	return top.lerpUnclamped(bottom, yLerp)
}

// nearest copies the source pixel that contains the sample point.
func nearest(x, y int, c *scalingContext) Color {
	sy := min(int(math.Floor(float64(y)*c.ratioY)), c.srcH-1)
	sx := min(int(math.Floor(float64(x)*c.ratioX)), c.srcW-1)
	return c.src[sy*c.srcW+sx]
}
