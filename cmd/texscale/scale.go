package main

import (
	"fmt"
	"image"
	"math"

	"github.com/akeil/texscale"
	"github.com/akeil/texscale/internal/errors"
	"github.com/akeil/texscale/pkg/imageio"
)

func doScale(s settings, in, out string, width, height int) error {
	alg, err := texscale.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return err
	}

	scaler := texscale.NewScaler(texscale.WithWorkers(s.Workers))
	defer scaler.Close()

	return scaleFile(scaler, alg, in, out, width, height)
}

func scaleFile(scaler *texscale.Scaler, alg texscale.Algorithm, in, out string, width, height int) error {
	fmt.Printf("%v scale %q\n", ellipsis, in)
	img, _, err := imageio.Open(in)
	if err != nil {
		fmt.Printf("%v Failed to read %q: %v\n", crossmark, in, err)
		return err
	}

	dst, err := scaleImage(scaler, alg, img, width, height)
	if err != nil {
		fmt.Printf("%v Failed to scale %q: %v\n", crossmark, in, err)
		return err
	}

	err = imageio.Save(out, dst)
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, out, err)
		return err
	}

	b := dst.Bounds()
	fmt.Printf("%v %q saved as %q (%dx%d).\n", checkmark, in, out, b.Dx(), b.Dy())
	return nil
}

func scaleImage(scaler *texscale.Scaler, alg texscale.Algorithm, img image.Image, width, height int) (image.Image, error) {
	b := img.Bounds()
	w, h, err := targetSize(b.Dx(), b.Dy(), width, height)
	if err != nil {
		return nil, err
	}
	return scaler.ScaleImage(img, w, h, alg)
}

// targetSize fills in a zero width or height from the source aspect ratio.
func targetSize(srcW, srcH, width, height int) (int, int, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return 0, 0, errors.NewInvalidArgument("target size %dx%d", width, height)
	}
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, errors.NewCorruptInput("source size %dx%d", srcW, srcH)
	}

	if width == 0 {
		width = int(math.Round(float64(srcW) * float64(height) / float64(srcH)))
	}
	if height == 0 {
		height = int(math.Round(float64(srcH) * float64(width) / float64(srcW)))
	}

	return max(width, 1), max(height, 1), nil
}
