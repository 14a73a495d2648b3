package main

import (
	"fmt"

	"github.com/akeil/texscale/pkg/imageio"
)

func doInfo(paths []string) error {
	var failed int
	for _, p := range paths {
		img, format, err := imageio.Open(p)
		if err != nil {
			fmt.Printf("%v %v: %v\n", crossmark, p, err)
			failed++
			continue
		}
		b := img.Bounds()
		fmt.Printf("%v: %v %dx%d\n", p, format, b.Dx(), b.Dy())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(paths))
	}
	return nil
}
