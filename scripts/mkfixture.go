//go:build ignore

package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/akeil/texscale/pkg/imageio"
)

// Writes a checkerboard image for trying out the CLI by hand:
//
//	go run scripts/mkfixture.go checker.png 64 8
func main() {
	if len(os.Args) != 4 {
		log.Fatal("usage: mkfixture <output> <size> <cells>")
	}

	path := os.Args[1]
	size, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	cells, err := strconv.Atoi(os.Args[3])
	if err != nil {
		log.Fatal(err)
	}
	if size <= 0 || cells <= 0 || cells > size {
		log.Fatal("size and cells must be positive, with cells <= size")
	}

	log.Printf("Create %vx%v checkerboard with %v cells per side", size, size, cells)
	cell := size / cells
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	dark := color.NRGBA{30, 30, 40, 255}
	light := color.NRGBA{230, 220, 200, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}

	err = imageio.Save(path, img)
	if err != nil {
		log.Fatal(err)
	}
}
