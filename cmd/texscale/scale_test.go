package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/texscale/internal/errors"
	"github.com/akeil/texscale/pkg/imageio"
)

func TestTargetSize(t *testing.T) {
	cases := []struct {
		srcW, srcH, w, h int
		wantW, wantH     int
	}{
		{100, 50, 40, 20, 40, 20},
		{100, 50, 40, 0, 40, 20},
		{100, 50, 0, 10, 20, 10},
		{1000, 1, 10, 0, 10, 1},
		{3, 3, 7, 2, 7, 2},
	}
	for _, c := range cases {
		w, h, err := targetSize(c.srcW, c.srcH, c.w, c.h)
		require.NoError(t, err)
		assert.Equal(t, [2]int{c.wantW, c.wantH}, [2]int{w, h}, "%+v", c)
	}

	_, _, err := targetSize(10, 10, 0, 0)
	assert.True(t, errors.IsInvalidArgument(err))
	_, _, err = targetSize(10, 10, -5, 3)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "a.png", outputName("a.png"))
	assert.Equal(t, "b.jpg", outputName("b.jpg"))
	assert.Equal(t, "c.png", outputName("c.webp"))
	assert.Equal(t, "d.e.png", outputName("d.e.tiff"))
}

func fixture(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 40), uint8(y * 40), 128, 255})
		}
	}
	require.NoError(t, imageio.Save(path, img))
}

func TestDoScale(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bmp")
	fixture(t, in, 4, 2)

	s := defaultSettings()
	s.Workers = 2
	require.NoError(t, doScale(s, in, out, 8, 0))

	img, _, err := imageio.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
}

func TestDoScaleBadAlgorithm(t *testing.T) {
	s := defaultSettings()
	s.Algorithm = "bicubic"
	err := doScale(s, "in.png", "out.png", 8, 8)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDoBatch(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	fixture(t, filepath.Join(src, "a.png"), 4, 4)
	fixture(t, filepath.Join(src, "b.bmp"), 6, 3)
	require.NoError(t, os.WriteFile(filepath.Join(src, "readme.txt"), []byte("x"), 0644))

	s := defaultSettings()
	s.Algorithm = "nearest"
	require.NoError(t, doBatch(s, src, dst, 2, 0))

	names, err := imageio.NewDir(dst).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.bmp"}, names)

	data, err := os.ReadFile(filepath.Join(dst, manifestName))
	require.NoError(t, err)
	var m manifest
	require.NoError(t, toml.Unmarshal(data, &m))
	assert.NotEmpty(t, m.Job)
	assert.Equal(t, "nearest", m.Algorithm)
	require.Len(t, m.Images, 2)
	assert.Equal(t, manifestEntry{Source: "b.bmp", Target: "b.bmp", Width: 2, Height: 1}, m.Images[1])
}

func TestDoBatchEmpty(t *testing.T) {
	assert.NoError(t, doBatch(defaultSettings(), t.TempDir(), t.TempDir(), 2, 2))
}

func TestDoInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")
	fixture(t, path, 3, 3)

	assert.NoError(t, doInfo([]string{path}))
	assert.Error(t, doInfo([]string{path, filepath.Join(dir, "missing.png")}))
}
