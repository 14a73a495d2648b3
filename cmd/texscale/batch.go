package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/texscale"
	"github.com/akeil/texscale/internal/logging"
	"github.com/akeil/texscale/pkg/imageio"
)

const manifestName = "texscale-manifest.toml"

// manifest records what a batch run produced.
type manifest struct {
	Job       string          `toml:"job"`
	Algorithm string          `toml:"algorithm"`
	Created   time.Time       `toml:"created"`
	Images    []manifestEntry `toml:"images"`
}

type manifestEntry struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

func doBatch(s settings, srcDir, dstDir string, width, height int) error {
	alg, err := texscale.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return err
	}

	src := imageio.NewDir(srcDir)
	dst := imageio.NewDir(dstDir)

	names, err := src.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No images in %q\n", srcDir)
		return nil
	}

	job := uuid.New().String()
	logging.Info("Batch %v: %d images from %q to %q", job, len(names), srcDir, dstDir)

	// one pool for all images
	scaler := texscale.NewScaler(texscale.WithWorkers(s.Workers))
	defer scaler.Close()

	entries := make([]manifestEntry, len(names))
	var group errgroup.Group
	group.SetLimit(max(s.Jobs, 1))
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			e, err := batchOne(scaler, alg, src, dst, name, width, height)
			if err != nil {
				logging.Error("Batch %v: %q failed: %v", job, name, err)
				return err
			}
			entries[i] = e
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return err
	}

	m := manifest{
		Job:       job,
		Algorithm: alg.String(),
		Created:   time.Now().UTC().Truncate(time.Second),
		Images:    entries,
	}
	return writeManifest(dst.Path(manifestName), m)
}

func batchOne(scaler *texscale.Scaler, alg texscale.Algorithm, src, dst *imageio.Dir, name string, width, height int) (manifestEntry, error) {
	fmt.Printf("%v scale %q\n", ellipsis, name)
	img, err := src.Read(name)
	if err != nil {
		fmt.Printf("%v Failed to read %q: %v\n", crossmark, name, err)
		return manifestEntry{}, err
	}

	out, err := scaleImage(scaler, alg, img, width, height)
	if err != nil {
		fmt.Printf("%v Failed to scale %q: %v\n", crossmark, name, err)
		return manifestEntry{}, err
	}

	target := outputName(name)
	err = dst.Write(target, out)
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, target, err)
		return manifestEntry{}, err
	}

	b := out.Bounds()
	fmt.Printf("%v %q saved as %q (%dx%d).\n", checkmark, name, target, b.Dx(), b.Dy())
	return manifestEntry{Source: name, Target: target, Width: b.Dx(), Height: b.Dy()}, nil
}

// outputName keeps the name of a source file, switching to PNG for formats
// that cannot be written.
func outputName(name string) string {
	_, err := imageio.FormatFor(name)
	if err == nil {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}

func writeManifest(path string, m manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
