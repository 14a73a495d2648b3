package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/texscale"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	app := kingpin.New("texscale", "Resize images with bilinear or nearest-neighbor interpolation")
	app.HelpFlag.Short('h')
	app.Version(version)

	var cmd settings
	configPath := app.Flag("config", "Settings file (TOML)").Short('c').Envar("TEXSCALE_CONFIG").String()
	app.Flag("log-level", "One of debug, info, warning, error, none").Envar("TEXSCALE_LOG_LEVEL").StringVar(&cmd.LogLevel)
	app.Flag("algorithm", "Interpolation, bilinear or nearest").Short('a').Envar("TEXSCALE_ALGORITHM").StringVar(&cmd.Algorithm)
	app.Flag("workers", "Workers per image, 0 for one per CPU").Short('w').Envar("TEXSCALE_WORKERS").IntVar(&cmd.Workers)

	scale := app.Command("scale", "Resize a single image")
	var (
		scaleIn     = scale.Arg("input", "Source image").Required().String()
		scaleOut    = scale.Arg("output", "Target image (.png, .jpg or .bmp)").Required().String()
		scaleWidth  = scale.Flag("width", "Target width, 0 to keep the aspect ratio").Short('x').Int()
		scaleHeight = scale.Flag("height", "Target height, 0 to keep the aspect ratio").Short('y').Int()
	)

	batch := app.Command("batch", "Resize all images in a directory")
	var (
		batchSrc    = batch.Arg("source", "Directory with source images").Required().String()
		batchDst    = batch.Arg("target", "Output directory").Required().String()
		batchWidth  = batch.Flag("width", "Target width, 0 to keep the aspect ratio").Short('x').Int()
		batchHeight = batch.Flag("height", "Target height, 0 to keep the aspect ratio").Short('y').Int()
	)
	batch.Flag("jobs", "Images processed at the same time").Short('j').Envar("TEXSCALE_JOBS").IntVar(&cmd.Jobs)

	info := app.Command("info", "Show format and size of images")
	infoPaths := info.Arg("input", "Image files").Required().Strings()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*configPath, cmd)
	if err != nil {
		fmt.Printf("Error: failed to load settings: %v\n", err)
		os.Exit(1)
	}
	texscale.SetLogLevel(s.LogLevel)

	switch command {
	case scale.FullCommand():
		err = doScale(s, *scaleIn, *scaleOut, *scaleWidth, *scaleHeight)
	case batch.FullCommand():
		err = doBatch(s, *batchSrc, *batchDst, *batchWidth, *batchHeight)
	case info.FullCommand():
		err = doInfo(*infoPaths)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
