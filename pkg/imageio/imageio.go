// Package imageio reads and writes image files for texscale.
//
// Inputs are sniffed before decoding, so files that are not images are
// reported as corrupt input instead of a generic decode error.
// Supported inputs: PNG, JPEG, GIF, BMP, TIFF, WebP.
// Supported outputs: PNG, JPEG, BMP.
package imageio

import (
	"bufio"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/akeil/texscale/internal/errors"
)

// Format is an output file format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
)

// JPEGQuality is used when encoding JPEG output.
const JPEGQuality = 95

// filetype needs at most this many bytes to detect a type
const sniffLen = 262

var formatsByExt = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
}

// FormatFor determines the output format from a file name extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatsByExt[ext]
	if !ok {
		return "", errors.NewInvalidArgument("unsupported output format %q", ext)
	}
	return f, nil
}

// IsImageName reports whether the name has the extension of a readable
// image format.
func IsImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

// Sniff detects the image type from the first bytes of a file.
// Returns the type's usual extension, e.g. "png" or "jpg".
func Sniff(head []byte) (string, error) {
	if !filetype.IsImage(head) {
		return "", errors.NewCorruptInput("data is not a known image type")
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return "", err
	}
	return kind.Extension, nil
}

// Decode sniffs and decodes an image.
// Returns the image and the name of the format it was decoded from.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", err
	}

	_, err = Sniff(head)
	if err != nil {
		return nil, "", err
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, "", errors.NewCorruptInput("decode image: %v", err)
	}
	return img, format, nil
}

// Open reads and decodes the image file at path.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.NewNotFound("no image at %q", path)
		}
		return nil, "", err
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "read %q", path)
	}
	return img, format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	enc, err := encoder(f)
	if err != nil {
		return err
	}
	return enc(w, img)
}

// Save writes img to path; the format is chosen from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	enc, err := encoder(f)
	if err != nil {
		return err
	}
	return imgio.Save(path, img, enc)
}

func encoder(f Format) (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		return imgio.JPEGEncoder(JPEGQuality), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	}
	return nil, errors.NewInvalidArgument("unsupported output format %q", f)
}
