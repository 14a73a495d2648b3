// Package texscale resizes RGBA pixel buffers with bilinear or
// nearest-neighbor interpolation.
//
// Target rows are split into one contiguous range per worker. Workers read
// the shared source and write disjoint rows of the target, and Scale returns
// only after every worker has finished.
//
//	src := texscale.NewPixelBuffer(64, 64)
//	// ... fill src.Pix ...
//	dst, err := texscale.Scale(src, 256, 256, texscale.Bilinear)
package texscale

import (
	"strings"

	"github.com/akeil/texscale/internal/errors"
	"github.com/akeil/texscale/internal/logging"
)

// SetLogLevel sets the level for log messages from this package and its
// sub-packages. One of "debug", "info", "warning", "error"; anything else
// disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(strings.ToLower(level)))
}

// IsInvalidArgument reports whether err was caused by an out-of-range
// parameter, such as a non-positive target size.
func IsInvalidArgument(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsCorruptInput reports whether err was caused by a pixel buffer whose data
// does not match its declared dimensions.
func IsCorruptInput(err error) bool {
	return errors.IsCorruptInput(err)
}

// IsNotFound reports whether err was caused by a missing file or entry.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}
