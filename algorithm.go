package texscale

import (
	"strings"

	"github.com/akeil/texscale/internal/errors"
)

// Algorithm selects the interpolation used when scaling.
type Algorithm uint8

const (
	// Bilinear blends the four source pixels surrounding each sample point.
	Bilinear Algorithm = iota

	// NearestNeighbor copies the source pixel the sample point falls into.
	// Preserves hard edges, produces blocky results when enlarging.
	NearestNeighbor
)

// DefaultAlgorithm is used by callers that do not pick one.
const DefaultAlgorithm = Bilinear

func (a Algorithm) String() string {
	switch a {
	case Bilinear:
		return "bilinear"
	case NearestNeighbor:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseAlgorithm returns the Algorithm for a name.
// Accepted names are "bilinear", "nearest" and "point" (case insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilinear", "linear":
		return Bilinear, nil
	case "nearest", "nearest-neighbor", "point":
		return NearestNeighbor, nil
	}
	return 0, errors.NewInvalidArgument("unknown algorithm %q", s)
}
