package texscale

import (
	"runtime"
	"sync"
	"time"

	"github.com/akeil/texscale/internal/errors"
	"github.com/akeil/texscale/internal/logging"
	"github.com/akeil/texscale/pkg/workerpool"
)

// Scaler resizes pixel buffers in parallel.
//
// A Scaler holds no per-call state and is safe for concurrent use.
// Scalers that share a pool share its workers.
type Scaler struct {
	workers int
	pool    *workerpool.Pool
	ownPool bool
}

// Option configures a Scaler.
type Option func(*Scaler)

// WithWorkers sets the maximum number of row ranges a single call is split
// into. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Scaler) {
		s.workers = n
	}
}

// WithPool runs row ranges on the given pool. The caller keeps ownership;
// Close on the Scaler will not close it.
func WithPool(p *workerpool.Pool) Option {
	return func(s *Scaler) {
		s.pool = p
		s.ownPool = false
	}
}

// WithoutPool starts a goroutine per row range instead of using a pool.
func WithoutPool() Option {
	return func(s *Scaler) {
		s.pool = nil
		s.ownPool = false
	}
}

// NewScaler creates a Scaler.
// Unless configured otherwise it owns a worker pool that is released with
// Close.
func NewScaler(opts ...Option) *Scaler {
	s := &Scaler{ownPool: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	if s.ownPool {
		s.pool = workerpool.New(s.workers)
	}
	return s
}

// Workers returns the maximum number of row ranges per call.
func (s *Scaler) Workers() int {
	return s.workers
}

// Close releases the worker pool if the Scaler owns it.
// Scale calls after Close still work, running sequentially on the caller.
func (s *Scaler) Close() {
	if s.ownPool && s.pool != nil {
		s.pool.Close()
	}
}

// Scale returns a new buffer of newWidth x newHeight holding src resampled
// with the given algorithm. src is not modified.
//
// Errors:
//   - InvalidArgument if newWidth or newHeight is not positive, or if src is
//     narrower or shorter than 2 pixels and alg is Bilinear.
//   - CorruptInput if src.Pix does not hold src.Width*src.Height pixels.
//
// Nothing is dispatched if the input is invalid.
func (s *Scaler) Scale(src *PixelBuffer, newWidth, newHeight int, alg Algorithm) (*PixelBuffer, error) {
	if newWidth <= 0 || newHeight <= 0 {
		return nil, errors.NewInvalidArgument("target dimensions %dx%d", newWidth, newHeight)
	}
	err := src.Validate()
	if err != nil {
		return nil, err
	}

	dst := NewPixelBuffer(newWidth, newHeight)
	c, err := newScalingContext(src, dst, alg)
	if err != nil {
		return nil, err
	}

	ranges := Partition(newHeight, s.workers)
	logging.Debug("Scale %dx%d -> %dx%d (%v) on %d workers",
		src.Width, src.Height, newWidth, newHeight, alg, len(ranges))

	start := time.Now()
	dispatch(s.pool, c, ranges)
	logging.Debug("Scale %dx%d done in %v", newWidth, newHeight, time.Since(start))

	return dst, nil
}

var (
	defaultScaler     *Scaler
	defaultScalerOnce sync.Once
)

// DefaultScaler returns the Scaler used by the package-level functions.
// It is created on first use with a pool of GOMAXPROCS workers.
func DefaultScaler() *Scaler {
	defaultScalerOnce.Do(func() {
		defaultScaler = NewScaler()
	})
	return defaultScaler
}

// Scale resizes src using the default Scaler.
// See Scaler.Scale for details.
func Scale(src *PixelBuffer, newWidth, newHeight int, alg Algorithm) (*PixelBuffer, error) {
	return DefaultScaler().Scale(src, newWidth, newHeight, alg)
}
