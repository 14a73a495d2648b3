package texscale

import (
	"fmt"
	"sync"

	"github.com/akeil/texscale/pkg/workerpool"
)

// barrier releases waiters once the expected number of workers has arrived.
type barrier struct {
	expected int
	arrived  int
	mu       sync.Mutex
	cond     *sync.Cond

	// first panic recovered from a worker, re-raised by the waiter
	panicked interface{}
}

func newBarrier(expected int) *barrier {
	b := &barrier{expected: expected}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// arrive records that one worker has finished.
func (b *barrier) arrive() {
	b.mu.Lock()
	b.arrived++
	if b.arrived >= b.expected {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// fail records a worker panic. The worker must still arrive.
func (b *barrier) fail(v interface{}) {
	b.mu.Lock()
	if b.panicked == nil {
		b.panicked = v
	}
	b.mu.Unlock()
}

// wait blocks until every worker has arrived and returns the first
// recovered panic, if any.
func (b *barrier) wait() interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.arrived < b.expected {
		b.cond.Wait()
	}
	return b.panicked
}

// dispatch runs c over all ranges and returns once every range is done.
//
// All but the last range go to the pool (or to fresh goroutines if pool is
// nil). The last range runs on the calling goroutine. A panic in any range
// is re-raised here after all other ranges have finished.
func dispatch(pool *workerpool.Pool, c *scalingContext, ranges []RowRange) {
	b := newBarrier(len(ranges))

	task := func(r RowRange) func() {
		return func() {
			defer b.arrive()
			defer func() {
				if v := recover(); v != nil {
					b.fail(v)
				}
			}()
			c.run(r)
		}
	}

	last := len(ranges) - 1
	for _, r := range ranges[:last] {
		fn := task(r)
		switch {
		case pool == nil:
			go fn()
		case !pool.Submit(fn):
			// pool closed underneath us
			fn()
		}
	}
	task(ranges[last])()

	if v := b.wait(); v != nil {
		panic(fmt.Sprintf("texscale: worker panic: %v", v))
	}
}
