// Package workerpool provides a persistent pool of goroutines.
//
// A Pool is created once and reused across many scale calls so that each
// call only pays for queueing its row ranges, not for spawning goroutines.
package workerpool

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed set of worker goroutines.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	work    chan func()
	wg      sync.WaitGroup

	// mx guards closed and sends on work, so Submit never sends on a
	// closed channel.
	mx     sync.RWMutex
	closed bool
}

// New creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		work:    make(chan func(), workers*2),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.work {
		fn()
	}
}

// Submit queues fn for execution on one of the workers.
// It blocks while the queue is full.
// Returns false if the pool is closed; fn is not run in that case.
func (p *Pool) Submit(fn func()) bool {
	if fn == nil {
		return false
	}

	p.mx.RLock()
	defer p.mx.RUnlock()
	if p.closed {
		return false
	}
	p.work <- fn
	return true
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops accepting work, waits for queued work to finish and stops
// all workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mx.Lock()
	if p.closed {
		p.mx.Unlock()
		return
	}
	p.closed = true
	close(p.work)
	p.mx.Unlock()

	p.wg.Wait()
}
