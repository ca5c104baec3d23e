// workpool.go - worker pool for concurrent copies
//
// One State per in-flight copy is the concurrency contract of this
// package; the pool gives callers a simple way to honor it:
//
//	wp := NewWorkPool[myWork](n, func(i int, w myWork) error {
//		st := NewState()
//		defer st.Close()
//		return Copy(w.dst, w.src, st, flags)
//	})
//	wp.Submit(...)
//	wp.Close()
//	err := wp.Wait()
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package copyfile

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

type WorkPool[Work any] struct {
	stopped atomic.Bool
	wg      sync.WaitGroup
	ch      chan Work

	ech  chan error
	ewg  sync.WaitGroup
	errs []error
}

// NewWorkPool creates a pool of 'nworkers' goroutines, each invoking
// the caller provided 'fp' for every unit of work submitted via
// Submit().
func NewWorkPool[Work any](nworkers int, fp func(i int, w Work) error) *WorkPool[Work] {
	if nworkers <= 0 {
		nworkers = runtime.NumCPU()
	}

	wp := &WorkPool[Work]{
		ch:   make(chan Work, nworkers),
		ech:  make(chan error, 1),
		errs: make([]error, 0, 1),
	}

	wp.wg.Add(nworkers)
	for i := 0; i < nworkers; i++ {
		go func(i int) {
			defer wp.wg.Done()
			defer func() {
				if e := recover(); e != nil {
					wp.ech <- fmt.Errorf("workpool: panic: %v", e)
				}
			}()

			for w := range wp.ch {
				if err := fp(i, w); err != nil {
					wp.ech <- err
				}
			}
		}(i)
	}

	// harvest errors
	wp.ewg.Add(1)
	go func() {
		for e := range wp.ech {
			wp.errs = append(wp.errs, e)
		}
		wp.ewg.Done()
	}()

	return wp
}

// Submit hands one unit of work to the pool; the pool must not be
// closed yet.
func (wp *WorkPool[Work]) Submit(w Work) {
	if wp.stopped.Load() {
		panic("workpool: submit after close")
	}
	wp.ch <- w
}

// Close ends work submission; workers drain what is queued.
func (wp *WorkPool[Work]) Close() {
	if wp.stopped.Swap(true) {
		panic("workpool: already closed")
	}
	close(wp.ch)
}

// Wait blocks until all workers finish and returns their collected
// errors. The pool is done after Wait.
func (wp *WorkPool[Work]) Wait() error {
	wp.wg.Wait()
	close(wp.ech)
	wp.ewg.Wait()

	if len(wp.errs) > 0 {
		return errors.Join(wp.errs...)
	}
	return nil
}
