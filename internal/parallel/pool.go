// Package parallel fans independent jobs out over a fixed number of
// workers. The knit CLI uses it to render animated GIF frames, each on its
// own canvas, while the renderer itself stays single-threaded per frame.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool executes submitted funcs. With one worker, Do runs inline.
type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start launches numWorkers workers; values below 1 mean GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Add(1)
			go func() {
				defer pool.wg.Done()
				for f := range workChan {
					f()
				}
			}()
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Each calls fn(i) for i in [0, n) on numWorkers workers and waits for all
// of them. Errors from every failing call are joined.
func Each(n, numWorkers int, fn func(i int) error) error {
	pool := Start(numWorkers)

	var mu sync.Mutex
	var errs []error
	for i := range n {
		pool.Do(func() {
			if err := fn(i); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	pool.Wait(true)
	return errors.Join(errs...)
}
