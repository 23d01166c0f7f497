package renderer

import (
	"runtime"
	"sync"
)

// rowResult accumulates per-row ray counts for frame statistics
type rowResult struct {
	rays int
	hits int
}

// workerPool distributes pixel rows across goroutines for a single frame.
// Each row writes a disjoint slice of the frame buffer, so the only
// synchronization needed is the final join.
type workerPool struct {
	numWorkers  int
	rowQueue    chan int
	resultQueue chan rowResult
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers
func newWorkerPool(numWorkers, height int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		numWorkers:  numWorkers,
		rowQueue:    make(chan int, height),
		resultQueue: make(chan rowResult, height),
	}
}

// run renders every row of the frame through the pool and returns the summed
// row results once all workers have finished.
func (wp *workerPool) run(height int, renderRow func(y int) rowResult) rowResult {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for y := range wp.rowQueue {
				wp.resultQueue <- renderRow(y)
			}
		}()
	}

	for y := 0; y < height; y++ {
		wp.rowQueue <- y
	}
	close(wp.rowQueue)

	wp.wg.Wait()
	close(wp.resultQueue)

	var total rowResult
	for res := range wp.resultQueue {
		total.rays += res.rays
		total.hits += res.hits
	}
	return total
}
