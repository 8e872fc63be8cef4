// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtime

import (
	"sync"

	"github.com/sparserun/core/network"
)

// taskChan carries closures to a long-lived worker goroutine; one channel
// per worker keeps the fork-join cheap and the goroutines warm across rows.
type taskChan chan func(lane []network.Scalar)

// workerPool is a fixed set of goroutines, each blocked reading its own
// channel and owning its own scratch lane, used to run one row's tiles
// concurrently and join at the row boundary. A pool is shared across every
// worker_id's Solve call; tasks queued on one slot run serially, so a
// slot's lane is never used by two tasks at once, and each run call builds
// its own local sync.WaitGroup so concurrent calls never race on shared
// join state.
type workerPool struct {
	chans   []taskChan
	scratch [][]network.Scalar
}

// newWorkerPool starts n worker goroutines, each with a laneSize-scalar
// scratch lane.
func newWorkerPool(n, laneSize int) *workerPool {
	if n < 1 {
		n = 1
	}
	p := &workerPool{
		chans:   make([]taskChan, n),
		scratch: make([][]network.Scalar, n),
	}
	for i := range p.chans {
		p.chans[i] = make(taskChan)
		p.scratch[i] = make([]network.Scalar, laneSize)
		go p.worker(i)
	}
	return p
}

func (p *workerPool) worker(i int) {
	lane := p.scratch[i]
	for fn := range p.chans[i] {
		fn(lane)
	}
}

// run executes every task, distributed round-robin across the pool's
// channels, and blocks until all have finished. Each task receives the
// scratch lane of the slot it landed on.
func (p *workerPool) run(tasks []func(lane []network.Scalar)) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, t := range tasks {
		t := t
		ch := p.chans[i%len(p.chans)]
		ch <- func(lane []network.Scalar) {
			t(lane)
			wg.Done()
		}
	}
	wg.Wait()
}
