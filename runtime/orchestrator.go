// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtime sequences a compiled solution row by row against one
// input vector per call, parallelising tile execution within a row over a
// fixed group of worker goroutines joined at each row boundary.
package runtime

import (
	"fmt"

	"github.com/sparserun/core/compile"
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/ringbuf"
	"github.com/sparserun/core/tile"
)

// Orchestrator drives one compiled Solution. Each worker id owns its own
// ring buffer: the ring buffer is never shared across concurrent Solve
// calls, per the solution's thread-safety contract. Scratch lanes live on
// the worker pool, one per solve thread.
type Orchestrator struct {
	sol   *compile.Solution
	rings []*ringbuf.Buffer
	pool  *workerPool
}

// New builds an Orchestrator with numWorkers independent lanes, executing
// each row's tiles across up to maxSolveThreads goroutines. Every pool
// slot's scratch lane is sized to the largest input_data span over all
// tiles.
func New(sol *compile.Solution, numWorkers int, maxSolveThreads int) *Orchestrator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	span := 0
	for _, t := range sol.Tiles {
		if s := t.InputSpan(); s > span {
			span = s
		}
	}

	o := &Orchestrator{
		sol:   sol,
		rings: make([]*ringbuf.Buffer, numWorkers),
		pool:  newWorkerPool(maxSolveThreads, span),
	}
	for i := 0; i < numWorkers; i++ {
		o.rings[i] = ringbuf.New(int(sol.MemoryDepth), sol.NeuronCount)
	}
	return o
}

// MemoryDepth returns the solution's configured memory depth.
func (o *Orchestrator) MemoryDepth() uint { return o.sol.MemoryDepth }

// OutputSize returns the number of entries Solve returns.
func (o *Orchestrator) OutputSize() int { return o.sol.OutputCount }

// ResetState zeroes every worker lane's ring buffer.
func (o *Orchestrator) ResetState() {
	for _, r := range o.rings {
		r.Reset()
	}
}

// Solve advances worker_id's ring buffer by one step, executes every tile
// row by row, and returns the last output_count entries of the current row.
// Panics if len(input) doesn't match the declared input_data_size, mirroring
// the public surface's documented panic-on-mismatch contract.
func (o *Orchestrator) Solve(input []network.Scalar, reset bool, workerID int) ([]network.Scalar, error) {
	if workerID < 0 || workerID >= len(o.rings) {
		return nil, fmt.Errorf("runtime.Orchestrator.Solve: worker id %d out of range (have %d lanes)", workerID, len(o.rings))
	}
	if len(input) != o.sol.InputDataSize {
		panic(fmt.Sprintf("runtime.Orchestrator.Solve: input length %d does not match declared input_data_size %d", len(input), o.sol.InputDataSize))
	}

	ring := o.rings[workerID]

	if reset {
		ring.Reset()
	}

	snapRows, snapIdx := ring.Snapshot()
	ring.Step()

	tileIdx := 0
	for _, cols := range o.sol.Cols {
		rowTiles := o.sol.Tiles[tileIdx : tileIdx+cols]
		tileIdx += cols

		errs := make([]error, len(rowTiles))
		tasks := make([]func(lane []network.Scalar), len(rowTiles))
		for i, t := range rowTiles {
			i, t := i, t
			tasks[i] = func(lane []network.Scalar) {
				errs[i] = tile.Solve(t, input, ring, lane)
			}
		}
		o.pool.run(tasks)

		for _, err := range errs {
			if err != nil {
				ring.Restore(snapRows, snapIdx)
				return nil, err
			}
		}
	}

	out := make([]network.Scalar, o.sol.OutputCount)
	for i := 0; i < o.sol.OutputCount; i++ {
		v, err := ring.PastElement(0, o.sol.NeuronCount-o.sol.OutputCount+i)
		if err != nil {
			ring.Restore(snapRows, snapIdx)
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
