// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ringbuf is a fixed-depth circular store of neuron activation
// rows: every row is a full activation vector, and advancing a step means
// moving to the next row and pre-seeding it from the last.
package ringbuf

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
)

// Buffer holds depth rows of neuronCount activations each. Reads address a
// row by how many steps into the past it is; writes always target the
// current row.
type Buffer struct {
	rows    [][]network.Scalar
	depth   int
	width   int
	current int
}

// New builds a Buffer with depth rows of width neuronCount, all zeroed, with
// current positioned so the first Step starts at row 0.
func New(depth, neuronCount int) *Buffer {
	b := &Buffer{depth: depth, width: neuronCount}
	b.rows = make([][]network.Scalar, depth)
	for i := range b.rows {
		b.rows[i] = make([]network.Scalar, neuronCount)
	}
	b.current = depth - 1
	return b
}

// Depth returns the configured memory depth.
func (b *Buffer) Depth() int { return b.depth }

// Width returns the configured neuron count.
func (b *Buffer) Width() int { return b.width }

// CurrentIndex returns the row index Step most recently advanced to.
func (b *Buffer) CurrentIndex() int { return b.current }

// Step advances the current row and, when depth > 1, pre-seeds it by copying
// the row it is leaving so neurons not written this step retain their last
// value.
func (b *Buffer) Step() {
	prev := b.current
	b.current = (b.current + 1) % b.depth
	if b.depth > 1 {
		copy(b.rows[b.current], b.rows[prev])
	}
}

// Reset zeroes every row and positions current so the next Step starts at
// row 0.
func (b *Buffer) Reset() {
	for _, row := range b.rows {
		for i := range row {
			row[i] = 0
		}
	}
	b.current = b.depth - 1
}

// PastElement returns row (current - reachPastLoops) mod depth's entry j.
// reachPastLoops >= depth, or an out-of-range j, fails as InvalidInput.
func (b *Buffer) PastElement(reachPastLoops uint, j int) (network.Scalar, error) {
	if int(reachPastLoops) >= b.depth {
		return 0, nnerr.New(nnerr.InvalidInput, "ringbuf.PastElement: reach_past_loops %d exceeds memory depth %d", reachPastLoops, b.depth)
	}
	if j < 0 || j >= b.width {
		return 0, nnerr.New(nnerr.InvalidInput, "ringbuf.PastElement: neuron index %d out of range (width %d)", j, b.width)
	}
	idx := ((b.current-int(reachPastLoops))%b.depth + b.depth) % b.depth
	return b.rows[idx][j], nil
}

// SetCurrent writes value at neuron index j in the current row.
func (b *Buffer) SetCurrent(j int, value network.Scalar) {
	b.rows[b.current][j] = value
}

// Snapshot returns a deep copy of every row plus the current index, so a
// failed solve can be rolled back to exactly this state.
func (b *Buffer) Snapshot() ([][]network.Scalar, int) {
	rows := make([][]network.Scalar, len(b.rows))
	for i, row := range b.rows {
		rows[i] = append([]network.Scalar(nil), row...)
	}
	return rows, b.current
}

// Restore copies rows and current back from a prior Snapshot.
func (b *Buffer) Restore(rows [][]network.Scalar, current int) {
	for i, row := range rows {
		copy(b.rows[i], row)
	}
	b.current = current
}

// PopFront zeroes the current row and rewinds current by one step, used by
// orchestrators that need to undo the most recent Step (e.g. a failed solve
// rolling back, or truncated-window training callers outside this core).
func (b *Buffer) PopFront() {
	row := b.rows[b.current]
	for i := range row {
		row[i] = 0
	}
	b.current = ((b.current-1)%b.depth + b.depth) % b.depth
}
