// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synit decodes the run-length synapse intervals used throughout
// the network and tile schemas into a lazy, finite, restartable sequence of
// (synapse, logical index) pairs. It is purely functional over borrowed
// data: the same interval list can be iterated any number of times.
package synit

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
)

// Interval is the shape synit walks: a contiguous run starting at Start
// with Size elements. This package's wrappers of network.IndexSynapse and
// network.InputSynapse (built by Indexes and Inputs) satisfy it.
type Interval interface {
	SynStart() int
	SynSize() uint
	// SynReach is 0 for plain index synapses; input synapses report their
	// actual ReachPastLoops.
	SynReach() uint
}

// the two synapse flavours implement Interval via small accessor methods
// defined here rather than on the network package's exported structs, so
// network stays a plain data-model package with no iteration behavior.
type indexInterval network.IndexSynapse

func (s indexInterval) SynStart() int  { return s.Start }
func (s indexInterval) SynSize() uint  { return s.Size }
func (s indexInterval) SynReach() uint { return 0 }

type inputInterval network.InputSynapse

func (s inputInterval) SynStart() int  { return s.Start }
func (s inputInterval) SynSize() uint  { return s.Size }
func (s inputInterval) SynReach() uint { return s.ReachPastLoops }

// Indexes wraps a slice of network.IndexSynapse for iteration.
func Indexes(syns []network.IndexSynapse) Iterator[indexInterval] {
	out := make([]indexInterval, len(syns))
	for i, s := range syns {
		out[i] = indexInterval(s)
	}
	return Iterator[indexInterval]{synapses: out}
}

// Inputs wraps a slice of network.InputSynapse for iteration.
func Inputs(syns []network.InputSynapse) Iterator[inputInterval] {
	out := make([]inputInterval, len(syns))
	for i, s := range syns {
		out[i] = inputInterval(s)
	}
	return Iterator[inputInterval]{synapses: out}
}

// Iterator is a lazy, finite, restartable walk over a list of run-length
// synapse intervals, in the logical order start, start+1, ..., start+size-1
// per synapse, synapses in list order.
type Iterator[T Interval] struct {
	synapses []T
}

// New builds an Iterator directly over any Interval-satisfying slice.
func New[T Interval](synapses []T) Iterator[T] {
	return Iterator[T]{synapses: synapses}
}

// Size returns the sum of Size across every synapse in the list.
func (it Iterator[T]) Size() uint {
	var total uint
	for _, s := range it.synapses {
		total += s.SynSize()
	}
	return total
}

// step returns the direction a synapse's logical index walks: a negative
// Start encodes an external-input reference, where -idx-1 recovers the real
// input index, so a contiguous range of real input indices is only
// contiguous in raw/start terms when walked downward (start, start-1, ...).
// Non-negative starts (weight-table indices, inner-neuron indices, or
// neuron references) walk upward as usual.
func step(start int) int {
	if start < 0 {
		return -1
	}
	return 1
}

// Last returns the final logical index walked by the whole list. Fails if
// the list is empty -- callers must not invoke Last on an empty synapse set.
func (it Iterator[T]) Last() (int, error) {
	if len(it.synapses) == 0 {
		return 0, nnerr.New(nnerr.MalformedNetwork, "synit.Last: called on an empty synapse list")
	}
	last := it.synapses[len(it.synapses)-1]
	start := last.SynStart()
	return start + step(start)*(int(last.SynSize())-1), nil
}

// Iterate calls perSynapse once per synapse (in list order, exposed through
// the exported Interval interface so callers outside this package can use it
// regardless of the concrete, unexported wrapper type) before walking its
// logical indices, then calls perIndex once per logical index in that
// synapse's run.
func (it Iterator[T]) Iterate(perSynapse func(syn Interval), perIndex func(logicalIndex int)) {
	for _, s := range it.synapses {
		if perSynapse != nil {
			perSynapse(s)
		}
		if perIndex == nil {
			continue
		}
		start := s.SynStart()
		d := step(start)
		for i := uint(0); i < s.SynSize(); i++ {
			perIndex(start + d*int(i))
		}
	}
}

// Skim calls perSynapse once per synapse without walking individual logical
// indices -- useful when only the run-length structure matters.
func (it Iterator[T]) Skim(perSynapse func(syn Interval)) {
	for _, s := range it.synapses {
		perSynapse(s)
	}
}

// IterateTerminatable walks logical indices across every synapse in order,
// stopping as soon as f returns false. Returns true if every index was
// visited (f never returned false).
func (it Iterator[T]) IterateTerminatable(f func(logicalIndex int) bool) bool {
	for _, s := range it.synapses {
		start := s.SynStart()
		d := step(start)
		for i := uint(0); i < s.SynSize(); i++ {
			if !f(start + d*int(i)) {
				return false
			}
		}
	}
	return true
}

// IsInput reports whether a logical index uses the external-input
// convention (negative start).
func IsInput(idx int) bool { return network.IsInput(idx) }

// InputIndexOf decodes an external-input-convention logical index into the
// actual input-vector index.
func InputIndexOf(idx int) int { return network.InputIndexOf(idx) }

// SynapseIndexOf is the inverse of InputIndexOf.
func SynapseIndexOf(inputIndex int) int { return network.SynapseIndexOf(inputIndex) }
