// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tile defines the partial solution (compute tile) produced by the
// builder and consumed by the solver: a self-contained slice of a network's
// neurons with its own local weight table and remapped input references.
package tile

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/spike"
	"github.com/sparserun/core/transfer"
)

// PartialSolution is one compute tile: a contiguous range of network neurons
// packed with a private copy of the weights they use and input references
// remapped into tile-local coordinates.
type PartialSolution struct {
	// OutputStart/OutputSize name the contiguous network-neuron range this
	// tile computes.
	OutputStart int
	OutputSize  int

	// InputData lists the external inputs this tile needs: each entry
	// references either a network input (external-input convention) or a
	// neuron produced by an earlier tile, possibly at a past time step.
	InputData []network.InputSynapse

	// LocalWeightTable is a private copy of the subset of the global weight
	// table this tile's neurons use.
	LocalWeightTable []network.Scalar

	// GlobalWeightIndex[i] is the network.Network.WeightTable index that
	// LocalWeightTable[i] was copied from, kept so a weight hot-swap can find
	// every tile slot a given global weight feeds without recompiling.
	GlobalWeightIndex []int

	// Per-inner-neuron positional arrays, each of length
	// InternalNeuronNumber().
	TransferFns                []transfer.Func
	SpikeFns                   []spike.Func
	SpikeParamWeightLocalIndex []int
	WeightSynapseCount         []int
	IndexSynapseCount          []int

	// InsideIndices is flat, in order: for every inner neuron, its input
	// sources in tile-local coordinates (external-input convention
	// references InputData, non-negative references an earlier inner
	// neuron of this same tile).
	InsideIndices []network.InputSynapse

	// WeightIndices is flat, in order: for every inner neuron, ranges into
	// LocalWeightTable.
	WeightIndices []network.IndexSynapse

	// MaxReachPastLoops is the deepest ReachPastLoops this tile's input
	// references observed, used by compile.Compile to size memory_depth.
	MaxReachPastLoops uint
}

// InternalNeuronNumber returns how many inner neurons this tile computes.
func (p *PartialSolution) InternalNeuronNumber() int {
	return len(p.TransferFns)
}

// InputSpan returns the total number of scalars this tile gathers from
// InputData on every solve, the minimum scratch-buffer capacity a caller of
// Solve must provide.
func (p *PartialSolution) InputSpan() int {
	return sumSize(p.InputData)
}

// Validate checks the tile's structural invariants:
//
//	(a) every internal InsideIndices reference points to an earlier inner neuron
//	(b) IndexSynapseCount/WeightSynapseCount lengths match the flat arrays
//	(c) per neuron, total weight-index scalars >= total input-index scalars
func (p *PartialSolution) Validate() error {
	n := p.InternalNeuronNumber()
	if len(p.SpikeFns) != n || len(p.SpikeParamWeightLocalIndex) != n ||
		len(p.WeightSynapseCount) != n || len(p.IndexSynapseCount) != n {
		return nnerr.New(nnerr.MalformedTile, "tile.Validate: per-neuron arrays disagree in length (n=%d)", n)
	}

	var totalIdx, totalWt int
	for i := 0; i < n; i++ {
		totalIdx += p.IndexSynapseCount[i]
		totalWt += p.WeightSynapseCount[i]
		if p.WeightSynapseCount[i] < p.IndexSynapseCount[i] {
			return nnerr.New(nnerr.MalformedTile, "tile.Validate: inner neuron %d has %d weight synapses but %d index synapses", i, p.WeightSynapseCount[i], p.IndexSynapseCount[i])
		}
	}
	if total := sumSize(p.InsideIndices); total != totalIdx {
		return nnerr.New(nnerr.MalformedTile, "tile.Validate: inside_indices has %d scalars, index_synapse_count sums to %d", total, totalIdx)
	}
	if total := sumIndexSize(p.WeightIndices); total != totalWt {
		return nnerr.New(nnerr.MalformedTile, "tile.Validate: weight_indices has %d scalars, weight_synapse_count sums to %d", total, totalWt)
	}

	idxPos := 0
	for i := 0; i < n; i++ {
		consumed := 0
		for consumed < p.IndexSynapseCount[i] {
			if idxPos >= len(p.InsideIndices) {
				return nnerr.New(nnerr.MalformedTile, "tile.Validate: inner neuron %d's synapse count overruns inside_indices", i)
			}
			syn := p.InsideIndices[idxPos]
			if !network.IsInput(syn.Start) && syn.ReachPastLoops == 0 {
				// internal reference: the whole run must point to earlier
				// inner neurons.
				if syn.Start+int(syn.Size)-1 >= i {
					return nnerr.New(nnerr.MalformedTile, "tile.Validate: inner neuron %d references non-earlier inner neuron %d", i, syn.Start+int(syn.Size)-1)
				}
			}
			consumed += int(syn.Size)
			idxPos++
		}
		if consumed != p.IndexSynapseCount[i] {
			return nnerr.New(nnerr.MalformedTile, "tile.Validate: a synapse run spans the boundary of inner neuron %d", i)
		}
	}
	return nil
}

func sumSize(syns []network.InputSynapse) int {
	total := 0
	for _, s := range syns {
		total += int(s.Size)
	}
	return total
}

func sumIndexSize(syns []network.IndexSynapse) int {
	total := 0
	for _, s := range syns {
		total += int(s.Size)
	}
	return total
}
