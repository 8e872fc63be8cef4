// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/synit"
)

// Build packs as many of subset's head neurons as fit under maxBytes into one
// partial solution, preserving network order: a tile's output range must be
// a contiguous run of network-neuron indices, so building stops at the first
// index gap even if more of subset would otherwise fit.
//
// Returns the tile and how many leading elements of subset it consumed; the
// caller (compile.Compile) is responsible for confirming those neurons
// processed with the router before asking for the next tile.
func Build(net *network.Network, subset []int, maxBytes int) (*PartialSolution, int, error) {
	if len(subset) == 0 {
		return nil, 0, nnerr.New(nnerr.MalformedNetwork, "tile.Build: empty subset")
	}

	b := &builder{
		net:        net,
		outputHead: subset[0],
	}

	consumed := 0
	tileBytes := 0
	for i, gIdx := range subset {
		if i > 0 && gIdx != b.outputHead+consumed {
			break // output range would no longer be contiguous; close the tile here
		}
		est := net.Neurons[gIdx].EstimatedBytes()
		if tileBytes+est > maxBytes {
			if consumed == 0 {
				return nil, 0, nnerr.New(nnerr.BudgetExceeded, "tile.Build: neuron %d estimated at %d bytes exceeds budget %d", gIdx, est, maxBytes)
			}
			break
		}
		b.addNeuron(gIdx)
		tileBytes += est
		consumed++
	}

	b.p.OutputStart = b.outputHead
	b.p.OutputSize = consumed

	// post-condition: drop a trailing input_data entry that ended up empty.
	// appendOrExtendInput never creates zero-size entries, so this only guards
	// against a future refactor leaving one behind.
	if n := len(b.p.InputData); n > 0 && b.p.InputData[n-1].Size == 0 {
		b.p.InputData = b.p.InputData[:n-1]
	}

	return &b.p, consumed, nil
}

// builder holds the state for packing one tile. All of it is owned by a
// single Build call, never package-level, and the synapse coalescing
// boundary is a local of each addNeuron call, so independent compilations
// can run concurrently.
type builder struct {
	net        *network.Network
	p          PartialSolution
	outputHead int // network index of the tile's first neuron
}

// addNeuron appends network neuron gIdx as the tile's next inner neuron.
func (b *builder) addNeuron(gIdx int) {
	n := &b.net.Neurons[gIdx]
	innerIdx := len(b.p.TransferFns)

	b.p.TransferFns = append(b.p.TransferFns, n.TransferFn)
	b.p.SpikeFns = append(b.p.SpikeFns, n.SpikeFn)

	// weight copy: always appended contiguously, so a neuron's whole
	// input_weights run collapses into a single local range regardless of
	// how many source synapses it came from.
	wStart := len(b.p.LocalWeightTable)
	synit.Indexes(n.InputWeights).Skim(func(s synit.Interval) {
		start := s.SynStart()
		for i := uint(0); i < s.SynSize(); i++ {
			wIdx := start + int(i)
			b.p.LocalWeightTable = append(b.p.LocalWeightTable, b.net.WeightTable[wIdx])
			b.p.GlobalWeightIndex = append(b.p.GlobalWeightIndex, wIdx)
		}
	})
	totalWeights := len(b.p.LocalWeightTable) - wStart
	if totalWeights > 0 {
		b.p.WeightIndices = append(b.p.WeightIndices, network.IndexSynapse{Start: wStart, Size: uint(totalWeights)})
	}
	b.p.WeightSynapseCount = append(b.p.WeightSynapseCount, totalWeights)

	b.p.LocalWeightTable = append(b.p.LocalWeightTable, b.net.WeightTable[n.SpikeParamWeightIndex])
	b.p.GlobalWeightIndex = append(b.p.GlobalWeightIndex, n.SpikeParamWeightIndex)
	b.p.SpikeParamWeightLocalIndex = append(b.p.SpikeParamWeightLocalIndex, len(b.p.LocalWeightTable)-1)

	// input references: classify each expanded logical index as external or
	// internal to this tile-in-progress, in order, coalescing runs as we go.
	// Coalescing never reaches past boundary into the previous neuron's runs:
	// the per-neuron counts partition InsideIndices, so a run must never span
	// two neurons.
	boundary := len(b.p.InsideIndices)
	indexCount := 0
	var curReach uint
	synit.Inputs(n.InputIndices).Iterate(
		func(syn synit.Interval) { curReach = syn.SynReach() },
		func(logicalIndex int) {
			indexCount++
			if curReach > b.p.MaxReachPastLoops {
				b.p.MaxReachPastLoops = curReach
			}

			external := network.IsInput(logicalIndex) || curReach > 0 ||
				logicalIndex < b.outputHead || logicalIndex >= b.outputHead+innerIdx

			if !external {
				b.p.InsideIndices = appendCoalesced(b.p.InsideIndices, boundary, logicalIndex-b.outputHead, 0)
				return
			}
			pos := appendOrExtendInput(&b.p.InputData, logicalIndex, curReach)
			b.p.InsideIndices = appendCoalesced(b.p.InsideIndices, boundary, network.SynapseIndexOf(pos), 0)
		},
	)
	b.p.IndexSynapseCount = append(b.p.IndexSynapseCount, indexCount)
}

// appendCoalesced appends (start, reach) to list, merging it into the
// previous entry when that entry is at or past boundary (it belongs to the
// neuron currently being emitted), both are the same kind (external vs
// internal) and the new index continues the previous run in its walking
// direction.
func appendCoalesced(list []network.InputSynapse, boundary, start int, reach uint) []network.InputSynapse {
	if n := len(list); n > boundary {
		last := &list[n-1]
		if last.ReachPastLoops == reach && sameKind(last.Start, start) {
			d := direction(last.Start)
			if last.Start+d*int(last.Size) == start {
				last.Size++
				return list
			}
		}
	}
	return append(list, network.InputSynapse{Start: start, Size: 1, ReachPastLoops: reach})
}

// appendOrExtendInput resolves rawIdx/reach against the tile's flattened
// external-input vector: returns the position of an existing matching
// element if one covers it already, otherwise extends the trailing entry or
// opens a new one and returns the position of the freshly added element.
func appendOrExtendInput(data *[]network.InputSynapse, rawIdx int, reach uint) int {
	if pos, ok := findInput(*data, rawIdx, reach); ok {
		return pos
	}
	total := totalInputSize(*data)
	if n := len(*data); n > 0 {
		last := &(*data)[n-1]
		if last.ReachPastLoops == reach {
			d := direction(last.Start)
			if last.Start+d*int(last.Size) == rawIdx {
				last.Size++
				return total
			}
		}
	}
	*data = append(*data, network.InputSynapse{Start: rawIdx, Size: 1, ReachPastLoops: reach})
	return total
}

func findInput(data []network.InputSynapse, rawIdx int, reach uint) (int, bool) {
	pos := 0
	for _, e := range data {
		if e.ReachPastLoops == reach {
			d := direction(e.Start)
			var offset int
			if d > 0 {
				offset = rawIdx - e.Start
			} else {
				offset = e.Start - rawIdx
			}
			if offset >= 0 && offset < int(e.Size) {
				return pos + offset, true
			}
		}
		pos += int(e.Size)
	}
	return 0, false
}

func totalInputSize(data []network.InputSynapse) int {
	total := 0
	for _, e := range data {
		total += int(e.Size)
	}
	return total
}

// sameKind reports whether both starts use the same external/internal
// convention.
func sameKind(a, b int) bool { return network.IsInput(a) == network.IsInput(b) }

// direction mirrors synit's walking direction for a run beginning at start.
func direction(start int) int {
	if start < 0 {
		return -1
	}
	return 1
}
