// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/synit"
)

// Memory is the activation-history access a tile needs from the
// orchestrator's ring buffer. PastElement(0, j) reads neuron j's value in the
// current row as it stood before this tile started writing -- exactly the
// "previous activation" a spike function needs.
type Memory interface {
	PastElement(reachPastLoops uint, neuronIndex int) (network.Scalar, error)
	SetCurrent(neuronIndex int, value network.Scalar)
}

// Solve evaluates p against one external-input vector and the current
// orchestrator memory, writing every inner neuron's new activation into mem's
// current row. scratch is reused across calls by the caller; its contents on
// entry are irrelevant, only its capacity (>= total input_data span) matters.
func Solve(p *PartialSolution, input []network.Scalar, mem Memory, scratch []network.Scalar) error {
	want := totalInputSize(p.InputData)
	if cap(scratch) < want {
		scratch = make([]network.Scalar, want)
	}
	scratch = scratch[:want]

	pos := 0
	for _, e := range p.InputData {
		if network.IsInput(e.Start) && e.ReachPastLoops == 0 {
			base := network.InputIndexOf(e.Start)
			for i := uint(0); i < e.Size; i++ {
				// the raw/encoded run walks downward (synit.step), but each
				// raw value decodes to an increasing real input index.
				idx := base + int(i)
				if idx < 0 || idx >= len(input) {
					return nnerr.New(nnerr.InvalidInput, "tile.Solve: external input index %d out of range (have %d)", idx, len(input))
				}
				scratch[pos] = input[idx]
				pos++
			}
			continue
		}
		if network.IsInput(e.Start) {
			return nnerr.New(nnerr.MalformedTile, "tile.Solve: input_data entry %v mixes external-input convention with reach_past_loops > 0", e)
		}
		for i := uint(0); i < e.Size; i++ {
			v, err := mem.PastElement(e.ReachPastLoops, e.Start+int(i))
			if err != nil {
				return err
			}
			scratch[pos] = v
			pos++
		}
	}

	wFlat := make([]int, 0, sumIndexSize(p.WeightIndices))
	synit.Indexes(p.WeightIndices).Iterate(nil, func(idx int) { wFlat = append(wFlat, idx) })

	iFlat := make([]int, 0, sumSize(p.InsideIndices))
	synit.Inputs(p.InsideIndices).Iterate(nil, func(idx int) { iFlat = append(iFlat, idx) })

	n := p.InternalNeuronNumber()
	computed := make([]network.Scalar, n)

	wPos, iPos := 0, 0
	for i := 0; i < n; i++ {
		wCount := p.WeightSynapseCount[i]
		iCount := p.IndexSynapseCount[i]
		if wPos+wCount > len(wFlat) || iPos+iCount > len(iFlat) {
			return nnerr.New(nnerr.MalformedTile, "tile.Solve: inner neuron %d's synapse counts overrun the flat arrays", i)
		}

		var acc network.Scalar
		for k := 0; k < wCount; k++ {
			weightVal := p.LocalWeightTable[wFlat[wPos+k]]
			var inputVal network.Scalar = 1.0 // surplus weight: additive bias
			if k < iCount {
				l := iFlat[iPos+k]
				if l < 0 {
					scratchPos := network.InputIndexOf(l)
					if scratchPos < 0 || scratchPos >= len(scratch) {
						return nnerr.New(nnerr.MalformedTile, "tile.Solve: inner neuron %d references out-of-range scratch position %d", i, scratchPos)
					}
					inputVal = scratch[scratchPos]
				} else {
					if l >= i {
						return nnerr.New(nnerr.MalformedTile, "tile.Solve: inner neuron %d references non-earlier inner neuron %d", i, l)
					}
					inputVal = computed[l]
				}
			}
			acc += inputVal * weightVal
		}
		wPos += wCount
		iPos += iCount

		if !p.TransferFns[i].IsValid() {
			return nnerr.New(nnerr.MalformedTile, "tile.Solve: inner neuron %d has an unknown transfer function", i)
		}
		if !p.SpikeFns[i].IsValid() {
			return nnerr.New(nnerr.MalformedTile, "tile.Solve: inner neuron %d has an unknown spike function", i)
		}

		activated := p.TransferFns[i].Apply(acc)
		spikeParam := p.LocalWeightTable[p.SpikeParamWeightLocalIndex[i]]

		globalIdx := p.OutputStart + i
		previous, err := mem.PastElement(0, globalIdx)
		if err != nil {
			return err
		}

		result := p.SpikeFns[i].Apply(previous, activated, spikeParam)
		computed[i] = result
		mem.SetCurrent(globalIdx, result)
	}

	return nil
}
