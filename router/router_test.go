// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package router

import (
	"testing"

	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/spike"
	"github.com/sparserun/core/transfer"
	"github.com/stretchr/testify/assert"
)

// a 3-neuron chain: 0 <- external, 1 <- 0, 2 <- 1
func chainNetwork() *network.Network {
	mk := func(inputs []network.InputSynapse) network.Neuron {
		return network.Neuron{
			TransferFn:            transfer.Identity,
			SpikeFn:               spike.None,
			SpikeParamWeightIndex: 0,
			InputIndices:          inputs,
			InputWeights:          []network.IndexSynapse{{Start: 0, Size: 1}},
		}
	}
	return &network.Network{
		WeightTable: []network.Scalar{1},
		Neurons: []network.Neuron{
			mk([]network.InputSynapse{{Start: network.SynapseIndexOf(0), Size: 1}}),
			mk([]network.InputSynapse{{Start: 0, Size: 1}}),
			mk([]network.InputSynapse{{Start: 1, Size: 1}}),
		},
	}
}

func TestCollectSubsetRespectsDependencyOrder(t *testing.T) {
	net := chainNetwork()
	r := New(net)

	subset, err := r.CollectSubset(10, 1<<20, true)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, subset, "only neuron 0 has no unprocessed non-past dependency")
}

func TestNonStrictAllowsTransitiveSameSubset(t *testing.T) {
	net := chainNetwork()
	r := New(net)

	subset, err := r.CollectSubset(10, 1<<20, false)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, subset)
}

func TestConfirmAndReCollectDrainsNetwork(t *testing.T) {
	net := chainNetwork()
	r := New(net)

	for !r.Done() {
		r.BeginRow()
		subset, err := r.CollectSubset(1, 1<<20, true)
		assert.NoError(t, err)
		assert.Len(t, subset, 1)
		assert.NoError(t, r.ConfirmFirstElementProcessed(subset[0]))
	}
}

func TestIsWithoutDependencyTracksConfirmedNeurons(t *testing.T) {
	net := chainNetwork()
	r := New(net)

	// only neuron 0's inputs (all external) are satisfied up front.
	assert.True(t, r.IsWithoutDependency(0))
	assert.False(t, r.IsWithoutDependency(1))
	assert.False(t, r.IsWithoutDependency(2))

	// subset membership alone is not enough: 0 must be confirmed processed
	// before 1 loses its dependency.
	subset, err := r.CollectSubset(1, 1<<20, true)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, subset)
	assert.False(t, r.IsWithoutDependency(1))

	assert.NoError(t, r.ConfirmFirstElementProcessed(0))
	assert.True(t, r.IsWithoutDependency(1))
	assert.False(t, r.IsWithoutDependency(2))

	r.BeginRow()
	subset, err = r.CollectSubset(1, 1<<20, true)
	assert.NoError(t, err)
	assert.NoError(t, r.ConfirmFirstElementProcessed(subset[0]))
	assert.True(t, r.IsWithoutDependency(2))
}

func TestStrictIgnoresNeuronsProcessedAfterBeginRow(t *testing.T) {
	net := chainNetwork()
	r := New(net)
	r.BeginRow()

	subset, err := r.CollectSubset(10, 1<<20, true)
	assert.NoError(t, err)
	assert.Equal(t, []int{0}, subset)
	assert.NoError(t, r.ConfirmFirstElementProcessed(0))

	// neuron 0 is processed, but only mid-row: a strict pass must still
	// refuse neuron 1 until the next BeginRow snapshots it.
	_, err = r.CollectSubset(10, 1<<20, true)
	assert.Error(t, err)
	assert.True(t, nnerr.Is(err, nnerr.CyclicDependency))

	r.BeginRow()
	subset, err = r.CollectSubset(10, 1<<20, true)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, subset)
}

func TestBudgetExceededForOversizedNeuron(t *testing.T) {
	net := chainNetwork()
	r := New(net)
	_, err := r.CollectSubset(10, 1, true) // every neuron needs > 1 byte
	assert.Error(t, err)
	assert.True(t, nnerr.Is(err, nnerr.BudgetExceeded))
}

func TestResetRemainingSubsetDemotesToUnvisited(t *testing.T) {
	net := chainNetwork()
	r := New(net)
	subset, err := r.CollectSubset(10, 1<<20, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, subset)

	r.ResetRemainingSubset()
	assert.False(t, r.Done())
	again, err := r.CollectSubset(10, 1<<20, false)
	assert.NoError(t, err)
	assert.Equal(t, subset, again)
}
