// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"testing"

	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/spike"
	"github.com/sparserun/core/transfer"
	"github.com/stretchr/testify/assert"
)

func validNeuron() Neuron {
	return Neuron{
		TransferFn:            transfer.Identity,
		SpikeFn:               spike.None,
		SpikeParamWeightIndex: 0,
		InputIndices:          []InputSynapse{{Start: SynapseIndexOf(0), Size: 1}},
		InputWeights:          []IndexSynapse{{Start: 0, Size: 1}},
	}
}

func TestExternalInputConvention(t *testing.T) {
	assert.True(t, IsInput(-1))
	assert.False(t, IsInput(0))
	assert.Equal(t, 0, InputIndexOf(-1))
	assert.Equal(t, 5, InputIndexOf(-6))
	assert.Equal(t, -1, SynapseIndexOf(0))
}

func TestValidateRejectsWeightIndexMismatch(t *testing.T) {
	n := validNeuron()
	n.InputWeights = nil // now 0 weights < 1 index
	net := &Network{WeightTable: []Scalar{0}, Neurons: []Neuron{n}}
	err := net.Validate()
	assert.Error(t, err)
	assert.True(t, nnerr.Is(err, nnerr.MalformedNetwork))
}

func TestValidateAcceptsSurplusWeightsAsBias(t *testing.T) {
	n := validNeuron()
	n.InputWeights = []IndexSynapse{{Start: 0, Size: 2}} // one surplus = bias
	net := &Network{WeightTable: []Scalar{1, 1}, Neurons: []Neuron{n}}
	assert.NoError(t, net.Validate())
}

func TestValidateRejectsReachBeyondDeclaredMemory(t *testing.T) {
	n := validNeuron()
	n.InputIndices = []InputSynapse{{Start: 0, Size: 1, ReachPastLoops: 2}}
	net := &Network{MemorySize: 2, WeightTable: []Scalar{0}, Neurons: []Neuron{n}}
	err := net.Validate()
	assert.Error(t, err)
	assert.True(t, nnerr.Is(err, nnerr.MalformedNetwork))

	n.InputIndices[0].ReachPastLoops = 1 // deepest legal reach for memory size 2
	assert.NoError(t, net.Validate())
}

func TestMemoryDepthClampedToOne(t *testing.T) {
	net := &Network{Neurons: []Neuron{validNeuron()}}
	assert.Equal(t, uint(1), net.MemoryDepth())
}

func TestMemoryDepthTracksMaxReach(t *testing.T) {
	n := validNeuron()
	n.InputIndices = []InputSynapse{{Start: 0, Size: 1, ReachPastLoops: 3}}
	net := &Network{Neurons: []Neuron{n}}
	assert.Equal(t, uint(4), net.MemoryDepth())
}
