// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tile

import (
	"testing"

	"github.com/sparserun/core/network"
	"github.com/sparserun/core/ringbuf"
	"github.com/sparserun/core/spike"
	"github.com/sparserun/core/transfer"
	"github.com/stretchr/testify/assert"
)

// identity passthrough: 2 inputs, weight 1, bias 0.
func TestSolveIdentityPassthrough(t *testing.T) {
	net := &network.Network{
		InputDataSize: 2,
		WeightTable:   []network.Scalar{1, 1, 0, 0},
		Neurons: []network.Neuron{
			identityNeuron(0, 3, 3, []network.InputSynapse{{Start: network.SynapseIndexOf(0), Size: 2}}),
		},
	}
	p, _, err := Build(net, []int{0}, 1<<20)
	assert.NoError(t, err)

	mem := ringbuf.New(1, 1)
	mem.Step()
	scratch := make([]network.Scalar, p.InputSpan())
	err = Solve(p, []network.Scalar{10, 5}, mem, scratch)
	assert.NoError(t, err)

	out, err := mem.PastElement(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, out)
}

// two-layer dense, all weights 1, biases 0.
func TestSolveTwoLayerDense(t *testing.T) {
	net := &network.Network{
		InputDataSize: 2,
		WeightTable: []network.Scalar{
			1, 1, 0, 0,
			1, 1, 0, 0,
			1, 1, 0, 0,
		},
		Neurons: []network.Neuron{
			identityNeuron(0, 3, 3, []network.InputSynapse{{Start: network.SynapseIndexOf(0), Size: 2}}),
			identityNeuron(4, 3, 7, []network.InputSynapse{{Start: network.SynapseIndexOf(0), Size: 2}}),
			identityNeuron(8, 3, 11, []network.InputSynapse{{Start: 0, Size: 2}}),
		},
	}
	p, consumed, err := Build(net, []int{0, 1, 2}, 1<<20)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)

	mem := ringbuf.New(1, 3)
	mem.Step()
	scratch := make([]network.Scalar, p.InputSpan())
	assert.NoError(t, Solve(p, []network.Scalar{10, 5}, mem, scratch))

	h0, _ := mem.PastElement(0, 0)
	h1, _ := mem.PastElement(0, 1)
	out, _ := mem.PastElement(0, 2)
	assert.Equal(t, 15.0, h0)
	assert.Equal(t, 15.0, h1)
	assert.Equal(t, 30.0, out)
}

// recurrent single neuron: spike memory p=0.5, external
// weight 1.0, input is its own past-1 activation plus an external input.
// The past-1 link carries weight 0 so the recurrence flows through the
// spike filter alone and the outputs approach 1 geometrically; the link
// still exercises the ring buffer's past-read path every step.
func TestSolveRecurrentSingleNeuronGeometricApproach(t *testing.T) {
	net := &network.Network{
		InputDataSize: 1,
		WeightTable:   []network.Scalar{0, 1, 0.5},
		Neurons: []network.Neuron{
			{
				TransferFn:            transfer.Identity,
				SpikeFn:               spike.Memory,
				SpikeParamWeightIndex: 2,
				InputIndices: []network.InputSynapse{
					{Start: 0, Size: 1, ReachPastLoops: 1},
					{Start: network.SynapseIndexOf(0), Size: 1},
				},
				InputWeights: []network.IndexSynapse{{Start: 0, Size: 2}},
			},
		},
	}
	p, _, err := Build(net, []int{0}, 1<<20)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), p.MaxReachPastLoops)

	mem := ringbuf.New(2, 1)
	scratch := make([]network.Scalar, p.InputSpan())

	want := []float64{0.5, 0.75, 0.875, 0.9375}
	for _, w := range want {
		mem.Step()
		assert.NoError(t, Solve(p, []network.Scalar{1}, mem, scratch))
		got, err := mem.PastElement(0, 0)
		assert.NoError(t, err)
		assert.InDelta(t, w, got, 1e-9)
	}
}

func TestSolveSingleNeuronNoInputsUsesOnlyBias(t *testing.T) {
	net := &network.Network{
		WeightTable: []network.Scalar{3.0, 0.0},
		Neurons: []network.Neuron{
			{
				TransferFn:            transfer.Identity,
				SpikeFn:               spike.None,
				SpikeParamWeightIndex: 1,
				InputWeights:          []network.IndexSynapse{{Start: 0, Size: 1}},
			},
		},
	}
	p, _, err := Build(net, []int{0}, 1<<20)
	assert.NoError(t, err)

	mem := ringbuf.New(1, 1)
	mem.Step()
	assert.NoError(t, Solve(p, nil, mem, nil))
	out, _ := mem.PastElement(0, 0)
	assert.Equal(t, 3.0, out) // spike(transfer(weight * 1.0), previous) == 3.0
}
