// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network holds the network-description data model: the weight
// table, synapse intervals, and neurons that a caller-supplied DSL or
// deserializer builds before handing the network to compile.Compile.
// Construction, weight initialisation and persistence are out of scope --
// this package only defines and validates the shape.
package network

import (
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/spike"
	"github.com/sparserun/core/transfer"
)

// Scalar is the weight/activation element type. float64, because the
// persisted network schema declares weight_table as repeated f64 for binary
// interchange.
type Scalar = float64

// IndexSynapse is a run-length-encoded contiguous range of either
// weight-table indices or inner-neuron indices.
type IndexSynapse struct {
	Start int
	Size  uint
}

// InputSynapse is an IndexSynapse that additionally carries how many time
// steps in the past to read its source from. Start < 0 encodes an external
// input reference: the actual input index is -Start-1. Start >= 0 encodes an
// internal neuron reference.
type InputSynapse struct {
	Start          int
	Size           uint
	ReachPastLoops uint
}

// IsInput reports whether start uses the external-input convention.
func IsInput(start int) bool { return start < 0 }

// InputIndexOf decodes an external-input-convention start into the actual
// input-vector index.
func InputIndexOf(start int) int { return -start - 1 }

// SynapseIndexOf encodes an input-vector index using the external-input
// convention, the inverse of InputIndexOf.
func SynapseIndexOf(inputIndex int) int { return -(inputIndex + 1) }

// Neuron is one network-level compute unit: a transfer function, a spike
// function with its parameter weight, and ordered lists of input and weight
// synapses.
type Neuron struct {
	TransferFn            transfer.Func
	SpikeFn               spike.Func
	SpikeParamWeightIndex int
	InputIndices          []InputSynapse
	InputWeights          []IndexSynapse
}

// TotalInputIndices returns the sum of Size across InputIndices.
func (n *Neuron) TotalInputIndices() uint {
	var total uint
	for _, s := range n.InputIndices {
		total += s.Size
	}
	return total
}

// TotalInputWeights returns the sum of Size across InputWeights.
func (n *Neuron) TotalInputWeights() uint {
	var total uint
	for _, s := range n.InputWeights {
		total += s.Size
	}
	return total
}

// Network is the process-shared, immutable-after-compilation description of
// a sparse recurrent network: a global weight table and an ordered neuron
// array.
type Network struct {
	InputDataSize      int
	OutputNeuronNumber int
	MemorySize         uint
	WeightTable        []Scalar
	Neurons            []Neuron
}

// Validate checks the network-level invariants that can be verified
// without compiling: every synapse has Size >= 1, every neuron's total
// weight count is >= its total index count, spike-parameter weight indices
// are in range, and transfer/spike enumerators are valid.
func (net *Network) Validate() error {
	for ni := range net.Neurons {
		n := &net.Neurons[ni]
		if !n.TransferFn.IsValid() {
			return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d has unknown transfer function %d", ni, n.TransferFn)
		}
		if !n.SpikeFn.IsValid() {
			return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d has unknown spike function %d", ni, n.SpikeFn)
		}
		if n.SpikeParamWeightIndex < 0 || n.SpikeParamWeightIndex >= len(net.WeightTable) {
			return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d spike parameter weight index %d out of range", ni, n.SpikeParamWeightIndex)
		}
		for _, s := range n.InputIndices {
			if s.Size == 0 {
				return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d has a zero-sized input synapse", ni)
			}
			if net.MemorySize > 0 && s.ReachPastLoops >= net.MemorySize {
				return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d reaches %d loops past, beyond declared memory size %d", ni, s.ReachPastLoops, net.MemorySize)
			}
		}
		for _, s := range n.InputWeights {
			if s.Size == 0 {
				return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d has a zero-sized weight synapse", ni)
			}
		}
		if n.TotalInputWeights() < n.TotalInputIndices() {
			return nnerr.New(nnerr.MalformedNetwork, "network.Validate: neuron %d has %d input weights but %d input indices", ni, n.TotalInputWeights(), n.TotalInputIndices())
		}
	}
	return nil
}

// MemoryDepth returns 1 + the maximum ReachPastLoops observed across every
// input synapse of every neuron, clamped to >= 1.
func (net *Network) MemoryDepth() uint {
	var maxReach uint
	for i := range net.Neurons {
		for _, s := range net.Neurons[i].InputIndices {
			if s.ReachPastLoops > maxReach {
				maxReach = s.ReachPastLoops
			}
		}
	}
	return 1 + maxReach
}
