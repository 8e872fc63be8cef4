// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// neuronFixedOverhead approximates the bookkeeping a tile spends per inner
// neuron beyond its weight/index payload: transfer+spike tags, the
// spike-parameter local index, and the two per-neuron synapse counts.
const neuronFixedOverhead = 32

// EstimatedBytes approximates how much tile memory this neuron will consume
// once packed: 8 bytes per weight-table scalar it owns, 8 bytes per input
// synapse slot it references, plus a fixed per-neuron bookkeeping overhead.
// The router and builder both use this to enforce the device byte budget.
func (n *Neuron) EstimatedBytes() int {
	return 8*int(n.TotalInputWeights()) + 8*int(n.TotalInputIndices()) + neuronFixedOverhead
}
