// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package router walks a network's neurons in dependency-respecting order,
// emitting parallel-ready subsets under a byte budget. It owns no
// concurrency itself -- tile.Build packs the subsets it emits, and
// compile.Compile drives the row/column loop.
package router

import (
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
)

// status is the tri-state a neuron passes through during routing.
type status int

const (
	unvisited status = iota
	inSubset
	processed
)

// Router walks github.com/sparserun/core/network.Network neurons in
// dependency order, tracking a tri-state flag per neuron and the current
// in-flight subset.
type Router struct {
	net         *network.Network
	flags       []status
	rowStart    []bool // processed state captured at the last BeginRow
	subset      []int
	subsetBytes int
}

// New builds a Router over every neuron in net, all initially unvisited.
func New(net *network.Network) *Router {
	return &Router{
		net:      net,
		flags:    make([]status, len(net.Neurons)),
		rowStart: make([]bool, len(net.Neurons)),
	}
}

// BeginRow snapshots which neurons are processed right now. Strict
// collection passes only accept dependencies processed at or before the
// snapshot, so every tile collected strictly within one row is independent
// of the row's other tiles, never just of earlier subsets.
func (r *Router) BeginRow() {
	for i, f := range r.flags {
		r.rowStart[i] = f == processed
	}
}

// Done reports whether every neuron has been confirmed processed.
func (r *Router) Done() bool {
	for _, f := range r.flags {
		if f != processed {
			return false
		}
	}
	return true
}

// Subset returns the current in-flight subset (the builder's read-only
// input buffer), most recently produced by CollectSubset.
func (r *Router) Subset() []int {
	return r.subset
}

// eligible reports whether neuron n's non-past, non-external input
// references are all satisfied. Relaxed (strict=false): the referenced
// neuron is processed or already in the current subset. Strict: the
// referenced neuron was processed before the last BeginRow, so n cannot
// depend on anything the current row is still computing.
func (r *Router) eligible(n int, strict bool) bool {
	neuron := &r.net.Neurons[n]
	for _, syn := range neuron.InputIndices {
		if syn.ReachPastLoops >= 1 {
			continue // past reads are always available
		}
		if network.IsInput(syn.Start) {
			continue // external inputs are always available
		}
		for i := uint(0); i < syn.Size; i++ {
			ref := syn.Start + int(i)
			if strict {
				if !r.rowStart[ref] {
					return false
				}
				continue
			}
			switch r.flags[ref] {
			case processed, inSubset:
			default:
				return false
			}
		}
	}
	return true
}

// CollectSubset scans neurons in network order, appending every unvisited,
// eligible neuron to a fresh subset until subset length reaches maxParallel
// or the estimated subset byte cost reaches maxBytes. strict=true disables
// transitive same-subset eligibility and only accepts dependencies that
// were processed before the last BeginRow (every neuron in the returned
// subset can be computed without anything the current row produces), used
// for secondary tiles of a row to preserve cross-tile independence.
//
// Returns nnerr.BudgetExceeded if a single eligible neuron's estimated size
// alone exceeds maxBytes (it can never be placed under this budget), and
// nnerr.CyclicDependency if no neuron was eligible while neurons remain
// unvisited.
func (r *Router) CollectSubset(maxParallel int, maxBytes int, strict bool) ([]int, error) {
	r.subset = r.subset[:0]
	r.subsetBytes = 0

	for n := range r.flags {
		if r.flags[n] != unvisited {
			continue
		}
		if !r.eligible(n, strict) {
			continue
		}
		sz := r.net.Neurons[n].EstimatedBytes()
		if sz > maxBytes {
			return nil, nnerr.New(nnerr.BudgetExceeded, "router.CollectSubset: neuron %d estimated at %d bytes exceeds budget %d", n, sz, maxBytes)
		}
		if r.subsetBytes+sz > maxBytes {
			break
		}
		r.flags[n] = inSubset
		r.subset = append(r.subset, n)
		r.subsetBytes += sz
		if len(r.subset) >= maxParallel {
			break
		}
	}

	if len(r.subset) == 0 && !r.Done() {
		return nil, nnerr.New(nnerr.CyclicDependency, "router.CollectSubset: no neuron is schedulable but unvisited neurons remain")
	}
	return r.subset, nil
}

// ConfirmFirstElementProcessed promotes the head of the current subset from
// in-current-subset to processed and pops it. n must equal r.subset[0].
func (r *Router) ConfirmFirstElementProcessed(n int) error {
	if len(r.subset) == 0 || r.subset[0] != n {
		return nnerr.New(nnerr.MalformedTile, "router.ConfirmFirstElementProcessed: neuron %d is not the head of the current subset", n)
	}
	r.flags[n] = processed
	r.subset = r.subset[1:]
	return nil
}

// ResetRemainingSubset demotes every neuron still marked in-current-subset
// back to unvisited and clears the subset buffer. Used when the builder
// refuses to add the remainder of a subset to any tile this round.
func (r *Router) ResetRemainingSubset() {
	for _, n := range r.subset {
		r.flags[n] = unvisited
	}
	r.subset = nil
	r.subsetBytes = 0
}

// IsWithoutDependency reports whether every non-past input of neuron n is
// currently processed. Used by tests and diagnostic tools, independent of
// subset membership.
func (r *Router) IsWithoutDependency(n int) bool {
	neuron := &r.net.Neurons[n]
	for _, syn := range neuron.InputIndices {
		if syn.ReachPastLoops >= 1 || network.IsInput(syn.Start) {
			continue
		}
		for i := uint(0); i < syn.Size; i++ {
			if r.flags[syn.Start+int(i)] != processed {
				return false
			}
		}
	}
	return true
}
