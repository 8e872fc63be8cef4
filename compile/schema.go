// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compile turns a network.Network into a Solution: a row-major
// matrix of tiles ready for runtime.Orchestrator to execute.
package compile

import (
	"golang.org/x/exp/slices"

	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/tile"
)

// Solution is the compiled execution plan for a network: rows of
// independent tiles, row r+1 depending on row r's outputs at the current
// time step.
type Solution struct {
	NeuronCount   int
	OutputCount   int
	MemoryDepth   uint
	InputDataSize int

	// Cols holds the tile count of each row; len(Cols) is the row count.
	Cols []int

	// Tiles is every tile, row-major: Tiles[0:Cols[0]] is row 0,
	// Tiles[Cols[0]:Cols[0]+Cols[1]] is row 1, and so on.
	Tiles []*tile.PartialSolution
}

// Row returns the tiles belonging to row r.
func (s *Solution) Row(r int) []*tile.PartialSolution {
	start := 0
	for i := 0; i < r; i++ {
		start += s.Cols[i]
	}
	return s.Tiles[start : start+s.Cols[r]]
}

// UpdateWeight overwrites every tile slot that was copied from global weight
// index globalIdx. Must not be called concurrently with a runtime solve.
func (s *Solution) UpdateWeight(globalIdx int, value network.Scalar) {
	for _, t := range s.Tiles {
		for i, g := range t.GlobalWeightIndex {
			if g == globalIdx {
				t.LocalWeightTable[i] = value
			}
		}
	}
}

// UpdateWeightsFrom copies every weight of net into the tile slots that were
// compiled from it, without touching tile structure. Must not be called
// concurrently with a runtime solve.
func (s *Solution) UpdateWeightsFrom(net *network.Network) {
	for _, t := range s.Tiles {
		for i, g := range t.GlobalWeightIndex {
			t.LocalWeightTable[i] = net.WeightTable[g]
		}
	}
}

// ValidateCoverage checks the testable property that every tile's
// output_data range is disjoint and their union is exactly [0, NeuronCount).
// Tiles are not stored in output order (row-major compilation order differs
// from network-neuron order once a network spans multiple rows), so this
// sorts a copy by OutputStart before sweeping it.
func (s *Solution) ValidateCoverage() error {
	ordered := append([]*tile.PartialSolution(nil), s.Tiles...)
	slices.SortFunc(ordered, func(a, b *tile.PartialSolution) int {
		return a.OutputStart - b.OutputStart
	})

	want := 0
	for _, t := range ordered {
		if t.OutputStart != want {
			return nnerr.New(nnerr.MalformedTile, "compile.ValidateCoverage: gap or overlap at neuron %d (tile starts at %d)", want, t.OutputStart)
		}
		want += t.OutputSize
	}
	if want != s.NeuronCount {
		return nnerr.New(nnerr.MalformedTile, "compile.ValidateCoverage: tiles cover %d neurons, solution declares %d", want, s.NeuronCount)
	}
	return nil
}
