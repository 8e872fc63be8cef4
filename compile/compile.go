// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"log"

	"github.com/sparserun/core/netcfg"
	"github.com/sparserun/core/network"
	"github.com/sparserun/core/nnerr"
	"github.com/sparserun/core/router"
	"github.com/sparserun/core/tile"
)

// Compile walks net's dependency order row by row, packing up to
// maxWorkersPerRow tiles per row, each tile under deviceMaxBytes. Every
// collection pass yields at most one tile; whatever the builder refuses goes
// back to unvisited and is re-collected, so a tile's refused tail can still
// land in the same row when it is independent of the row's other tiles.
//
// optimiseForThroughput forces strict row-independent collection from a
// row's very first tile. Without it, the first tile of each row may use
// transitive same-subset eligibility, which lets a small feedforward
// network compile into a single row (even a single tile) instead of one row
// per layer; a row's second and later tiles are always collected strictly,
// so tiles sharing a row never depend on each other in either mode.
func Compile(net *network.Network, deviceMaxBytes int, maxWorkersPerRow int, optimiseForThroughput bool) (*Solution, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if maxWorkersPerRow <= 0 {
		return nil, nnerr.New(nnerr.MalformedNetwork, "compile.Compile: max_workers_per_row must be positive, got %d", maxWorkersPerRow)
	}

	r := router.New(net)
	sol := &Solution{
		NeuronCount:   len(net.Neurons),
		OutputCount:   net.OutputNeuronNumber,
		InputDataSize: net.InputDataSize,
	}

	var maxReach uint
	rowIndex := 0
	for !r.Done() {
		r.BeginRow()
		rowTiles := 0
		for rowTiles < maxWorkersPerRow && !r.Done() {
			strict := optimiseForThroughput || rowTiles > 0

			subset, err := r.CollectSubset(len(net.Neurons), deviceMaxBytes, strict)
			if err != nil {
				if rowTiles > 0 && nnerr.Is(err, nnerr.CyclicDependency) {
					break // everything left depends on this row; start the next one
				}
				return nil, err
			}

			t, consumed, err := tile.Build(net, subset, deviceMaxBytes)
			if err != nil {
				return nil, err
			}
			if err := t.Validate(); err != nil {
				return nil, err
			}
			for _, gIdx := range subset[:consumed] {
				if err := r.ConfirmFirstElementProcessed(gIdx); err != nil {
					return nil, err
				}
			}
			r.ResetRemainingSubset()

			if t.MaxReachPastLoops > maxReach {
				maxReach = t.MaxReachPastLoops
			}
			sol.Tiles = append(sol.Tiles, t)
			rowTiles++
		}

		sol.Cols = append(sol.Cols, rowTiles)
		rowIndex++

		if netcfg.Verbose.Load() {
			log.Printf("compile: row %d packed into %d tile(s)", rowIndex-1, rowTiles)
		}
	}

	sol.MemoryDepth = 1 + maxReach
	return sol, nil
}
