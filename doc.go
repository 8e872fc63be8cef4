// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package core is the top level of the sparse recurrent network compile/execute
runtime. This level has no functional code of its own -- everything lives in
sub-packages:

* network holds the network-description data model: the global weight table,
run-length synapse intervals, and neurons a caller-supplied DSL or
deserializer builds before compiling.

* transfer and spike implement the per-neuron transfer and spike function
families as small closed enumerations.

* synit decodes run-length synapse intervals into a lazy, restartable
sequence of logical indices, classifying external-input references from
internal-neuron references.

* router walks a network's neurons in dependency-respecting order, emitting
parallel-ready subsets under a byte budget.

* tile packs a router subset into a self-contained partial solution (its own
local weight table and tile-local input references) and evaluates one tile
against one external-input vector and the activation ring buffer.

* compile drives the router/tile loop into a row-major Solution and exposes
the weight hot-swap surface.

* runtime sequences a compiled Solution row by row, parallelising tile
execution within a row over a fixed worker pool, and owns the activation
ring buffer lifecycle per worker lane.

* ringbuf is the fixed-depth circular store of past neuron activations
runtime reads and writes through.

* netcfg holds the process-global α/λ transfer-function parameters.

* nnerr defines the typed error kinds shared across the compile and solve
paths.

Training, weight initialisation, a construction DSL, persistence, and GPU
backends are explicitly out of scope.
*/
package core
