// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netcfg holds the process-global configuration the transfer and
// spike functions need (alpha, lambda) plus a verbosity switch for the one
// place compile-time diagnostics are logged. It intentionally does not pull
// in a CLI/file/env loader -- that layer is out of scope for this core.
package netcfg

import "sync/atomic"

// Params holds the process-global scalars shared by every transfer function
// evaluation.
type Params struct {
	// Alpha is the ELU/SELU alpha parameter.
	Alpha float64
	// Lambda is the SELU scale parameter.
	Lambda float64
}

// Defaults sets the standard SELU constants (Klambauer et al. 2017).
func (p *Params) Defaults() {
	p.Alpha = 1.6732632423543772
	p.Lambda = 1.0507009873554804
}

var current atomic.Value // stores Params

func init() {
	var p Params
	p.Defaults()
	current.Store(p)
}

// Current returns a copy of the active process-global parameters.
func Current() Params {
	return current.Load().(Params)
}

// Set installs new process-global parameters. Not safe to call while any
// solve is in flight, same quiescence requirement as weight hot-swapping.
func Set(p Params) {
	current.Store(p)
}

// Verbose gates the one compile-time log.Printf this core ever emits (tile
// and row counts from compile.Compile). Off by default; solve-path code
// never logs regardless of this setting.
var Verbose atomic.Bool
