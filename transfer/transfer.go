// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transfer implements the transfer (activation) function family: a
// small closed enumeration, each variant a pure scalar function with a
// companion derivative and an average-output-range hint for upstream
// initialisers.
package transfer

import (
	"math"

	"github.com/sparserun/core/netcfg"
)

//go:generate goki generate

// Func enumerates the transfer function variants a neuron may select.
type Func int32

const (
	// Identity passes its input through unchanged.
	Identity Func = iota
	// Sigmoid is the standard logistic function.
	Sigmoid
	// Tanh is the hyperbolic tangent.
	Tanh
	// ELU is the exponential linear unit (Clevert et al.).
	ELU
	// SELU is the self-normalizing variant of ELU (Klambauer et al.).
	SELU
	// ReLU is the rectified linear unit.
	ReLU
)

// Apply evaluates the transfer function at x.
func (f Func) Apply(x float64) float64 {
	switch f {
	case Identity:
		return x
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-x))
	case Tanh:
		return math.Tanh(x)
	case ELU:
		if x >= 0 {
			return x
		}
		return netcfg.Current().Alpha * (math.Exp(x) - 1)
	case SELU:
		p := netcfg.Current()
		if x >= 0 {
			return p.Lambda * x
		}
		return p.Lambda * p.Alpha * (math.Exp(x) - 1)
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	default:
		return x
	}
}

// Derivative evaluates the transfer function's derivative at x, taking the
// already-computed forward value y = f.Apply(x) where that is cheaper
// (sigmoid, tanh) and x directly otherwise.
func (f Func) Derivative(x, y float64) float64 {
	switch f {
	case Identity:
		return 1
	case Sigmoid:
		return y * (1 - y)
	case Tanh:
		return 1 - y*y
	case ELU:
		if x >= 0 {
			return 1
		}
		return y + netcfg.Current().Alpha
	case SELU:
		p := netcfg.Current()
		if x >= 0 {
			return p.Lambda
		}
		return y + p.Lambda*p.Alpha
	case ReLU:
		if x > 0 {
			return 1
		}
		return 0
	default:
		return 1
	}
}

// AvgRange returns the (low, high) hint upstream initialisers use to scale
// incoming weights for this transfer function's typical output magnitude.
func (f Func) AvgRange() (lo, hi float64) {
	switch f {
	case Identity:
		return -1, 1
	case Sigmoid:
		return 0, 1
	case Tanh:
		return -1, 1
	case ELU:
		return -netcfg.Current().Alpha, 1
	case SELU:
		p := netcfg.Current()
		return -p.Lambda * p.Alpha, p.Lambda
	case ReLU:
		return 0, 1
	default:
		return -1, 1
	}
}

// IsValid reports whether f is one of the declared variants.
func (f Func) IsValid() bool {
	_, ok := _FuncMap[f]
	return ok
}
