// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nnerr defines the typed error kinds shared across the compile and
// solve paths of the sparse network core.
package nnerr

import (
	"errors"
	"fmt"
)

// Kind is a sentinel error identifying which invariant failed. Callers branch
// on kind with errors.Is, never on the formatted message.
type Kind int

const (
	// MalformedNetwork means a neuron's declared synapses violate a
	// network-level invariant (weight count < index count, an enum out of
	// range, or a past-reach beyond the configured memory depth).
	MalformedNetwork Kind = iota
	// CyclicDependency means the router could not make progress: a full
	// scan found no schedulable neuron while unvisited neurons remain.
	CyclicDependency
	// BudgetExceeded means a single neuron's estimated size exceeds the
	// device byte budget and cannot be placed in any tile.
	BudgetExceeded
	// InvalidInput means a solve-time input vector had the wrong length or
	// a past-index read violated the ring buffer's memory depth.
	InvalidInput
	// MalformedTile means a partial solution's internal invariants failed
	// after compilation -- never expected, indicates a compiler bug.
	MalformedTile
)

func (k Kind) String() string {
	switch k {
	case MalformedNetwork:
		return "MalformedNetwork"
	case CyclicDependency:
		return "CyclicDependency"
	case BudgetExceeded:
		return "BudgetExceeded"
	case InvalidInput:
		return "InvalidInput"
	case MalformedTile:
		return "MalformedTile"
	default:
		return "UnknownErrorKind"
	}
}

// sentinel is the comparable value errors.Is matches against; New wraps it
// with call-site context via %w so the kind survives formatting.
type sentinel struct{ kind Kind }

func (s *sentinel) Error() string { return s.kind.String() }

var sentinels = map[Kind]*sentinel{
	MalformedNetwork: {MalformedNetwork},
	CyclicDependency: {CyclicDependency},
	BudgetExceeded:   {BudgetExceeded},
	InvalidInput:     {InvalidInput},
	MalformedTile:    {MalformedTile},
}

// New builds an error of the given kind with a "pkg.Func: message" style
// message, wrapping the kind's sentinel so errors.Is(err, nnerr.Of(kind))
// reports true.
func New(kind Kind, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinels[kind])
}

// Of returns the comparable sentinel error for a kind, for use with errors.Is.
func Of(kind Kind) error { return sentinels[kind] }

// Is reports whether err was produced (directly or wrapped) for the given kind.
func Is(err error, kind Kind) bool {
	return errors.Is(err, sentinels[kind])
}
