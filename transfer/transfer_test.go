// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityIsPassthrough(t *testing.T) {
	assert.Equal(t, 3.5, Identity.Apply(3.5))
	assert.Equal(t, 1.0, Identity.Derivative(3.5, 3.5))
}

func TestReLUClampsNegatives(t *testing.T) {
	assert.Equal(t, 0.0, ReLU.Apply(-1))
	assert.Equal(t, 2.0, ReLU.Apply(2))
}

func TestSigmoidRange(t *testing.T) {
	lo, hi := Sigmoid.AvgRange()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.InDelta(t, 0.5, Sigmoid.Apply(0), 1e-9)
}

func TestIsValidRejectsOutOfRange(t *testing.T) {
	assert.True(t, Tanh.IsValid())
	assert.False(t, Func(99).IsValid())
}

func TestStringRoundTripsThroughSetString(t *testing.T) {
	var f Func
	err := f.SetString(SELU.String())
	assert.NoError(t, err)
	assert.Equal(t, SELU, f)
}
