// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsAreSELUConstants(t *testing.T) {
	p := Current()
	assert.InDelta(t, 1.6732632423543772, p.Alpha, 1e-12)
	assert.InDelta(t, 1.0507009873554804, p.Lambda, 1e-12)
}

func TestSetOverridesCurrent(t *testing.T) {
	orig := Current()
	defer Set(orig)

	Set(Params{Alpha: 2, Lambda: 3})
	got := Current()
	assert.Equal(t, 2.0, got.Alpha)
	assert.Equal(t, 3.0, got.Lambda)
}
