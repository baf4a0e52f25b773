// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct{ failed bool }

func (m *mockT) Errorf(format string, args ...any) { m.failed = true }

func TestEqual(t *testing.T) {
	Equal(t, 3.1415, 3.1416)
	EqualTol(t, float32(1), 1.00001, 1e-4)
	EqualTolSlice(t, []float32{1, 2}, []float32{1.0000001, 2}, 1e-6)

	mt := &mockT{}
	assert.False(t, EqualTol(mt, 1.0, 1.1, 0.01))
	assert.True(t, mt.failed)
	assert.False(t, EqualTolSlice(&mockT{}, []float64{1}, []float64{1, 2}, 0.01))
}
