// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package glgpu

import (
	"testing"

	"cogentcore.org/glscene/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestTypesMapped(t *testing.T) {
	for tp := gpu.Int8; tp < gpu.TypesN; tp++ {
		assert.Contains(t, glTypes, tp, tp.String())
	}
	assert.Equal(t, uint32(gl.FLOAT), glTypes[gpu.Float32])
	assert.Len(t, glTargets, 2)
	assert.Len(t, glUsages, 3)
	assert.Equal(t, uint32(gl.TRIANGLES), glModes[gpu.Triangles])
	assert.Equal(t, uint32(gl.FRAGMENT_SHADER), glShaders[gpu.FragmentShader])
}
