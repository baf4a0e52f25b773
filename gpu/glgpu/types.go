// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package glgpu

import (
	"cogentcore.org/glscene/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var glTypes = map[gpu.Types]uint32{
	gpu.Int8:    gl.BYTE,
	gpu.Uint8:   gl.UNSIGNED_BYTE,
	gpu.Int16:   gl.SHORT,
	gpu.Uint16:  gl.UNSIGNED_SHORT,
	gpu.Int32:   gl.INT,
	gpu.Uint32:  gl.UNSIGNED_INT,
	gpu.Float32: gl.FLOAT,
}

var glTargets = map[gpu.BufferTargets]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var glUsages = map[gpu.Usages]uint32{
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.StreamDraw:  gl.STREAM_DRAW,
}

var glModes = map[gpu.DrawModes]uint32{
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.Lines:         gl.LINES,
	gpu.Points:        gl.POINTS,
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}
