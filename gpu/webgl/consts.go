// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webgl

import "cogentcore.org/glscene/gpu"

// glConsts are the WebGL enum values, read from the context.
type glConsts struct {
	arrayBuffer        int
	elementArrayBuffer int
	staticDraw         int
	dynamicDraw        int
	streamDraw         int
	colorBufferBit     int
	depthBufferBit     int
	depthTest          int
	compileStatus      int
	linkStatus         int
	vertexShader       int
	fragmentShader     int
	activeUniforms     int

	types   map[gpu.Types]int
	targets map[gpu.BufferTargets]int
	usages  map[gpu.Usages]int
	modes   map[gpu.DrawModes]int
	shaders map[gpu.ShaderTypes]int
}

func (c *Context) initConsts() {
	get := func(name string) int { return c.GL.Get(name).Int() }
	c.consts = glConsts{
		arrayBuffer:        get("ARRAY_BUFFER"),
		elementArrayBuffer: get("ELEMENT_ARRAY_BUFFER"),
		staticDraw:         get("STATIC_DRAW"),
		dynamicDraw:        get("DYNAMIC_DRAW"),
		streamDraw:         get("STREAM_DRAW"),
		colorBufferBit:     get("COLOR_BUFFER_BIT"),
		depthBufferBit:     get("DEPTH_BUFFER_BIT"),
		depthTest:          get("DEPTH_TEST"),
		compileStatus:      get("COMPILE_STATUS"),
		linkStatus:         get("LINK_STATUS"),
		vertexShader:       get("VERTEX_SHADER"),
		fragmentShader:     get("FRAGMENT_SHADER"),
		activeUniforms:     get("ACTIVE_UNIFORMS"),
	}
	cs := &c.consts
	cs.types = map[gpu.Types]int{
		gpu.Int8:    get("BYTE"),
		gpu.Uint8:   get("UNSIGNED_BYTE"),
		gpu.Int16:   get("SHORT"),
		gpu.Uint16:  get("UNSIGNED_SHORT"),
		gpu.Int32:   get("INT"),
		gpu.Uint32:  get("UNSIGNED_INT"),
		gpu.Float32: get("FLOAT"),
	}
	cs.targets = map[gpu.BufferTargets]int{
		gpu.ArrayBuffer:        cs.arrayBuffer,
		gpu.ElementArrayBuffer: cs.elementArrayBuffer,
	}
	cs.usages = map[gpu.Usages]int{
		gpu.StaticDraw:  cs.staticDraw,
		gpu.DynamicDraw: cs.dynamicDraw,
		gpu.StreamDraw:  cs.streamDraw,
	}
	cs.modes = map[gpu.DrawModes]int{
		gpu.Triangles:     get("TRIANGLES"),
		gpu.TriangleStrip: get("TRIANGLE_STRIP"),
		gpu.Lines:         get("LINES"),
		gpu.Points:        get("POINTS"),
	}
	cs.shaders = map[gpu.ShaderTypes]int{
		gpu.VertexShader:   cs.vertexShader,
		gpu.FragmentShader: cs.fragmentShader,
	}
}
