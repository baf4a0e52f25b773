// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package glgpu

import (
	"cogentcore.org/glscene/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (c *Context) CreateBuffer() (gpu.Handle, error) {
	var buf uint32
	gl.GenBuffers(1, &buf)
	if buf == 0 {
		return 0, gpu.ErrContext
	}
	return buf, nil
}

func (c *Context) BindBuffer(target gpu.BufferTargets, buffer gpu.Handle) {
	gl.BindBuffer(glTargets[target], buffer)
}

// BufferData uploads data, which may be empty.
func (c *Context) BufferData(target gpu.BufferTargets, data []float32, usage gpu.Usages) {
	if len(data) == 0 {
		gl.BufferData(glTargets[target], 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(glTargets[target], len(data)*4, gl.Ptr(&data[0]), glUsages[usage])
}

func (c *Context) DeleteBuffer(buffer gpu.Handle) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) CreateVertexArray() (gpu.Handle, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, gpu.ErrContext
	}
	return vao, nil
}

func (c *Context) BindVertexArray(vao gpu.Handle) {
	gl.BindVertexArray(vao)
}

func (c *Context) DeleteVertexArray(vao gpu.Handle) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ gpu.Types, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(index, size, glTypes[typ], normalized, stride, uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DrawArrays(mode gpu.DrawModes, first, count int32) {
	gl.DrawArrays(glModes[mode], first, count)
}
