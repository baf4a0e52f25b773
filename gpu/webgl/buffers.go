// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webgl

import (
	"syscall/js"
	"unsafe"

	"cogentcore.org/glscene/gpu"
)

// float32Array returns a new JS Float32Array with a copy of data.
func float32Array(data []float32) js.Value {
	if len(data) == 0 {
		return js.Global().Get("Float32Array").New(0)
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
}

func (c *Context) CreateBuffer() (gpu.Handle, error) {
	buf := c.GL.Call("createBuffer")
	if buf.IsNull() {
		return js.Null(), gpu.ErrContext
	}
	return buf, nil
}

func (c *Context) BindBuffer(target gpu.BufferTargets, buffer gpu.Handle) {
	c.GL.Call("bindBuffer", c.consts.targets[target], buffer)
}

func (c *Context) BufferData(target gpu.BufferTargets, data []float32, usage gpu.Usages) {
	c.GL.Call("bufferData", c.consts.targets[target], float32Array(data), c.consts.usages[usage])
}

func (c *Context) DeleteBuffer(buffer gpu.Handle) {
	c.GL.Call("deleteBuffer", buffer)
}

func (c *Context) CreateVertexArray() (gpu.Handle, error) {
	vao := c.GL.Call("createVertexArray")
	if vao.IsNull() {
		return js.Null(), gpu.ErrContext
	}
	return vao, nil
}

func (c *Context) BindVertexArray(vao gpu.Handle) {
	c.GL.Call("bindVertexArray", vao)
}

func (c *Context) DeleteVertexArray(vao gpu.Handle) {
	c.GL.Call("deleteVertexArray", vao)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ gpu.Types, normalized bool, stride, offset int32) {
	c.GL.Call("vertexAttribPointer", index, size, c.consts.types[typ], normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.GL.Call("enableVertexAttribArray", index)
}

func (c *Context) DrawArrays(mode gpu.DrawModes, first, count int32) {
	c.GL.Call("drawArrays", c.consts.modes[mode], first, count)
}
