// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package webgl

import (
	"fmt"
	"log/slog"
	"strings"
	"syscall/js"

	"cogentcore.org/glscene/gpu"
)

// CompileProgram compiles both shaders and links them. The shaders are
// deleted after linking, whether or not it succeeds.
func (c *Context) CompileProgram(name, vertex, fragment string) (gpu.Handle, error) {
	vs, err := c.compileShader(name, gpu.VertexShader, vertex)
	if err != nil {
		return js.Null(), err
	}
	defer c.GL.Call("deleteShader", vs)
	fs, err := c.compileShader(name, gpu.FragmentShader, fragment)
	if err != nil {
		return js.Null(), err
	}
	defer c.GL.Call("deleteShader", fs)

	program := c.GL.Call("createProgram")
	if program.IsNull() {
		return js.Null(), fmt.Errorf("webgl: program %q: %w", name, gpu.ErrContext)
	}
	c.GL.Call("attachShader", program, vs)
	c.GL.Call("attachShader", program, fs)
	c.GL.Call("linkProgram", program)
	c.GL.Call("detachShader", program, vs)
	c.GL.Call("detachShader", program, fs)

	if !c.GL.Call("getProgramParameter", program, c.consts.linkStatus).Bool() {
		lg := c.GL.Call("getProgramInfoLog", program).String()
		c.GL.Call("deleteProgram", program)
		err := fmt.Errorf("webgl: program %q: %w: %s", name, gpu.ErrLink, strings.TrimSpace(lg))
		slog.Error(err.Error())
		return js.Null(), err
	}
	slog.Debug("webgl: linked program", "name", name)
	return program, nil
}

func (c *Context) compileShader(name string, typ gpu.ShaderTypes, src string) (js.Value, error) {
	shader := c.GL.Call("createShader", c.consts.shaders[typ])
	c.GL.Call("shaderSource", shader, src)
	c.GL.Call("compileShader", shader)
	if !c.GL.Call("getShaderParameter", shader, c.consts.compileStatus).Bool() {
		lg := c.GL.Call("getShaderInfoLog", shader).String()
		c.GL.Call("deleteShader", shader)
		err := fmt.Errorf("webgl: program %q %s: %w: %s", name, typ, gpu.ErrCompile, strings.TrimSpace(lg))
		slog.Error(err.Error())
		return js.Null(), err
	}
	return shader, nil
}

func (c *Context) DeleteProgram(program gpu.Handle) {
	c.GL.Call("deleteProgram", program)
}

func (c *Context) UseProgram(program gpu.Handle) {
	c.GL.Call("useProgram", program)
}

// ActiveUniforms lists the active uniforms by introspection of the
// linked program. Array uniforms are reported without their [0] suffix.
func (c *Context) ActiveUniforms(program gpu.Handle) []string {
	n := c.GL.Call("getProgramParameter", program, c.consts.activeUniforms).Int()
	names := make([]string, 0, n)
	for i := range n {
		info := c.GL.Call("getActiveUniform", program, i)
		if info.IsNull() {
			continue
		}
		names = append(names, strings.TrimSuffix(info.Get("name").String(), "[0]"))
	}
	return names
}

func (c *Context) UniformLocation(program gpu.Handle, name string) (gpu.Location, bool) {
	loc := c.GL.Call("getUniformLocation", program, name)
	return loc, !loc.IsNull()
}

func (c *Context) Uniform3f(loc gpu.Location, x, y, z float32) {
	c.GL.Call("uniform3f", loc, x, y, z)
}

func (c *Context) UniformMatrix3fv(loc gpu.Location, m [9]float32) {
	c.GL.Call("uniformMatrix3fv", loc, false, float32Array(m[:]))
}

func (c *Context) UniformMatrix4fv(loc gpu.Location, m [16]float32) {
	c.GL.Call("uniformMatrix4fv", loc, false, float32Array(m[:]))
}
