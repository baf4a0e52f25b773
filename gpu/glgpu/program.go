// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glscene/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles both shaders and links them. The shaders are
// deleted after linking, whether or not it succeeds.
func (c *Context) CompileProgram(name, vertex, fragment string) (gpu.Handle, error) {
	vs, err := compileShader(name, gpu.VertexShader, vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(name, gpu.FragmentShader, fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	if handle == 0 {
		return 0, fmt.Errorf("glgpu: program %q: %w", name, gpu.ErrContext)
	}
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)

		err := fmt.Errorf("glgpu: program %q: %w: %s", name, gpu.ErrLink, strings.TrimRight(lg, "\x00"))
		slog.Error(err.Error())
		return 0, err
	}
	slog.Debug("glgpu: linked program", "name", name, "handle", handle)
	return handle, nil
}

// compileShader compiles the given source as a shader of type typ.
func compileShader(name string, typ gpu.ShaderTypes, src string) (uint32, error) {
	handle := gl.CreateShader(glShaders[typ])

	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		err := fmt.Errorf("glgpu: program %q %s: %w: %s", name, typ, gpu.ErrCompile, strings.TrimRight(msg, "\x00"))
		slog.Error(err.Error())
		return 0, err
	}
	return handle, nil
}

func (c *Context) DeleteProgram(program gpu.Handle) {
	gl.DeleteProgram(program)
}

func (c *Context) UseProgram(program gpu.Handle) {
	gl.UseProgram(program)
}

// ActiveUniforms lists the active uniforms by introspection of the
// linked program. Array uniforms are reported without their [0] suffix.
func (c *Context) ActiveUniforms(program gpu.Handle) []string {
	var n, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &n)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	names := make([]string, 0, n)
	for i := range uint32(n) {
		var length, size int32
		var typ uint32
		buf := strings.Repeat("\x00", int(maxLen+1))
		gl.GetActiveUniform(program, i, maxLen, &length, &size, &typ, gl.Str(buf))
		names = append(names, strings.TrimSuffix(buf[:int(length)], "[0]"))
	}
	return names
}

func (c *Context) UniformLocation(program gpu.Handle, name string) (gpu.Location, bool) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	return loc, loc >= 0
}

func (c *Context) Uniform3f(loc gpu.Location, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (c *Context) UniformMatrix3fv(loc gpu.Location, m [9]float32) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (c *Context) UniformMatrix4fv(loc gpu.Location, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
