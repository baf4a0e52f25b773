// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu is a thin abstraction over the OpenGL family of graphics APIs.

A [Backend] mirrors the OpenGL call sequence needed to draw vertex buffers
with shader programs: buffers, vertex arrays, attribute pointers, programs,
uniforms, clearing and a frame loop. There are two implementations,
selected at build time:

  - glgpu: native OpenGL 4.1 core through glfw and go-gl (desktop).
  - webgl: WebGL2 through syscall/js (GOOS=js GOARCH=wasm).

Object handles are opaque: [Handle] is a uint32 name on native builds and
a js.Value on web builds.

On top of the Backend, this package provides the vertex attribute [Layout]
engine, which computes interleaved strides and offsets from a list of
optional [VertexAttribute]s, the embedded [ShaderSources] table, and
[Program]s with named uniforms, shared through a [ProgramCache].
*/
package gpu

import (
	"context"
)

// Backend is the set of graphics operations that a native or web
// graphics context provides. All methods must be called on the thread
// that created the context. Except for Run, methods do not block.
type Backend interface {

	// CompileProgram compiles the given vertex and fragment shader sources
	// and links them into a program. The name is only used for diagnostics.
	// Failures wrap [ErrCompile] or [ErrLink] with the driver info log.
	CompileProgram(name, vertex, fragment string) (Handle, error)

	// DeleteProgram releases the given program.
	DeleteProgram(program Handle)

	// UseProgram makes the given program the current one.
	UseProgram(program Handle)

	// ActiveUniforms returns the names of the active uniforms of
	// the given linked program.
	ActiveUniforms(program Handle) []string

	// UniformLocation returns the location of the named uniform in
	// the given program, and false if there is no such active uniform.
	UniformLocation(program Handle, name string) (Location, bool)

	// Uniform3f sets a vec3 uniform on the current program.
	Uniform3f(loc Location, x, y, z float32)

	// UniformMatrix3fv sets a mat3 uniform on the current program,
	// from column-major data.
	UniformMatrix3fv(loc Location, m [9]float32)

	// UniformMatrix4fv sets a mat4 uniform on the current program,
	// from column-major data.
	UniformMatrix4fv(loc Location, m [16]float32)

	// CreateBuffer creates a new buffer object.
	CreateBuffer() (Handle, error)

	// BindBuffer binds the buffer to the given target.
	BindBuffer(target BufferTargets, buffer Handle)

	// BufferData uploads data to the buffer bound to target.
	BufferData(target BufferTargets, data []float32, usage Usages)

	// DeleteBuffer releases the given buffer.
	DeleteBuffer(buffer Handle)

	// CreateVertexArray creates a new vertex array object.
	CreateVertexArray() (Handle, error)

	// BindVertexArray binds the given vertex array.
	BindVertexArray(vao Handle)

	// DeleteVertexArray releases the given vertex array.
	DeleteVertexArray(vao Handle)

	// VertexAttribPointer defines the attribute at index in the bound
	// vertex array as size components of typ, read from the bound array
	// buffer every stride bytes starting at byte offset.
	VertexAttribPointer(index uint32, size int32, typ Types, normalized bool, stride, offset int32)

	// EnableVertexAttribArray enables the attribute at index.
	EnableVertexAttribArray(index uint32)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode DrawModes, first, count int32)

	// SetClearColor sets the color used by Clear.
	SetClearColor(red, green, blue, alpha float32)

	// Clear clears the color and depth buffers.
	Clear()

	// ShouldClose returns whether the context has been asked to close,
	// for example by the user closing the window.
	ShouldClose() bool

	// BeforeDraw is called at the start of each frame.
	BeforeDraw()

	// AfterDraw is called at the end of each frame.
	AfterDraw()

	// Run calls frame once per display frame until ctx is done, the
	// context should close, or frame returns an error. Returning [ErrStop]
	// from frame stops the loop with a nil error; any other error is
	// returned. Run blocks the calling goroutine in all implementations:
	// natively it loops on the calling (main) thread, and on the web it
	// waits while the browser calls back on each animation frame.
	Run(ctx context.Context, frame FrameFunc) error

	// Release releases the context and its window or canvas.
	Release()
}
