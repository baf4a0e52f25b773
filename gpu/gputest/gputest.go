// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package gputest provides a recording [gpu.Backend] for testing code
// that draws through a backend, without a graphics context.
package gputest

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glscene/gpu"
)

// Call is one recorded backend call.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Method + "(" + strings.Join(args, ", ") + ")"
}

// Backend is a [gpu.Backend] that records all calls and hands out
// increasing handles. Compiled programs report the uniforms declared
// in their sources as active.
type Backend struct {

	// Calls are all recorded calls, in order.
	Calls []Call

	// CompileErr, if set, is returned by the next CompileProgram call
	// and then cleared.
	CompileErr error

	// CreateErr, if set, is returned by CreateBuffer and CreateVertexArray.
	CreateErr error

	// MaxFrames is the number of frames after which ShouldClose
	// returns true. 0 means no limit.
	MaxFrames int

	// Frames is the number of frames drawn by Run.
	Frames int

	// ClearColor is the last color set by SetClearColor.
	ClearColor [4]float32

	// Uniforms are the last values set per location,
	// as [3]float32, [9]float32 or [16]float32.
	Uniforms map[gpu.Location]any

	// Current is the program last passed to UseProgram.
	Current gpu.Handle

	// Deleted are the handles passed to Delete* calls.
	Deleted []gpu.Handle

	next      gpu.Handle
	programs  map[gpu.Handle][]string
	locations map[gpu.Location]string
	closed    bool
}

// NewBackend returns a new recording backend.
func NewBackend() *Backend {
	return &Backend{
		Uniforms:  map[gpu.Location]any{},
		programs:  map[gpu.Handle][]string{},
		locations: map[gpu.Location]string{},
	}
}

func (b *Backend) record(method string, args ...any) {
	b.Calls = append(b.Calls, Call{Method: method, Args: args})
}

func (b *Backend) handle() gpu.Handle {
	b.next++
	return b.next
}

// Methods returns the method names of all recorded calls.
func (b *Backend) Methods() []string {
	ms := make([]string, len(b.Calls))
	for i, c := range b.Calls {
		ms[i] = c.Method
	}
	return ms
}

// CallsTo returns the recorded calls to the given method.
func (b *Backend) CallsTo(method string) []Call {
	var cs []Call
	for _, c := range b.Calls {
		if c.Method == method {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset clears the recorded calls.
func (b *Backend) Reset() {
	b.Calls = nil
}

// Close makes ShouldClose return true.
func (b *Backend) Close() {
	b.closed = true
}

// Uniform returns the last value set for the named uniform of the
// given program, and whether it was set.
func (b *Backend) Uniform(program gpu.Handle, name string) (any, bool) {
	loc, ok := b.UniformLocation(program, name)
	if !ok {
		return nil, false
	}
	v, ok := b.Uniforms[loc]
	return v, ok
}

// DeclaredUniforms returns the names of the uniforms declared in the
// given shader sources, sorted and without duplicates.
func DeclaredUniforms(sources ...string) []string {
	var names []string
	for _, src := range sources {
		for _, line := range strings.Split(src, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) != 3 || fields[0] != "uniform" {
				continue
			}
			if !slices.Contains(names, fields[2]) {
				names = append(names, fields[2])
			}
		}
	}
	slices.Sort(names)
	return names
}

func (b *Backend) CompileProgram(name, vertex, fragment string) (gpu.Handle, error) {
	b.record("CompileProgram", name)
	if err := b.CompileErr; err != nil {
		b.CompileErr = nil
		return 0, fmt.Errorf("gputest: program %q: %w", name, err)
	}
	h := b.handle()
	b.programs[h] = DeclaredUniforms(vertex, fragment)
	return h, nil
}

func (b *Backend) DeleteProgram(program gpu.Handle) {
	b.record("DeleteProgram", program)
	delete(b.programs, program)
	b.Deleted = append(b.Deleted, program)
}

func (b *Backend) UseProgram(program gpu.Handle) {
	b.record("UseProgram", program)
	b.Current = program
}

func (b *Backend) ActiveUniforms(program gpu.Handle) []string {
	return slices.Clone(b.programs[program])
}

// UniformLocation returns program*1000 plus the uniform position,
// so that locations are distinct across programs.
func (b *Backend) UniformLocation(program gpu.Handle, name string) (gpu.Location, bool) {
	i := slices.Index(b.programs[program], name)
	if i < 0 {
		return -1, false
	}
	loc := gpu.Location(program)*1000 + gpu.Location(i)
	b.locations[loc] = name
	return loc, true
}

func (b *Backend) Uniform3f(loc gpu.Location, x, y, z float32) {
	b.record("Uniform3f", b.locations[loc])
	b.Uniforms[loc] = [3]float32{x, y, z}
}

func (b *Backend) UniformMatrix3fv(loc gpu.Location, m [9]float32) {
	b.record("UniformMatrix3fv", b.locations[loc])
	b.Uniforms[loc] = m
}

func (b *Backend) UniformMatrix4fv(loc gpu.Location, m [16]float32) {
	b.record("UniformMatrix4fv", b.locations[loc])
	b.Uniforms[loc] = m
}

func (b *Backend) CreateBuffer() (gpu.Handle, error) {
	b.record("CreateBuffer")
	if b.CreateErr != nil {
		return 0, b.CreateErr
	}
	return b.handle(), nil
}

func (b *Backend) BindBuffer(target gpu.BufferTargets, buffer gpu.Handle) {
	b.record("BindBuffer", target, buffer)
}

func (b *Backend) BufferData(target gpu.BufferTargets, data []float32, usage gpu.Usages) {
	b.record("BufferData", target, len(data), usage)
}

func (b *Backend) DeleteBuffer(buffer gpu.Handle) {
	b.record("DeleteBuffer", buffer)
	b.Deleted = append(b.Deleted, buffer)
}

func (b *Backend) CreateVertexArray() (gpu.Handle, error) {
	b.record("CreateVertexArray")
	if b.CreateErr != nil {
		return 0, b.CreateErr
	}
	return b.handle(), nil
}

func (b *Backend) BindVertexArray(vao gpu.Handle) {
	b.record("BindVertexArray", vao)
}

func (b *Backend) DeleteVertexArray(vao gpu.Handle) {
	b.record("DeleteVertexArray", vao)
	b.Deleted = append(b.Deleted, vao)
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, typ gpu.Types, normalized bool, stride, offset int32) {
	b.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.record("EnableVertexAttribArray", index)
}

func (b *Backend) DrawArrays(mode gpu.DrawModes, first, count int32) {
	b.record("DrawArrays", mode, first, count)
}

func (b *Backend) SetClearColor(red, green, blue, alpha float32) {
	b.record("SetClearColor", red, green, blue, alpha)
	b.ClearColor = [4]float32{red, green, blue, alpha}
}

func (b *Backend) Clear() {
	b.record("Clear")
}

func (b *Backend) ShouldClose() bool {
	return b.closed || (b.MaxFrames > 0 && b.Frames >= b.MaxFrames)
}

func (b *Backend) BeforeDraw() {
	b.Clear()
}

func (b *Backend) AfterDraw() {
	b.record("AfterDraw")
	b.Frames++
}

// Run runs frames like the native backend, without waiting for a display.
func (b *Backend) Run(ctx context.Context, frame gpu.FrameFunc) error {
	var fc gpu.FrameClock
	for !b.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		if stop, err := gpu.FrameResult(gpu.DrawFrame(b, &fc, frame)); stop {
			return err
		}
	}
	return nil
}

func (b *Backend) Release() {
	b.record("Release")
}

var _ gpu.Backend = (*Backend)(nil)
