// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/math32"
)

// Entity is one drawable object: flattened vertex data in a buffer of
// its own, described by a vertex array with an interleaved attribute
// layout, and drawn with an optional shared [gpu.Program].
type Entity struct {

	// Vertices is the flattened vertex data.
	Vertices []float32

	// VertexArray is the backend vertex array describing the layout.
	VertexArray gpu.Handle

	// Buffer is the backend array buffer holding Vertices.
	Buffer gpu.Handle

	// Program is used for drawing if non-nil. It is owned by
	// a [gpu.ProgramCache], not by the entity.
	Program *gpu.Program

	// Attributes is the attribute list, where nil entries are
	// skipped slots. See [gpu.NewLayout].
	Attributes []*gpu.VertexAttribute

	layout *gpu.Layout
}

// NewEntity returns a new entity for the given vertices, flattened
// to floats, with the given attribute layout.
func NewEntity(b gpu.Backend, vertices []math32.Vector3, prog *gpu.Program, attrs []*gpu.VertexAttribute) (*Entity, error) {
	return NewEntityFromVertices(b, math32.Flatten(vertices), prog, attrs)
}

// NewEntityFromVertices returns a new entity for the given flat vertex
// data: it creates a vertex array and buffer, uploads the data and
// applies the attribute layout.
func NewEntityFromVertices(b gpu.Backend, vertices []float32, prog *gpu.Program, attrs []*gpu.VertexAttribute) (*Entity, error) {
	layout, err := gpu.NewLayout(attrs)
	if err != nil {
		return nil, fmt.Errorf("scene.NewEntity: %w", err)
	}
	vao, err := b.CreateVertexArray()
	if err != nil {
		return nil, fmt.Errorf("scene.NewEntity: vertex array: %w", err)
	}
	b.BindVertexArray(vao)
	buf, err := b.CreateBuffer()
	if err != nil {
		b.DeleteVertexArray(vao)
		return nil, fmt.Errorf("scene.NewEntity: buffer: %w", err)
	}
	b.BindBuffer(gpu.ArrayBuffer, buf)
	b.BufferData(gpu.ArrayBuffer, vertices, gpu.StaticDraw)
	layout.Apply(b)

	return &Entity{
		Vertices:    vertices,
		VertexArray: vao,
		Buffer:      buf,
		Program:     prog,
		Attributes:  attrs,
		layout:      layout,
	}, nil
}

// VertexCount returns the number of vertices drawn: the number of
// floats divided by the number of floats per vertex record.
func (en *Entity) VertexCount() (int32, error) {
	return gpu.VertexCount(len(en.Vertices), en.Attributes)
}

// Draw uses the entity program if set, binds its vertex array and
// draws its vertices as a triangle list.
func (en *Entity) Draw(b gpu.Backend) error {
	n, err := en.VertexCount()
	if err != nil {
		return fmt.Errorf("scene.Entity.Draw: %w", err)
	}
	if en.Program != nil {
		en.Program.Use()
	}
	b.BindVertexArray(en.VertexArray)
	b.DrawArrays(gpu.Triangles, 0, n)
	return nil
}

// BindProgram sets the program used to draw the entity.
func (en *Entity) BindProgram(prog *gpu.Program) {
	en.Program = prog
}

// AddAttribute appends an attribute slot (nil to skip one) and
// re-applies the layout to the entity vertex array.
func (en *Entity) AddAttribute(b gpu.Backend, attr *gpu.VertexAttribute) error {
	attrs := append(en.Attributes[:len(en.Attributes):len(en.Attributes)], attr)
	layout, err := gpu.NewLayout(attrs)
	if err != nil {
		return fmt.Errorf("scene.Entity.AddAttribute: %w", err)
	}
	en.Attributes = attrs
	en.layout = layout
	b.BindVertexArray(en.VertexArray)
	b.BindBuffer(gpu.ArrayBuffer, en.Buffer)
	layout.Apply(b)
	return nil
}

// Layout returns the current attribute layout.
func (en *Entity) Layout() *gpu.Layout {
	return en.layout
}

// Release deletes the backend buffer and vertex array.
// The program is left to its cache.
func (en *Entity) Release(b gpu.Backend) {
	b.DeleteBuffer(en.Buffer)
	b.DeleteVertexArray(en.VertexArray)
}
