// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Types is a list of vertex component data types.
// Each backend maps them to its own type enums.
type Types int32

const (
	UndefinedType Types = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32

	TypesN
)

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
}

var typeNames = [...]string{"UndefinedType", "Int8", "Uint8", "Int16", "Uint16", "Int32", "Uint32", "Float32"}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

func (tp Types) String() string {
	if tp >= 0 && tp < TypesN {
		return typeNames[tp]
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// BufferTargets are the binding points for buffers.
type BufferTargets int32

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer BufferTargets = iota

	// ElementArrayBuffer holds vertex indexes.
	ElementArrayBuffer
)

// Usages are the expected usage patterns of buffer data,
// given as a hint when uploading.
type Usages int32

const (
	// StaticDraw data is set once and drawn many times.
	StaticDraw Usages = iota

	// DynamicDraw data is set repeatedly and drawn many times.
	DynamicDraw

	// StreamDraw data is set once and drawn a few times.
	StreamDraw
)

// DrawModes are the primitive types for draw calls.
type DrawModes int32

const (
	// Triangles draws a triangle list: every 3 vertices form a triangle.
	Triangles DrawModes = iota

	// TriangleStrip draws a strip of connected triangles.
	TriangleStrip

	// Lines draws a line list.
	Lines

	// Points draws one point per vertex.
	Points
)

// ShaderTypes are the kinds of shader stages in a [Program].
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// Ext returns the file name extension used for sources of this
// shader type in the [ShaderSources] table.
func (st ShaderTypes) Ext() string {
	if st == FragmentShader {
		return ".frag.glsl"
	}
	return ".vert.glsl"
}

func (st ShaderTypes) String() string {
	if st == FragmentShader {
		return "FragmentShader"
	}
	return "VertexShader"
}
