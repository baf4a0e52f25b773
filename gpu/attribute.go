// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"math"
)

// VertexAttribute describes one interleaved field of a vertex:
// Count components of the given Type, each ItemSize bytes wide.
// It is immutable once constructed with [NewVertexAttribute].
//
// Attribute lists are given as []*VertexAttribute, where a nil
// entry is a skipped slot: it takes an attribute index but no
// bytes in the vertex record and no pointer binding.
type VertexAttribute struct {
	count    uint32
	typ      Types
	itemSize uint32
}

// NewVertexAttribute returns a new attribute of count components of
// type typ, each itemSize bytes.
func NewVertexAttribute(count uint32, typ Types, itemSize uint32) *VertexAttribute {
	return &VertexAttribute{count: count, typ: typ, itemSize: itemSize}
}

// Commonly used attributes.
var (
	// Float32Attribute is a single float32.
	Float32Attribute = NewVertexAttribute(1, Float32, 4)

	// Float32Vector2 is a vec2 of float32, e.g., texture coordinates.
	Float32Vector2 = NewVertexAttribute(2, Float32, 4)

	// Float32Vector3 is a vec3 of float32, e.g., position, normal or color.
	Float32Vector3 = NewVertexAttribute(3, Float32, 4)

	// Float32Vector4 is a vec4 of float32.
	Float32Vector4 = NewVertexAttribute(4, Float32, 4)
)

// Count returns the number of components.
func (va *VertexAttribute) Count() uint32 { return va.count }

// Type returns the component type.
func (va *VertexAttribute) Type() Types { return va.typ }

// ItemSize returns the size of one component in bytes.
func (va *VertexAttribute) ItemSize() uint32 { return va.itemSize }

// Size returns the number of bytes the attribute takes in the
// vertex record: Count * ItemSize.
func (va *VertexAttribute) Size() (int32, error) {
	return toInt32(uint64(va.count) * uint64(va.itemSize))
}

func (va *VertexAttribute) String() string {
	return fmt.Sprintf("%d x %s (%d bytes)", va.count, va.typ, uint64(va.count)*uint64(va.itemSize))
}

// AttributeBinding is one enabled vertex attribute pointer,
// as computed by [NewLayout].
type AttributeBinding struct {

	// Index is the attribute slot, which is its position in the
	// attribute list, counting skipped slots.
	Index uint32

	// Count is the number of components.
	Count int32

	// Type is the component type.
	Type Types

	// Normalized is whether integer data is normalized to [0, 1] or [-1, 1].
	Normalized bool

	// Stride is the byte distance between consecutive vertex records.
	Stride int32

	// Offset is the byte position of this field within a vertex record.
	Offset int32
}

// Layout is the interleaved buffer layout of an attribute list.
type Layout struct {

	// Stride is the byte size of one vertex record.
	Stride int32

	// Divisor is the number of floats per vertex record;
	// see [Divisor].
	Divisor int

	// Bindings are the present attributes in declaration order.
	Bindings []AttributeBinding
}

// Stride returns the byte size of one vertex record for the given
// attribute list: the sum of Count * ItemSize over present attributes.
func Stride(attrs []*VertexAttribute) (int32, error) {
	var stride uint64
	for _, va := range attrs {
		if va == nil {
			continue
		}
		stride += uint64(va.count) * uint64(va.itemSize)
	}
	return toInt32(stride)
}

// Divisor returns the number of components per vertex record for
// the given attribute list: the sum of Count over present attributes.
// It is 1 when that sum is 0, including for a nil or empty list,
// so that it can always be used to turn a flat float count into a
// vertex count.
func Divisor(attrs []*VertexAttribute) int {
	div := 0
	for _, va := range attrs {
		if va == nil {
			continue
		}
		div += int(va.count)
	}
	if div == 0 {
		return 1
	}
	return div
}

// VertexCount returns the number of vertices in nfloats floats of
// flattened vertex data laid out with attrs.
func VertexCount(nfloats int, attrs []*VertexAttribute) (int32, error) {
	return toInt32(uint64(nfloats / Divisor(attrs)))
}

// NewLayout computes the interleaved layout of the given attributes:
// each present attribute is bound at index equal to its slot position,
// at the running byte offset, which then advances by the attribute size.
// Nil slots bind nothing and do not advance the offset.
func NewLayout(attrs []*VertexAttribute) (*Layout, error) {
	stride, err := Stride(attrs)
	if err != nil {
		return nil, fmt.Errorf("gpu.NewLayout: stride: %w", err)
	}
	ly := &Layout{Stride: stride, Divisor: Divisor(attrs)}
	var offset int32
	for i, va := range attrs {
		if va == nil {
			continue
		}
		if uint64(i) > math.MaxUint32 {
			return nil, fmt.Errorf("gpu.NewLayout: attribute index %d: %w", i, ErrOverflow)
		}
		count, err := toInt32(uint64(va.count))
		if err != nil {
			return nil, fmt.Errorf("gpu.NewLayout: attribute %d count: %w", i, err)
		}
		size, err := va.Size()
		if err != nil {
			return nil, fmt.Errorf("gpu.NewLayout: attribute %d size: %w", i, err)
		}
		ly.Bindings = append(ly.Bindings, AttributeBinding{
			Index:  uint32(i),
			Count:  count,
			Type:   va.typ,
			Stride: stride,
			Offset: offset,
		})
		offset += size
	}
	return ly, nil
}

// Apply enables and sets the pointer of every binding on the given
// backend. The target vertex array and array buffer must be bound.
func (ly *Layout) Apply(b Backend) {
	for _, bd := range ly.Bindings {
		b.EnableVertexAttribArray(bd.Index)
		b.VertexAttribPointer(bd.Index, bd.Count, bd.Type, bd.Normalized, bd.Stride, bd.Offset)
	}
}

// toInt32 converts v to int32, returning [ErrOverflow] if it does not fit.
func toInt32(v uint64) (int32, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%d exceeds int32: %w", v, ErrOverflow)
	}
	return int32(v), nil
}
