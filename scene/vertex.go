// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/math32"
)

// ErrMixedVertices is returned by [Interleave] when vertices do not
// all have the same optional channels.
var ErrMixedVertices = errors.New("scene: vertices have different channels")

// Vertex is a position with optional color and normal channels.
// Interleaved, they are bound at attribute slots 0, 1 and 2.
type Vertex struct {
	Position math32.Vector3
	Color    *math32.Vector3
	Normal   *math32.Vector3
}

// Interleave returns the vectors of the given vertices in
// [position, color, normal] order per vertex, skipping absent channels,
// and the matching attribute list, which has nil slots for absent
// channels so that slot indexes stay fixed. Trailing absent
// channels are left out of the list. All vertices must have
// the same channels.
func Interleave(vs []Vertex) ([]math32.Vector3, []*gpu.VertexAttribute, error) {
	if len(vs) == 0 {
		return nil, nil, nil
	}
	hasColor, hasNormal := vs[0].Color != nil, vs[0].Normal != nil
	attrs := []*gpu.VertexAttribute{gpu.Float32Vector3, nil, nil}
	per := 1
	if hasColor {
		attrs[1] = gpu.Float32Vector3
		per++
	}
	if hasNormal {
		attrs[2] = gpu.Float32Vector3
		per++
	}
	for attrs[len(attrs)-1] == nil {
		attrs = attrs[:len(attrs)-1]
	}
	out := make([]math32.Vector3, 0, len(vs)*per)
	for i, v := range vs {
		if (v.Color != nil) != hasColor || (v.Normal != nil) != hasNormal {
			return nil, nil, fmt.Errorf("%w: vertex %d", ErrMixedVertices, i)
		}
		out = append(out, v.Position)
		if hasColor {
			out = append(out, *v.Color)
		}
		if hasNormal {
			out = append(out, *v.Normal)
		}
	}
	return out, attrs, nil
}
