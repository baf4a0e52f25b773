// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/math32"
)

// cubeWithNormals is a unit cube centered on the origin as a triangle
// list of interleaved position and normal vectors, two triangles per face.
var cubeWithNormals = []math32.Vector3{
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(0.5, -0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(0.5, 0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(0.5, 0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(-0.5, 0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(0, 0, -1),
	math32.Vec3(-0.5, -0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(0.5, -0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(-0.5, 0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(-0.5, -0.5, 0.5), math32.Vec3(0, 0, 1),
	math32.Vec3(-0.5, 0.5, 0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(-0.5, 0.5, -0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(-0.5, -0.5, 0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(-0.5, 0.5, 0.5), math32.Vec3(-1, 0, 0),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(0.5, 0.5, -0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(0.5, -0.5, -0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(0.5, -0.5, -0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(0.5, -0.5, 0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(1, 0, 0),
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(0.5, -0.5, -0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(0.5, -0.5, 0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(0.5, -0.5, 0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(-0.5, -0.5, 0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(-0.5, -0.5, -0.5), math32.Vec3(0, -1, 0),
	math32.Vec3(-0.5, 0.5, -0.5), math32.Vec3(0, 1, 0),
	math32.Vec3(0.5, 0.5, -0.5), math32.Vec3(0, 1, 0),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(0, 1, 0),
	math32.Vec3(0.5, 0.5, 0.5), math32.Vec3(0, 1, 0),
	math32.Vec3(-0.5, 0.5, 0.5), math32.Vec3(0, 1, 0),
	math32.Vec3(-0.5, 0.5, -0.5), math32.Vec3(0, 1, 0),
}

// CubeWithNormals returns a new copy of the unit cube vertices:
// 36 vertices of interleaved position and face normal, for the
// attribute layout [position, nil, normal].
func CubeWithNormals() []math32.Vector3 {
	vs := make([]math32.Vector3, len(cubeWithNormals))
	copy(vs, cubeWithNormals)
	return vs
}

// CubeAttributes returns the attribute layout of [CubeWithNormals],
// which binds position at slot 0 and normal at slot 2.
func CubeAttributes() []*gpu.VertexAttribute {
	return []*gpu.VertexAttribute{gpu.Float32Vector3, nil, gpu.Float32Vector3}
}
