// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// Matrix3 is a row-major 3x3 matrix: m[row][col].
type Matrix3 [3][3]float32

// Matrix4 is a row-major 4x4 matrix: m[row][col].
type Matrix4 [4][4]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul3 returns the matrix product a * b.
func Mul3(a, b Matrix3) Matrix3 {
	var m Matrix3
	for r := range 3 {
		for c := range 3 {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c]
		}
	}
	return m
}

// Mul4 returns the matrix product a * b.
func Mul4(a, b Matrix4) Matrix4 {
	var m Matrix4
	for r := range 4 {
		for c := range 4 {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return m
}

// Mul returns m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	return Mul3(m, other)
}

// Mul returns m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return Mul4(m, other)
}

// MulVector4 returns the column vector v transformed by m (m * v).
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// RotationMatrix3 returns the rotation for the given yaw (about Z),
// pitch (about Y) and roll (about X) angles in radians,
// composed as Rz(yaw) * Ry(pitch) * Rx(roll).
func RotationMatrix3(yaw, pitch, roll float32) Matrix3 {
	sa, ca := Sincos(yaw)
	sb, cb := Sincos(pitch)
	sg, cg := Sincos(roll)
	rz := Matrix3{
		{ca, -sa, 0},
		{sa, ca, 0},
		{0, 0, 1},
	}
	ry := Matrix3{
		{cb, 0, sb},
		{0, 1, 0},
		{-sb, 0, cb},
	}
	rx := Matrix3{
		{1, 0, 0},
		{0, cg, -sg},
		{0, sg, cg},
	}
	return Mul3(Mul3(rz, ry), rx)
}

// Rotation returns [RotationMatrix3] embedded in a 4x4 transform.
func Rotation(yaw, pitch, roll float32) Matrix4 {
	r := RotationMatrix3(yaw, pitch, roll)
	return Matrix4{
		{r[0][0], r[0][1], r[0][2], 0},
		{r[1][0], r[1][1], r[1][2], 0},
		{r[2][0], r[2][1], r[2][2], 0},
		{0, 0, 0, 1},
	}
}

// RotateVector3 returns the row vector v multiplied by
// [RotationMatrix3] of the given angles.
func RotateVector3(v Vector3, yaw, pitch, roll float32) Vector3 {
	return v.MulMatrix3(RotationMatrix3(yaw, pitch, roll))
}

// Translation returns a transform moving points by (x, y, z).
func Translation(x, y, z float32) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scale returns a transform scaling points by (x, y, z).
func Scale(x, y, z float32) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// GL returns the matrix in the column-major layout
// expected by uniform uploads with transpose = false.
func (m Matrix3) GL() mgl32.Mat3 {
	return mgl32.Mat3FromRows(mgl32.Vec3(m[0]), mgl32.Vec3(m[1]), mgl32.Vec3(m[2]))
}

// GL returns the matrix in the column-major layout
// expected by uniform uploads with transpose = false.
func (m Matrix4) GL() mgl32.Mat4 {
	return mgl32.Mat4FromRows(mgl32.Vec4(m[0]), mgl32.Vec4(m[1]), mgl32.Vec4(m[2]), mgl32.Vec4(m[3]))
}

// ApproxEqual returns whether every element of m is within tol of other.
func (m Matrix3) ApproxEqual(other Matrix3, tol float32) bool {
	return m.GL().ApproxEqualThreshold(other.GL(), tol)
}

// ApproxEqual returns whether every element of m is within tol of other.
func (m Matrix4) ApproxEqual(other Matrix4, tol float32) bool {
	return m.GL().ApproxEqualThreshold(other.GL(), tol)
}
