// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/glscene/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector3(t *testing.T, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func tolAssertEqualMatrix4(t *testing.T, mt, ma Matrix4, tol float32) {
	t.Helper()
	for r := range 4 {
		tolassert.EqualTolSlice(t, mt[r][:], ma[r][:], tol)
	}
}

func randomMatrix4(rnd *rand.Rand) Matrix4 {
	var m Matrix4
	for r := range 4 {
		for c := range 4 {
			m[r][c] = rnd.Float32()*4 - 2
		}
	}
	return m
}

func TestMul4Associative(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		a, b, c := randomMatrix4(rnd), randomMatrix4(rnd), randomMatrix4(rnd)
		tolAssertEqualMatrix4(t, Mul4(Mul4(a, b), c), Mul4(a, Mul4(b, c)), 1e-4)
	}
}

func TestMul4Identity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	a := randomMatrix4(rnd)
	assert.Equal(t, a, Identity4().Mul(a))
	assert.Equal(t, a, a.Mul(Identity4()))
}

func TestMulMatchesMathGL(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	a, b := randomMatrix4(rnd), randomMatrix4(rnd)
	assert.True(t, Mul4(a, b).GL().ApproxEqualThreshold(a.GL().Mul4(b.GL()), 1e-4))

	m3a := RotationMatrix3(0.3, -1.2, 2)
	m3b := RotationMatrix3(1, 0.5, -0.25)
	assert.True(t, Mul3(m3a, m3b).GL().ApproxEqualThreshold(m3a.GL().Mul3(m3b.GL()), 1e-5))
}

func TestTranslation(t *testing.T) {
	tr := Translation(0.5, -2, 3)
	inv := Translation(-0.5, 2, -3)
	assert.True(t, tr.Mul(inv).ApproxEqual(Identity4(), standardTol))
	assert.True(t, inv.Mul(tr).ApproxEqual(Identity4(), standardTol))

	assert.Equal(t, Vec4(1.5, -1, 4, 1), tr.MulVector4(Vec4(1, 1, 1, 1)))
	// directions are not translated
	assert.Equal(t, Vec4(1, 1, 1, 0), tr.MulVector4(Vec4(1, 1, 1, 0)))
	assert.Equal(t, mgl32.Translate3D(0.5, -2, 3), tr.GL())
}

func TestScale(t *testing.T) {
	assert.Equal(t, Identity4(), Scale(1, 1, 1))
	assert.Equal(t, Vec4(2, 3, 4, 1), Scale(2, 3, 4).MulVector4(Vec4(1, 1, 1, 1)))
	assert.Equal(t, mgl32.Scale3D(2, 3, 4), Scale(2, 3, 4).GL())

	// translate after scale
	model := Translation(1, 0, 0).Mul(Scale(0.5, 0.5, 0.5))
	assert.Equal(t, Vec4(2, 1, 1, 1), model.MulVector4(Vec4(2, 2, 2, 1)))
}

func TestRotation(t *testing.T) {
	assert.True(t, Rotation(0, 0, 0).ApproxEqual(Identity4(), standardTol))
	assert.True(t, RotationMatrix3(0, 0, 0).ApproxEqual(Identity3(), standardTol))

	yaw, pitch, roll := float32(0.7), float32(-0.3), float32(1.9)
	want := mgl32.Rotate3DZ(yaw).Mul3(mgl32.Rotate3DY(pitch)).Mul3(mgl32.Rotate3DX(roll))
	assert.True(t, RotationMatrix3(yaw, pitch, roll).GL().ApproxEqualThreshold(want, standardTol))

	r4 := Rotation(yaw, pitch, roll)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, r4[3])
	assert.Equal(t, float32(0), r4[0][3])
}

func TestRotateVector3(t *testing.T) {
	vx := Vec3(1, 0, 0)
	// row vector times the matrix turns the opposite way of M * v
	tolAssertEqualVector3(t, Vec3(0, -1, 0), RotateVector3(vx, Pi/2, 0, 0))
	tolAssertEqualVector3(t, vx, RotateVector3(vx, 0, 0, DegToRad(90)))
	tolAssertEqualVector3(t, Vec3(0, 0, 1), RotateVector3(vx, 0, Pi/2, 0))
	tolAssertEqualVector3(t, vx, RotateVector3(vx, 2*Pi, 0, 0))
}

func TestVector4MulMatrix4(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 8))
	m := randomMatrix4(rnd)
	v := Vec4(1, 2, 3, 1)
	// v * m == transpose(m) * v
	var mt Matrix4
	for r := range 4 {
		for c := range 4 {
			mt[r][c] = m[c][r]
		}
	}
	got := v.MulMatrix4(m)
	want := mt.MulVector4(v)
	tolassert.EqualTolSlice(t, []float32{want.X, want.Y, want.Z, want.W}, []float32{got.X, got.Y, got.Z, got.W}, standardTol)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, Flatten([]Vector3{Vec3(1, 2, 3), Vec3(4, 5, 6)}))
	assert.Empty(t, Flatten(nil))
	assert.Equal(t, [3]float32{-1, -2, -3}, Vec3(1, 2, 3).Negate().Array())
	assert.Equal(t, Vec4(1, 2, 3, 1), Vector4FromVector3(Vec3(1, 2, 3), 1))
}

func TestDegToRad(t *testing.T) {
	tolassert.EqualTol(t, Pi/2, DegToRad(90), standardTol)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-4)
	assert.Equal(t, float32(2), Abs(-2))
}
