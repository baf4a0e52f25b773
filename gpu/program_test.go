// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package gpu_test

import (
	"errors"
	"testing"

	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/gpu/gputest"
	"cogentcore.org/glscene/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*gputest.Backend, *gpu.ProgramCache) {
	b := gputest.NewBackend()
	ss, err := gpu.DefaultShaders()
	require.NoError(t, err)
	return b, gpu.NewProgramCache(b, ss)
}

func TestProgramUniforms(t *testing.T) {
	_, pc := newCache(t)
	pr, err := pc.Get("phong_light_object")
	require.NoError(t, err)
	assert.Equal(t, []string{"u_camera_position", "u_color", "u_light_color", "u_light_position", "u_model"}, pr.Uniforms())
	assert.True(t, pr.HasUniform("u_model"))
	assert.False(t, pr.HasUniform("u_view"))

	pr, err = pc.Get("uniform_color")
	require.NoError(t, err)
	assert.Equal(t, []string{"u_color", "u_model"}, pr.Uniforms())
}

func TestProgramCacheShares(t *testing.T) {
	b, pc := newCache(t)
	p1, err := pc.Get("basic")
	require.NoError(t, err)
	p2, err := pc.Get("basic")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
	assert.Len(t, b.CallsTo("CompileProgram"), 1)
	assert.True(t, pc.Has("basic"))
	assert.False(t, pc.Has("uniform_color"))

	_, err = pc.Get("missing")
	assert.ErrorIs(t, err, gpu.ErrShaderNotFound)
}

func TestSetUniform(t *testing.T) {
	b, pc := newCache(t)
	pr, err := pc.Get("uniform_color")
	require.NoError(t, err)

	require.NoError(t, pr.SetVector3("u_color", math32.Vec3(1, 0.5, 0.25)))
	assert.Equal(t, pr.Handle(), b.Current)
	v, ok := b.Uniform(pr.Handle(), "u_color")
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, v)

	require.NoError(t, gpu.SetUniform(pr, "u_model", math32.Translation(1, 2, 3)))
	v, ok = b.Uniform(pr.Handle(), "u_model")
	require.True(t, ok)
	m := v.([16]float32)
	// column-major: translation is in elements 12..14
	assert.Equal(t, []float32{1, 2, 3, 1}, m[12:16])

	err = pr.SetMatrix3("u_normal", math32.Identity3())
	assert.ErrorIs(t, err, gpu.ErrUniformNotFound)
	assert.ErrorContains(t, err, "u_normal")
}

func TestReloadRestoresUniforms(t *testing.T) {
	b, pc := newCache(t)
	pr, err := pc.Get("uniform_color")
	require.NoError(t, err)
	require.NoError(t, pr.SetVector3("u_color", math32.Vec3(0, 1, 0)))
	require.NoError(t, pr.SetMatrix4("u_model", math32.Scale(2, 2, 2)))
	old := pr.Handle()

	require.NoError(t, pc.Reload("uniform_color"))
	assert.NotEqual(t, old, pr.Handle())
	assert.Contains(t, b.Deleted, old)

	v, ok := b.Uniform(pr.Handle(), "u_color")
	require.True(t, ok)
	assert.Equal(t, [3]float32{0, 1, 0}, v)
	_, ok = b.Uniform(pr.Handle(), "u_model")
	assert.True(t, ok)
}

func TestReloadFailureKeepsProgram(t *testing.T) {
	b, pc := newCache(t)
	pr, err := pc.Get("basic")
	require.NoError(t, err)
	old := pr.Handle()

	b.CompileErr = gpu.ErrCompile
	err = pc.Reload("basic")
	assert.ErrorIs(t, err, gpu.ErrCompile)
	assert.Equal(t, old, pr.Handle())
	assert.NotContains(t, b.Deleted, old)

	// not compiled yet
	assert.NoError(t, pc.Reload("phong_light_object"))
	assert.False(t, pc.Has("phong_light_object"))
}

func TestReloadDropsRemovedUniform(t *testing.T) {
	_, pc := newCache(t)
	pr, err := pc.Get("uniform_color")
	require.NoError(t, err)
	require.NoError(t, pr.SetVector3("u_color", math32.Vec3(1, 1, 1)))

	pc.Sources().Set("uniform_color.frag.glsl", "out vec4 frag_color;\nvoid main() { frag_color = vec4(1.0); }\n")
	require.NoError(t, pc.Reload("uniform_color"))
	assert.False(t, pr.HasUniform("u_color"))
	assert.ErrorIs(t, pr.SetVector3("u_color", math32.Vec3(1, 1, 1)), gpu.ErrUniformNotFound)
}

func TestApplyPending(t *testing.T) {
	b, pc := newCache(t)
	_, err := pc.Get("basic")
	require.NoError(t, err)
	_, err = pc.Get("uniform_color")
	require.NoError(t, err)
	b.Reset()

	done := make(chan struct{})
	go func() {
		pc.MarkDirty("uniform_color")
		pc.MarkDirty("basic")
		pc.MarkDirty("basic")
		close(done)
	}()
	<-done
	require.NoError(t, pc.ApplyPending())
	compiles := b.CallsTo("CompileProgram")
	require.Len(t, compiles, 2)
	assert.Equal(t, "basic", compiles[0].Args[0])
	assert.Equal(t, "uniform_color", compiles[1].Args[0])

	b.Reset()
	require.NoError(t, pc.ApplyPending())
	assert.Empty(t, b.Calls)

	pc.MarkDirty("basic")
	b.CompileErr = errors.New("syntax error")
	err = pc.ApplyPending()
	assert.ErrorContains(t, err, "basic")
}

func TestCacheRelease(t *testing.T) {
	b, pc := newCache(t)
	p1, err := pc.Get("basic")
	require.NoError(t, err)
	p2, err := pc.Get("uniform_color")
	require.NoError(t, err)
	pc.Release()
	assert.ElementsMatch(t, []gpu.Handle{p1.Handle(), p2.Handle()}, b.Deleted)
	assert.False(t, pc.Has("basic"))
}

func TestRunStops(t *testing.T) {
	b := gputest.NewBackend()
	b.MaxFrames = 3
	var frames []uint64
	err := b.Run(t.Context(), func(fi gpu.FrameInfo) error {
		frames = append(frames, fi.Index)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2}, frames)

	b = gputest.NewBackend()
	err = b.Run(t.Context(), func(fi gpu.FrameInfo) error {
		if fi.Index == 1 {
			return gpu.ErrStop
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Frames)

	bad := errors.New("bad frame")
	b = gputest.NewBackend()
	err = b.Run(t.Context(), func(fi gpu.FrameInfo) error { return bad })
	assert.ErrorIs(t, err, bad)
}

func TestLayoutApply(t *testing.T) {
	b := gputest.NewBackend()
	ly, err := gpu.NewLayout([]*gpu.VertexAttribute{gpu.Float32Vector3, nil, gpu.Float32Vector3})
	require.NoError(t, err)
	ly.Apply(b)
	assert.Equal(t, []string{"EnableVertexAttribArray", "VertexAttribPointer", "EnableVertexAttribArray", "VertexAttribPointer"}, b.Methods())
	ptrs := b.CallsTo("VertexAttribPointer")
	assert.Equal(t, []any{uint32(0), int32(3), gpu.Float32, false, int32(24), int32(0)}, ptrs[0].Args)
	assert.Equal(t, []any{uint32(2), int32(3), gpu.Float32, false, int32(24), int32(12)}, ptrs[1].Args)
}
