// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShaders(t *testing.T) {
	ss, err := DefaultShaders()
	require.NoError(t, err)
	assert.Equal(t, []string{"basic", "phong_light_object", "uniform_color"}, ss.Programs())

	for _, name := range ss.Programs() {
		vert, frag, err := ss.Program(name)
		require.NoError(t, err, name)
		assert.Contains(t, vert, "#version")
		assert.Contains(t, frag, "#version")
	}
	frag, err := ss.Source("phong_light_object.frag.glsl")
	require.NoError(t, err)
	for _, u := range []string{"u_color", "u_light_color", "u_light_position", "u_camera_position"} {
		assert.Contains(t, frag, u)
	}
}

func TestShaderNotFound(t *testing.T) {
	ss, err := DefaultShaders()
	require.NoError(t, err)
	_, err = ss.Source("basic.vert")
	assert.ErrorIs(t, err, ErrShaderNotFound)
	_, _, err = ss.Program("missing")
	assert.ErrorIs(t, err, ErrShaderNotFound)
}

func TestProgramName(t *testing.T) {
	name, ok := ProgramName("basic.vert.glsl")
	assert.True(t, ok)
	assert.Equal(t, "basic", name)
	name, ok = ProgramName("phong_light_object.frag.glsl")
	assert.True(t, ok)
	assert.Equal(t, "phong_light_object", name)
	_, ok = ProgramName(".frag.glsl")
	assert.False(t, ok)
	_, ok = ProgramName("README.md")
	assert.False(t, ok)
	assert.Equal(t, "basic.frag.glsl", ShaderKey("basic", FragmentShader))
}

func TestLoadFS(t *testing.T) {
	ss := NewShaderSources()
	err := ss.LoadFS(fstest.MapFS{
		"a.vert.glsl":     {Data: []byte("va")},
		"a.frag.glsl":     {Data: []byte("fa")},
		"notes.txt":       {Data: []byte("skip")},
		"sub/b.vert.glsl": {Data: []byte("vb")},
		"only.vert.glsl":  {Data: []byte("vo")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "only"}, ss.Programs())
	vert, frag, err := ss.Program("a")
	require.NoError(t, err)
	assert.Equal(t, "va", vert)
	assert.Equal(t, "fa", frag)
	_, _, err = ss.Program("only")
	assert.ErrorIs(t, err, ErrShaderNotFound)
}

func TestLoadDirOverrides(t *testing.T) {
	ss, err := DefaultShaders()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basic.frag.glsl"), []byte("override"), 0666))
	require.NoError(t, ss.LoadDir(dir))
	src, err := ss.Source("basic.frag.glsl")
	require.NoError(t, err)
	assert.Equal(t, "override", src)
	src, err = ss.Source("basic.vert.glsl")
	require.NoError(t, err)
	assert.Contains(t, src, "a_position")
}
