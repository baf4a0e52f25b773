// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 500, c.Width)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, c.ClearColor)
	assert.Equal(t, slog.LevelWarn, c.Level())
}

func TestOpenTOML(t *testing.T) {
	fn := writeFile(t, "glscene.toml", `
title = "cube"
width = 800
clear_color = [0.0, 0.0, 0.2, 1.0]
log_level = "debug"
`)
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "cube", c.Title)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 500, c.Height)
	assert.True(t, c.VSync)
	assert.Equal(t, [4]float32{0, 0, 0.2, 1}, c.ClearColor)
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestOpenYAML(t *testing.T) {
	fn := writeFile(t, "glscene.yaml", `
height: 300
vsync: false
shader_dir: shaders
watch_shaders: true
`)
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Height)
	assert.False(t, c.VSync)
	assert.Equal(t, "shaders", c.ShaderDir)
	assert.True(t, c.WatchShaders)
	assert.Equal(t, "glscene", c.Title)
}

func TestOpenEmpty(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yml"} {
		c, err := Open(writeFile(t, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, Default(), c)
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "glscene.json", "{}"))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(writeFile(t, "typo.toml", "widht = 10\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "typo.yaml", "widht: 10\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "bad.toml", "width = -1\nlog_level = \"loud\"\n"))
	assert.ErrorContains(t, err, "size must be positive")
	assert.ErrorContains(t, err, "loud")
}

func TestValidate(t *testing.T) {
	c := Default()
	c.ClearColor[2] = 1.5
	c.WatchShaders = true
	err := c.Validate()
	assert.ErrorContains(t, err, "clear_color[2]")
	assert.ErrorContains(t, err, "watch_shaders requires shader_dir")
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		c := Default()
		c.Title = "saved"
		c.ClearColor = [4]float32{0.5, 0.25, 0, 1}
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, c.Save(fn))
		got, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, c, got, name)
	}
}
