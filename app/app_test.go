// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glscene/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestConfigFromFlagsDefault(t *testing.T) {
	cfg, err := ConfigFromFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigFromFlagsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(fn, []byte("title = \"flags\"\nlog_level = \"error\"\n"), 0666))
	cfg, err := ConfigFromFlags(newFlagSet(), []string{"-config", fn, "-v"})
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.Title)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromFlagsCanvas(t *testing.T) {
	cfg, err := ConfigFromFlags(newFlagSet(), []string{"-canvas", "app"})
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.CanvasID)
}

func TestConfigFromFlagsErrors(t *testing.T) {
	_, err := ConfigFromFlags(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
	_, err = ConfigFromFlags(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
