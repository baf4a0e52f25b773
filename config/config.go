// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a graphics context:
// window or canvas, frame and logging options. It can be read from
// TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/base/logx"
)

// Config is the configuration of a graphics context.
type Config struct {

	// Title is the window title on native builds.
	Title string `toml:"title" yaml:"title"`

	// Width is the window or canvas width in pixels.
	Width int `toml:"width" yaml:"width"`

	// Height is the window or canvas height in pixels.
	Height int `toml:"height" yaml:"height"`

	// VSync is whether buffer swaps wait for the display refresh.
	VSync bool `toml:"vsync" yaml:"vsync"`

	// DepthTest is whether the depth test is enabled.
	DepthTest bool `toml:"depth_test" yaml:"depth_test"`

	// ClearColor is the initial RGBA clear color, with components in [0, 1].
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// ShaderDir is an optional directory of shader sources that
	// override the embedded ones.
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir"`

	// WatchShaders is whether to reload programs when files in
	// ShaderDir change (native only).
	WatchShaders bool `toml:"watch_shaders" yaml:"watch_shaders"`

	// CanvasID is the id of an existing canvas element to draw into
	// on web builds. If empty, a new canvas is added to the page body.
	CanvasID string `toml:"canvas_id" yaml:"canvas_id"`
}

// Default returns the default configuration: a 500x500 "glscene"
// window with vsync and depth test, cleared to white.
func Default() *Config {
	return &Config{
		Title:      "glscene",
		Width:      500,
		Height:     500,
		VSync:      true,
		DepthTest:  true,
		ClearColor: [4]float32{1, 1, 1, 1},
		LogLevel:   "warn",
	}
}

// Validate returns an error describing every invalid field, or nil.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size must be positive, got %dx%d", c.Width, c.Height))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("config: clear_color[%d] = %g is not in [0, 1]", i, v))
		}
	}
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.WatchShaders && c.ShaderDir == "" {
		errs = append(errs, errors.New("config: watch_shaders requires shader_dir"))
	}
	return errors.Join(errs...)
}

// Level returns the log level, which is [logx.UserLevel]
// if LogLevel is not valid.
func (c *Config) Level() slog.Level {
	lv, err := logx.LevelFromString(c.LogLevel)
	if err != nil {
		return logx.UserLevel
	}
	return lv
}
