// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app wires a [gpu.Backend] for the current build target
// together with the embedded shaders and a [gpu.ProgramCache], as
// configured by a [config.Config] and command line flags.
//
// On native builds, the program must lock the main thread in an init
// function and call [New] and [App.Run] from main.
package app

import (
	"context"
	"flag"
	"log/slog"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/base/logx"
	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
)

// App is a graphics context with its shader programs.
type App struct {

	// Config is the configuration the app was created with.
	Config *config.Config

	// Backend is the graphics context.
	Backend gpu.Backend

	// Shaders are the shader sources programs are compiled from.
	Shaders *gpu.ShaderSources

	// Programs is the cache of compiled programs.
	Programs *gpu.ProgramCache
}

// ConfigFromFlags parses the standard flags from args on fs:
// -config to read a TOML or YAML config file, -canvas to set the
// canvas element id on web, and -v, -vv and -q to override the
// configured log level. Without -config, the result is based on
// [config.Default].
func ConfigFromFlags(fs *flag.FlagSet, args []string) (*config.Config, error) {
	file := fs.String("config", "", "TOML or YAML config file")
	vv := fs.Bool("vv", false, "log debug messages")
	v := fs.Bool("v", false, "log info messages")
	q := fs.Bool("q", false, "log only errors")
	canvas := fs.String("canvas", "", "id of the canvas element to draw into on web")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := config.Default()
	if *file != "" {
		var err error
		if cfg, err = config.Open(*file); err != nil {
			return nil, err
		}
	}
	if *vv || *v || *q {
		cfg.LogLevel = logx.LevelFromFlags(*vv, *v, *q).String()
	}
	if *canvas != "" {
		cfg.CanvasID = *canvas
	}
	return cfg, nil
}

// New sets the default logger at the configured level, creates the
// backend and loads the shader sources, from cfg.ShaderDir on top of
// the embedded ones if set. cfg is [config.Default] if nil.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logx.UserLevel = cfg.Level()
	logx.SetDefaultLogger()

	ss := errors.Must1(gpu.DefaultShaders())
	if cfg.ShaderDir != "" {
		if err := ss.LoadDir(cfg.ShaderDir); err != nil {
			return nil, err
		}
	}
	b, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Backend:  b,
		Shaders:  ss,
		Programs: gpu.NewProgramCache(b, ss),
	}, nil
}

// Program returns the named program, compiling it on first use.
func (a *App) Program(name string) (*gpu.Program, error) {
	return a.Programs.Get(name)
}

// Run runs frames on the backend until ctx is done, the context
// should close or frame returns an error (see [gpu.Backend.Run]).
// If configured, programs are reloaded before a frame when their
// sources change on disk.
func (a *App) Run(ctx context.Context, frame gpu.FrameFunc) error {
	if a.Config.WatchShaders {
		if err := watchShaders(ctx, a); err != nil {
			return err
		}
	}
	return a.Backend.Run(ctx, func(fi gpu.FrameInfo) error {
		if err := a.Programs.ApplyPending(); err != nil {
			slog.Warn("app: keeping previous programs", "err", err)
		}
		return frame(fi)
	})
}

// Release releases the programs and the backend.
func (a *App) Release() {
	a.Programs.Release()
	a.Backend.Release()
}
