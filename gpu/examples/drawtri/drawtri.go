// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawtri draws a triangle with a color per vertex.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"cogentcore.org/glscene/app"
	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/math32"
	"cogentcore.org/glscene/scene"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	cfg, err := app.ConfigFromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("drawtri", "err", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		slog.Error("drawtri", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	cfg.Title = "Draw Triangle"
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Release()
	b := a.Backend

	basic, err := a.Program("basic")
	if err != nil {
		return err
	}
	red, green, blue := math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)
	vs, attrs, err := scene.Interleave([]scene.Vertex{
		{Position: math32.Vec3(-0.7, -0.7, 0), Color: &red},
		{Position: math32.Vec3(0.7, -0.7, 0), Color: &green},
		{Position: math32.Vec3(0, 0.7, 0), Color: &blue},
	})
	if err != nil {
		return err
	}
	tri, err := scene.NewEntity(b, vs, basic, attrs)
	if err != nil {
		return err
	}
	sc := scene.New(tri)
	defer sc.Release(b)

	frameCount := 0
	var last time.Duration

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.Run(ctx, func(fi gpu.FrameInfo) error {
		if err := sc.Draw(b); err != nil {
			return err
		}
		frameCount++
		if dur := fi.Time - last; dur > 10*time.Second {
			fmt.Printf("fps: %.0f\n", float64(frameCount)/dur.Seconds())
			frameCount = 0
			last = fi.Time
		}
		return nil
	})
}
