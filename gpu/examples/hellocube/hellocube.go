// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellocube draws a phong-lit rotating cube and a small cube
// standing in for the light, orbiting in place.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

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

const rotationStep = 0.002

var (
	lightPosition  = math32.Vec3(0.5, 0.5, -0.8)
	lightColor     = math32.Vec3(0.5, 0.5, 1)
	objectColor    = math32.Vec3(1, 0.5, 0.5)
	cameraPosition = math32.Vec3(0, 0, -1)
)

func main() {
	cfg, err := app.ConfigFromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("hellocube", "err", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		slog.Error("hellocube", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Release()
	b := a.Backend

	phong, err := a.Program("phong_light_object")
	if err != nil {
		return err
	}
	for _, u := range []struct {
		name string
		v    math32.Vector3
	}{
		{"u_color", objectColor},
		{"u_light_color", lightColor},
		{"u_light_position", lightPosition},
		{"u_camera_position", cameraPosition},
	} {
		if err := phong.SetVector3(u.name, u.v); err != nil {
			return err
		}
	}
	flat, err := a.Program("uniform_color")
	if err != nil {
		return err
	}
	if err := flat.SetVector3("u_color", lightColor); err != nil {
		return err
	}

	object, err := scene.NewEntity(b, scene.CubeWithNormals(), phong, scene.CubeAttributes())
	if err != nil {
		return err
	}
	light, err := scene.NewEntity(b, scene.CubeWithNormals(), flat, scene.CubeAttributes())
	if err != nil {
		return err
	}
	sc := scene.New(object, light)
	defer sc.Release(b)

	b.SetClearColor(1, 1, 1, 1)

	lightModel := math32.Translation(lightPosition.X, lightPosition.Y, lightPosition.Z).Mul(math32.Scale(0.05, 0.05, 0.05))
	var rotation float32
	lightRotation := float32(42.42)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.Run(ctx, func(fi gpu.FrameInfo) error {
		if err := sc.Draw(b); err != nil {
			return err
		}
		if err := phong.SetMatrix4("u_model", math32.Rotation(rotation, rotation, rotation)); err != nil {
			return err
		}
		lr := math32.Rotation(lightRotation, lightRotation, lightRotation)
		if err := flat.SetMatrix4("u_model", lightModel.Mul(lr)); err != nil {
			return err
		}
		rotation += rotationStep
		lightRotation += rotationStep
		return nil
	})
}
