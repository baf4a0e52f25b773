// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package app

import (
	"context"

	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/gpu/glgpu"
)

func newBackend(cfg *config.Config) (gpu.Backend, error) {
	return glgpu.NewContext(cfg)
}

// watchShaders marks programs dirty when their sources change in
// the configured shader directory.
func watchShaders(ctx context.Context, a *App) error {
	return a.Shaders.Watch(ctx, a.Config.ShaderDir, a.Programs.MarkDirty)
}
