// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package app

import (
	"context"
	"log/slog"

	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
	"cogentcore.org/glscene/gpu/webgl"
)

func newBackend(cfg *config.Config) (gpu.Backend, error) {
	return webgl.NewContext(cfg)
}

// watchShaders is not supported on the web.
func watchShaders(ctx context.Context, a *App) error {
	slog.Warn("app: watch_shaders is not supported on the web")
	return nil
}
