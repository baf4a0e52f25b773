// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glserve builds an example for the browser and serves it
// with a host page. For example:
//
//	glserve -pkg ./gpu/examples/hellocube -addr :8080
//
// The -config file sets the page title, canvas id and canvas size,
// and -canvas overrides its canvas id.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/base/logx"
	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/web"
)

func main() {
	pkg := flag.String("pkg", "", "main package to build for web; if empty, -dir must already hold the wasm binary")
	dir := flag.String("dir", "bin/web", "directory the wasm binary is built into and served from")
	wasm := flag.String("wasm", "", "name of the wasm binary (default: last element of -pkg plus .wasm)")
	addr := flag.String("addr", ":8080", "address to serve on")
	file := flag.String("config", "", "TOML or YAML config file of the example")
	canvas := flag.String("canvas", "", "id of the canvas element on the page")
	flag.Parse()
	logx.UserLevel = slog.LevelInfo
	logx.SetDefaultLogger()

	cfg := config.Default()
	if *file != "" {
		var err error
		if cfg, err = config.Open(*file); errors.Log(err) != nil {
			os.Exit(1)
		}
	}
	if *canvas != "" {
		cfg.CanvasID = *canvas
	}

	name := *wasm
	if name == "" {
		if *pkg == "" {
			slog.Error("glserve: one of -pkg or -wasm is required")
			os.Exit(2)
		}
		name = path.Base(filepath.ToSlash(*pkg)) + ".wasm"
	}
	ctx := context.Background()
	if *pkg != "" {
		if err := os.MkdirAll(*dir, 0755); errors.Log(err) != nil {
			os.Exit(1)
		}
		if err := web.Build(ctx, *pkg, filepath.Join(*dir, name)); errors.Log(err) != nil {
			os.Exit(1)
		}
	}
	wasmExec := ""
	if goroot, err := web.GoRoot(ctx); errors.Log(err) == nil {
		wasmExec = web.WasmExec(goroot)
	}
	if wasmExec == "" {
		slog.Warn("glserve: no wasm_exec.js in GOROOT; serving it from -dir")
	}
	h, err := web.Handler(*dir, wasmExec, web.NewIndexData(cfg, name))
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	errors.Log(web.Serve(*addr, h))
	os.Exit(1)
}
