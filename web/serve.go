// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web builds the examples for the browser and serves them
// with a host page that loads wasm_exec.js, mounts the canvas the
// program draws into and runs its wasm binary.
package web

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Handler returns a handler serving the index page for d at / and
// the files in dir everywhere else. If wasmExec is not empty, it is
// the wasm_exec.js file served at /wasm_exec.js.
func Handler(dir, wasmExec string, d *IndexData) (http.Handler, error) {
	index, err := MakeIndex(d)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(index)
	}
	mux.HandleFunc("/{$}", serveIndex)
	mux.HandleFunc("/index.html", serveIndex)
	if wasmExec != "" {
		mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, wasmExec)
		})
	}
	return mux, nil
}

// WasmExec returns the path of the wasm_exec.js file of the Go
// installation at goroot, or "" if there is none.
func WasmExec(goroot string) string {
	for _, sub := range []string{"lib", "misc"} {
		fn := filepath.Join(goroot, sub, "wasm", "wasm_exec.js")
		if _, err := os.Stat(fn); err == nil {
			return fn
		}
	}
	return ""
}

// Serve serves h at the given address until the server fails.
func Serve(addr string, h http.Handler) error {
	slog.Info("web: serving", "addr", addr)
	return http.ListenAndServe(addr, h)
}
