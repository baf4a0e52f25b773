// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
)

//go:embed shaders
var embedded embed.FS

// ShaderSources is a table of shader source text keyed by file name:
// <program>.vert.glsl and <program>.frag.glsl. Lookups are by exact key.
// It is safe for concurrent use, so that sources can be reloaded from
// a watcher goroutine.
type ShaderSources struct {
	mu      sync.RWMutex
	sources map[string]string
}

// NewShaderSources returns an empty table.
func NewShaderSources() *ShaderSources {
	return &ShaderSources{sources: map[string]string{}}
}

// DefaultShaders returns a table with the shaders embedded in this
// package, in the GLSL dialect of the current build target
// (410 core on native, 300 es on web).
func DefaultShaders() (*ShaderSources, error) {
	sub, err := fs.Sub(embedded, path.Join("shaders", ShaderDialect))
	if err != nil {
		return nil, err
	}
	ss := NewShaderSources()
	return ss, ss.LoadFS(sub)
}

// ShaderKey returns the table key for the given program and shader type.
func ShaderKey(program string, typ ShaderTypes) string {
	return program + typ.Ext()
}

// ProgramName returns the program name of the given table key, and
// false if the key is not a shader source name.
func ProgramName(key string) (string, bool) {
	for _, typ := range []ShaderTypes{VertexShader, FragmentShader} {
		if name, ok := strings.CutSuffix(key, typ.Ext()); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// Set sets the source for the given key.
func (ss *ShaderSources) Set(key, src string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sources[key] = src
}

// Source returns the source for the given key, or an error
// wrapping [ErrShaderNotFound].
func (ss *ShaderSources) Source(key string) (string, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	src, ok := ss.sources[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrShaderNotFound, key)
	}
	return src, nil
}

// Program returns the vertex and fragment sources of the named program.
func (ss *ShaderSources) Program(name string) (vertex, fragment string, err error) {
	vertex, err = ss.Source(ShaderKey(name, VertexShader))
	if err != nil {
		return
	}
	fragment, err = ss.Source(ShaderKey(name, FragmentShader))
	return
}

// Programs returns the sorted names of all programs that have
// at least one source in the table.
func (ss *ShaderSources) Programs() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	var names []string
	for key := range ss.sources {
		if name, ok := ProgramName(key); ok && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// LoadFS adds all shader sources in the top directory of fsys to the
// table, replacing existing entries with the same key.
func (ss *ShaderSources) LoadFS(fsys fs.FS) error {
	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		if _, ok := ProgramName(ent.Name()); !ok {
			continue
		}
		b, err := fs.ReadFile(fsys, ent.Name())
		if err != nil {
			return err
		}
		ss.Set(ent.Name(), string(b))
		slog.Debug("gpu: loaded shader source", "key", ent.Name(), "bytes", len(b))
	}
	return nil
}

// LoadDir adds all shader sources in the given directory to the table,
// overriding embedded sources with the same key.
func (ss *ShaderSources) LoadDir(dir string) error {
	return ss.LoadFS(os.DirFS(dir))
}
