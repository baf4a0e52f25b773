// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/glscene/base/errors"
)

// ProgramCache compiles each named program once and hands out the
// shared [Program]. Programs are owned by the cache: entities only
// reference them, and [ProgramCache.Release] deletes them all.
type ProgramCache struct {
	backend  Backend
	sources  *ShaderSources
	programs map[string]*Program

	// mu guards pending, which may be marked from another goroutine.
	mu      sync.Mutex
	pending map[string]bool
}

// NewProgramCache returns a new cache compiling programs
// from the given sources on the given backend.
func NewProgramCache(b Backend, sources *ShaderSources) *ProgramCache {
	return &ProgramCache{
		backend:  b,
		sources:  sources,
		programs: map[string]*Program{},
		pending:  map[string]bool{},
	}
}

// Sources returns the shader source table of the cache.
func (pc *ProgramCache) Sources() *ShaderSources {
	return pc.sources
}

// Get returns the named program, compiling it on first use.
func (pc *ProgramCache) Get(name string) (*Program, error) {
	if pr, ok := pc.programs[name]; ok {
		return pr, nil
	}
	pr, err := NewProgram(pc.backend, pc.sources, name)
	if err != nil {
		return nil, errors.Log(err)
	}
	pc.programs[name] = pr
	return pr, nil
}

// Has returns whether the named program has been compiled.
func (pc *ProgramCache) Has(name string) bool {
	_, ok := pc.programs[name]
	return ok
}

// Reload recompiles the named program from the current sources,
// keeping the same [Program] so that references stay valid, and
// restores its uniform values. On failure the previous compiled
// program stays in use. Programs not yet compiled are ignored.
func (pc *ProgramCache) Reload(name string) error {
	pr, ok := pc.programs[name]
	if !ok {
		return nil
	}
	old := pr.handle
	oldUniforms := pr.uniforms
	if err := pr.compile(pc.sources); err != nil {
		pr.handle = old
		pr.uniforms = oldUniforms
		return errors.Log(err)
	}
	pc.backend.DeleteProgram(old)
	pr.restore()
	slog.Info("gpu: reloaded program", "name", name)
	return nil
}

// MarkDirty records that the named program needs reloading on the next
// [ProgramCache.ApplyPending]. It is safe to call from any goroutine.
func (pc *ProgramCache) MarkDirty(name string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.pending[name] = true
}

// ApplyPending reloads all programs marked dirty, in name order.
// It must be called on the render thread, typically once per frame.
func (pc *ProgramCache) ApplyPending() error {
	pc.mu.Lock()
	names := make([]string, 0, len(pc.pending))
	for name := range pc.pending {
		names = append(names, name)
	}
	clear(pc.pending)
	pc.mu.Unlock()

	slices.Sort(names)
	var errs []error
	for _, name := range names {
		if err := pc.Reload(name); err != nil {
			errs = append(errs, fmt.Errorf("reloading %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Release deletes all programs in the cache.
func (pc *ProgramCache) Release() {
	for _, pr := range pc.programs {
		pr.release()
	}
	clear(pc.programs)
}
