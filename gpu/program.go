// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/glscene/math32"
)

// Program is a linked shader program on a [Backend], with the set of
// its active uniform names. It remembers the last value set for each
// uniform so that they can be restored after the program is recompiled.
type Program struct {

	// Name is the program name, which is the prefix of its
	// shader source keys.
	Name string

	backend  Backend
	handle   Handle
	uniforms map[string]struct{}

	// values are the last values set, in the order first set.
	values map[string]any
	order  []string
}

// UniformValue are the value types that can be set on uniforms.
type UniformValue interface {
	math32.Vector3 | math32.Matrix3 | math32.Matrix4
}

// NewProgram compiles the named program from the given sources.
func NewProgram(b Backend, sources *ShaderSources, name string) (*Program, error) {
	pr := &Program{Name: name, backend: b, values: map[string]any{}}
	if err := pr.compile(sources); err != nil {
		return nil, err
	}
	return pr, nil
}

// compile compiles the program and replaces the current handle on success.
func (pr *Program) compile(sources *ShaderSources) error {
	vert, frag, err := sources.Program(pr.Name)
	if err != nil {
		return fmt.Errorf("gpu.Program %q: %w", pr.Name, err)
	}
	handle, err := pr.backend.CompileProgram(pr.Name, vert, frag)
	if err != nil {
		return fmt.Errorf("gpu.Program %q: %w", pr.Name, err)
	}
	pr.handle = handle
	pr.uniforms = map[string]struct{}{}
	for _, u := range pr.backend.ActiveUniforms(handle) {
		pr.uniforms[u] = struct{}{}
	}
	slog.Debug("gpu: compiled program", "name", pr.Name, "uniforms", pr.Uniforms())
	return nil
}

// Handle returns the backend program handle.
func (pr *Program) Handle() Handle {
	return pr.handle
}

// Use makes this the current program.
func (pr *Program) Use() {
	pr.backend.UseProgram(pr.handle)
}

// Uniforms returns the sorted names of the active uniforms.
func (pr *Program) Uniforms() []string {
	names := make([]string, 0, len(pr.uniforms))
	for u := range pr.uniforms {
		names = append(names, u)
	}
	slices.Sort(names)
	return names
}

// HasUniform returns whether the named uniform is active in the program.
func (pr *Program) HasUniform(name string) bool {
	_, ok := pr.uniforms[name]
	return ok
}

// SetVector3 sets the named vec3 uniform.
func (pr *Program) SetVector3(name string, v math32.Vector3) error {
	return pr.set(name, v)
}

// SetMatrix3 sets the named mat3 uniform.
func (pr *Program) SetMatrix3(name string, m math32.Matrix3) error {
	return pr.set(name, m)
}

// SetMatrix4 sets the named mat4 uniform.
func (pr *Program) SetMatrix4(name string, m math32.Matrix4) error {
	return pr.set(name, m)
}

// SetUniform sets the named uniform of the given program to v.
// The location is looked up by name at call time, and a name that is
// not an active uniform of the program returns [ErrUniformNotFound].
func SetUniform[T UniformValue](pr *Program, name string, v T) error {
	return pr.set(name, v)
}

func (pr *Program) set(name string, v any) error {
	if err := pr.upload(name, v); err != nil {
		return err
	}
	if _, has := pr.values[name]; !has {
		pr.order = append(pr.order, name)
	}
	pr.values[name] = v
	return nil
}

// upload sets the uniform on the backend, making the program current.
func (pr *Program) upload(name string, v any) error {
	loc, ok := pr.backend.UniformLocation(pr.handle, name)
	if !ok {
		return fmt.Errorf("%w: %q in program %q", ErrUniformNotFound, name, pr.Name)
	}
	pr.backend.UseProgram(pr.handle)
	switch v := v.(type) {
	case math32.Vector3:
		pr.backend.Uniform3f(loc, v.X, v.Y, v.Z)
	case math32.Matrix3:
		pr.backend.UniformMatrix3fv(loc, [9]float32(v.GL()))
	case math32.Matrix4:
		pr.backend.UniformMatrix4fv(loc, [16]float32(v.GL()))
	}
	return nil
}

// restore uploads all remembered uniform values, in the order first set.
// Uniforms that are no longer active are logged and dropped.
func (pr *Program) restore() {
	for _, name := range slices.Clone(pr.order) {
		if err := pr.upload(name, pr.values[name]); err != nil {
			slog.Warn("gpu: dropping uniform after reload", "err", err)
			delete(pr.values, name)
			pr.order = slices.DeleteFunc(pr.order, func(s string) bool { return s == name })
		}
	}
}

// release deletes the backend program.
func (pr *Program) release() {
	pr.backend.DeleteProgram(pr.handle)
}
