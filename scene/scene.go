// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a flat list of drawables, typically [Entity]
// values, drawn in insertion order on a [gpu.Backend].
package scene

import (
	"fmt"

	"cogentcore.org/glscene/gpu"
)

// Drawable is anything that can draw itself on a backend.
type Drawable interface {
	Draw(b gpu.Backend) error
}

// Releaser is a [Drawable] that holds backend resources.
type Releaser interface {
	Release(b gpu.Backend)
}

// DrawFunc is a [Drawable] function, for drawing steps
// that are not entities.
type DrawFunc func(b gpu.Backend) error

func (f DrawFunc) Draw(b gpu.Backend) error {
	return f(b)
}

// Scene is an ordered list of drawables.
type Scene struct {
	Entities []Drawable
}

// New returns a new scene with the given entities.
func New(entities ...Drawable) *Scene {
	return &Scene{Entities: entities}
}

// Add appends entities to the scene.
func (sc *Scene) Add(entities ...Drawable) {
	sc.Entities = append(sc.Entities, entities...)
}

// Len returns the number of entities.
func (sc *Scene) Len() int {
	return len(sc.Entities)
}

// Draw draws all entities in order, stopping at the first error.
func (sc *Scene) Draw(b gpu.Backend) error {
	for i, en := range sc.Entities {
		if err := en.Draw(b); err != nil {
			return fmt.Errorf("scene: entity %d: %w", i, err)
		}
	}
	return nil
}

// Release releases all entities that hold resources
// and empties the scene.
func (sc *Scene) Release(b gpu.Backend) {
	for _, en := range sc.Entities {
		if r, ok := en.(Releaser); ok {
			r.Release(b)
		}
	}
	sc.Entities = nil
}

var (
	_ Drawable = (*Entity)(nil)
	_ Releaser = (*Entity)(nil)
	_ Drawable = (*Scene)(nil)
	_ Releaser = (*Scene)(nil)
)
