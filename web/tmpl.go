// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"bytes"
	_ "embed"
	"html/template"

	"cogentcore.org/glscene/config"
)

//go:embed index.html
var indexHTML string

// IndexTmpl is the template used in [MakeIndex] to build index.html.
var IndexTmpl = template.Must(template.New("index.html").Parse(indexHTML))

// DefaultCanvasID is the canvas id used when the config has none.
const DefaultCanvasID = "app"

// IndexData is the data passed to [IndexTmpl].
type IndexData struct {
	Title    string
	CanvasID string
	Width    int
	Height   int

	// Wasm is the path of the wasm binary relative to the page.
	Wasm string

	// Argv is the command line the wasm program sees, so that it
	// draws into the canvas of this page.
	Argv []string
}

// NewIndexData returns the page data for running the given wasm
// binary with the title, canvas and size of c.
func NewIndexData(c *config.Config, wasm string) *IndexData {
	id := c.CanvasID
	if id == "" {
		id = DefaultCanvasID
	}
	return &IndexData{
		Title:    c.Title,
		CanvasID: id,
		Width:    c.Width,
		Height:   c.Height,
		Wasm:     wasm,
		Argv:     []string{wasm, "-canvas", id},
	}
}

// MakeIndex executes [IndexTmpl] with d.
func MakeIndex(d *IndexData) ([]byte, error) {
	b := &bytes.Buffer{}
	err := IndexTmpl.Execute(b, d)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
