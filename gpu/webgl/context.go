// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package webgl implements [gpu.Backend] on WebGL2 in the browser,
// through syscall/js.
package webgl

import (
	"context"
	"fmt"
	"log/slog"
	"syscall/js"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
)

// Context is a WebGL2 rendering context on a canvas element.
type Context struct {

	// Canvas is the canvas element drawn into.
	Canvas js.Value

	// GL is the WebGL2RenderingContext.
	GL js.Value

	consts    glConsts
	depthTest bool
	lost      bool
	onLost    js.Func
}

// NewContext gets a WebGL2 context on the canvas with id cfg.CanvasID,
// or on a new canvas appended to the document body if it is empty.
// cfg is [config.Default] if nil.
func NewContext(cfg *config.Config) (*Context, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	doc := js.Global().Get("document")
	var canvas js.Value
	if cfg.CanvasID != "" {
		canvas = doc.Call("getElementById", cfg.CanvasID)
		if canvas.IsNull() {
			return nil, errors.Log(fmt.Errorf("webgl: no canvas with id %q: %w", cfg.CanvasID, gpu.ErrContext))
		}
	} else {
		canvas = doc.Call("createElement", "canvas")
		doc.Get("body").Call("appendChild", canvas)
	}
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)
	if cfg.Title != "" {
		doc.Set("title", cfg.Title)
	}

	gl := canvas.Call("getContext", "webgl2")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, errors.Log(fmt.Errorf("webgl: webgl2 not supported: %w", gpu.ErrContext))
	}
	c := &Context{Canvas: canvas, GL: gl, depthTest: cfg.DepthTest}
	c.initConsts()

	c.onLost = js.FuncOf(func(this js.Value, args []js.Value) any {
		slog.Error("webgl: context lost")
		c.lost = true
		return nil
	})
	canvas.Call("addEventListener", "webglcontextlost", c.onLost)

	gl.Call("viewport", 0, 0, gl.Get("drawingBufferWidth"), gl.Get("drawingBufferHeight"))
	if cfg.DepthTest {
		gl.Call("enable", c.consts.depthTest)
	}
	cc := cfg.ClearColor
	c.SetClearColor(cc[0], cc[1], cc[2], cc[3])

	slog.Info("webgl: context created", "version", gl.Call("getParameter", gl.Get("VERSION")).String(),
		"width", cfg.Width, "height", cfg.Height)
	return c, nil
}

func (c *Context) SetClearColor(red, green, blue, alpha float32) {
	c.GL.Call("clearColor", red, green, blue, alpha)
}

func (c *Context) Clear() {
	bits := c.consts.colorBufferBit
	if c.depthTest {
		bits |= c.consts.depthBufferBit
	}
	c.GL.Call("clear", bits)
}

// ShouldClose returns true once the WebGL context has been lost.
func (c *Context) ShouldClose() bool {
	return c.lost || c.GL.Call("isContextLost").Bool()
}

// BeforeDraw clears the frame; the browser delivers events itself.
func (c *Context) BeforeDraw() {
	c.Clear()
}

// AfterDraw does nothing: the browser presents the canvas
// when the animation frame callback returns.
func (c *Context) AfterDraw() {}

// Run calls frame from requestAnimationFrame callbacks, re-registering
// after each frame, and blocks until the loop stops.
func (c *Context) Run(ctx context.Context, frame gpu.FrameFunc) error {
	var fc gpu.FrameClock
	var result error
	done := make(chan struct{})
	var id js.Value
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		if c.ShouldClose() {
			close(done)
			return nil
		}
		if stop, err := gpu.FrameResult(gpu.DrawFrame(c, &fc, frame)); stop {
			result = err
			close(done)
			return nil
		}
		id = js.Global().Call("requestAnimationFrame", f)
		return nil
	})
	defer f.Release()
	id = js.Global().Call("requestAnimationFrame", f)

	select {
	case <-done:
	case <-ctx.Done():
		js.Global().Call("cancelAnimationFrame", id)
	}
	return result
}

// Release removes the canvas listener and loses the context.
func (c *Context) Release() {
	if c.GL.IsUndefined() {
		return
	}
	c.Canvas.Call("removeEventListener", "webglcontextlost", c.onLost)
	c.onLost.Release()
	if ext := c.GL.Call("getExtension", "WEBGL_lose_context"); !ext.IsNull() {
		ext.Call("loseContext")
	}
	c.GL = js.Undefined()
}

var _ gpu.Backend = (*Context)(nil)
