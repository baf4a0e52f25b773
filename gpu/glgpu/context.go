// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package glgpu implements [gpu.Backend] on desktop OpenGL 4.1 core,
// with a glfw window providing the context.
//
// The context must be created and used on the main thread: programs
// should call runtime.LockOSThread in an init function.
package glgpu

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/glscene/base/errors"
	"cogentcore.org/glscene/config"
	"cogentcore.org/glscene/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is a glfw window with a current OpenGL 4.1 core context.
type Context struct {

	// Window is the glfw window owning the context.
	Window *glfw.Window

	depthTest bool
}

// NewContext initializes glfw, opens a window as given by cfg (or
// [config.Default] if nil) and makes its OpenGL context current.
// It must be called on the main thread.
func NewContext(cfg *config.Config) (*Context, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(fmt.Errorf("glgpu: glfw init: %w: %w", gpu.ErrContext, err))
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("glgpu: creating window: %w: %w", gpu.ErrContext, err))
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("glgpu: gl init: %w: %w", gpu.ErrContext, err))
	}

	c := &Context{Window: win, depthTest: cfg.DepthTest}
	fw, fh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	cc := cfg.ClearColor
	c.SetClearColor(cc[0], cc[1], cc[2], cc[3])

	slog.Info("glgpu: context created", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)), "width", fw, "height", fh)
	return c, nil
}

func (c *Context) SetClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (c *Context) Clear() {
	bits := uint32(gl.COLOR_BUFFER_BIT)
	if c.depthTest {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *Context) ShouldClose() bool {
	return c.Window.ShouldClose()
}

// BeforeDraw clears the frame and processes pending window events.
func (c *Context) BeforeDraw() {
	c.Clear()
	glfw.PollEvents()
}

// AfterDraw presents the frame.
func (c *Context) AfterDraw() {
	c.Window.SwapBuffers()
}

// Run loops on the calling thread, which must be the main thread.
func (c *Context) Run(ctx context.Context, frame gpu.FrameFunc) error {
	var fc gpu.FrameClock
	for !c.ShouldClose() {
		if ctx.Err() != nil {
			slog.Debug("glgpu: run canceled")
			return nil
		}
		if stop, err := gpu.FrameResult(gpu.DrawFrame(c, &fc, frame)); stop {
			return err
		}
	}
	return nil
}

// Release destroys the window and terminates glfw.
func (c *Context) Release() {
	if c.Window == nil {
		return
	}
	c.Window.Destroy()
	c.Window = nil
	glfw.Terminate()
}

var _ gpu.Backend = (*Context)(nil)
