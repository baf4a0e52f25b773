// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/glscene/base/errors"

var (
	// ErrShaderNotFound is returned when a shader source key
	// is not in the [ShaderSources] table.
	ErrShaderNotFound = errors.New("gpu: shader source not found")

	// ErrCompile is returned when a shader fails to compile.
	ErrCompile = errors.New("gpu: shader compile failed")

	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("gpu: program link failed")

	// ErrUniformNotFound is returned when setting a uniform
	// that is not active in the program.
	ErrUniformNotFound = errors.New("gpu: uniform not found")

	// ErrOverflow is returned when a count, offset or index does not
	// fit in the integer width that the graphics API takes.
	ErrOverflow = errors.New("gpu: integer overflow")

	// ErrContext is returned when the graphics context cannot create
	// an object, for example because the WebGL context was lost.
	ErrContext = errors.New("gpu: graphics context unavailable")

	// ErrStop can be returned by a [FrameFunc] to stop [Backend.Run]
	// without an error.
	ErrStop = errors.New("gpu: stop frames")
)
