// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package gpu

import "syscall/js"

// Handle is an opaque graphics object: a program, buffer or
// vertex array. On web builds it is the WebGL object.
type Handle = js.Value

// Location is a uniform location within a program.
// On web builds it is a WebGLUniformLocation.
type Location = js.Value
