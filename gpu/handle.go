// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package gpu

// Handle is an opaque graphics object name: a program,
// buffer or vertex array. On native builds it is the OpenGL
// object name.
type Handle = uint32

// Location is a uniform location within a program.
// On native builds it is the OpenGL uniform location.
type Location = int32
