// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package gpu

// ShaderDialect is the embedded shader directory for this build:
// GLSL 300 es.
const ShaderDialect = "webgl"
