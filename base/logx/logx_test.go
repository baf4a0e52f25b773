// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelWarn,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		lv, err := LevelFromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, lv, s)
	}
	_, err := LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	lg := slog.New(NewHandler(&b, slog.LevelInfo))
	lg.Debug("hidden")
	lg.Info("shown", "n", 3)
	// not a terminal, so no escape codes
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "level=INFO")
	assert.Contains(t, b.String(), "n=3")
	assert.NotContains(t, b.String(), "\x1b[")
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	UserLevel = slog.LevelWarn
}
