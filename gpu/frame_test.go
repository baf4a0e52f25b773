// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{start, start.Add(16 * time.Millisecond), start.Add(40 * time.Millisecond)}
	i := 0
	fc := FrameClock{now: func() time.Time {
		t := times[i]
		i++
		return t
	}}

	assert.Equal(t, FrameInfo{Index: 0}, fc.Next())
	assert.Equal(t, FrameInfo{Index: 1, Time: 16 * time.Millisecond, Delta: 16 * time.Millisecond}, fc.Next())
	assert.Equal(t, FrameInfo{Index: 2, Time: 40 * time.Millisecond, Delta: 24 * time.Millisecond}, fc.Next())
}

func TestFrameResult(t *testing.T) {
	stop, err := FrameResult(nil)
	assert.False(t, stop)
	assert.NoError(t, err)

	stop, err = FrameResult(ErrStop)
	assert.True(t, stop)
	assert.NoError(t, err)

	stop, err = FrameResult(errors.Join(errors.New("done"), ErrStop))
	assert.True(t, stop)
	assert.NoError(t, err)

	bad := errors.New("bad frame")
	stop, err = FrameResult(bad)
	assert.True(t, stop)
	assert.Equal(t, bad, err)
}
