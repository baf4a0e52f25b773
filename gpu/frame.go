// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"time"

	"cogentcore.org/glscene/base/errors"
)

// FrameInfo describes the frame being drawn.
type FrameInfo struct {

	// Index is the number of frames drawn before this one.
	Index uint64

	// Time is the time since the first frame.
	Time time.Duration

	// Delta is the time since the previous frame, 0 for the first one.
	Delta time.Duration
}

// FrameFunc draws one frame. See [Backend.Run].
type FrameFunc func(fi FrameInfo) error

// FrameClock generates the [FrameInfo] for successive frames.
// The zero value starts counting at the first call to Next.
type FrameClock struct {
	start time.Time
	last  time.Time
	index uint64

	// now is [time.Now] unless overridden for tests.
	now func() time.Time
}

// Next returns the info for the next frame.
func (fc *FrameClock) Next() FrameInfo {
	now := time.Now()
	if fc.now != nil {
		now = fc.now()
	}
	if fc.index == 0 {
		fc.start = now
		fc.last = now
	}
	fi := FrameInfo{Index: fc.index, Time: now.Sub(fc.start), Delta: now.Sub(fc.last)}
	fc.last = now
	fc.index++
	return fi
}

// DrawFrame runs one frame of a [Backend.Run] loop:
// BeforeDraw, frame, and AfterDraw. It returns the frame error,
// and is meant for use by Backend implementations.
func DrawFrame(b Backend, fc *FrameClock, frame FrameFunc) error {
	b.BeforeDraw()
	err := frame(fc.Next())
	b.AfterDraw()
	return err
}

// FrameResult converts the error returned by a [FrameFunc]
// into the result of [Backend.Run], and whether the loop should stop.
func FrameResult(err error) (stop bool, result error) {
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrStop):
		return true, nil
	default:
		return true, err
	}
}
