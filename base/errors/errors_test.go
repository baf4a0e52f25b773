// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func value(fail bool) (int, error) {
	if fail {
		return 0, errTest
	}
	return 3, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(errTest), errTest)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must1(value(false)))
	assert.Panics(t, func() { Must1(value(true)) })
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", errTest)
	assert.True(t, Is(err, errTest))
	joined := Join(err, nil)
	assert.True(t, Is(joined, errTest))
}
