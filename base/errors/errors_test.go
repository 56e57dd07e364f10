// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLogs(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := Log(fmt.Errorf("wrapping: %w", errTest))
	assert.True(t, Is(err, errTest))
	assert.Contains(t, buf.String(), "wrapping: test error")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	buf := captureLogs(t)
	assert.Equal(t, 5, Log1(5, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, Log1(0, errTest))
	assert.Contains(t, buf.String(), "test error")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithValue(t, errTest, func() { Must(errTest) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, "x", Ignore1("x", errTest))
}
