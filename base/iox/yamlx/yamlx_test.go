// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape struct {
	Kind   string    `yaml:"kind"`
	Points []float32 `yaml:"points"`
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("kind: box\npoints: [0, 0, 2, 2]\n"), 0666))

	s := shape{}
	require.NoError(t, Open(&s, fn))
	assert.Equal(t, shape{Kind: "box", Points: []float32{0, 0, 2, 2}}, s)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(shape{Kind: "circle", Points: []float32{1}}, &buf))
	assert.Equal(t, "kind: circle\npoints:\n  - 1\n", buf.String())
}
