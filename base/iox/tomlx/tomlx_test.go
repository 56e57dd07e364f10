// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name    string
	Epsilon float32
	Color   bool
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, os.WriteFile(base, []byte("Name = \"base\"\nEpsilon = 0.5\nColor = true\n"), 0666))
	require.NoError(t, os.WriteFile(over, []byte("Epsilon = 0.25\n"), 0666))

	s := &settings{}
	require.NoError(t, OpenFiles(s, base, over))
	assert.Equal(t, settings{Name: "base", Epsilon: 0.25, Color: true}, *s)

	assert.Error(t, OpenFiles(s, filepath.Join(dir, "missing.toml")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.toml")
	want := settings{Name: "x", Epsilon: 1e-6}
	require.NoError(t, Save(&want, fn))

	got := settings{}
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, want, got)
}

func TestReadBytesError(t *testing.T) {
	s := &settings{}
	assert.Error(t, ReadBytes(s, []byte("Name = ")))
}
