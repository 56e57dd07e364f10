// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesOnPaths(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(a, "x.toml"), nil, 0666))
	require.NoError(t, os.WriteFile(filepath.Join(b, "x.toml"), nil, 0666))
	require.NoError(t, os.Mkdir(filepath.Join(b, "y.toml"), 0777))

	ok, err := FileExists(filepath.Join(a, "x.toml"))
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExists(filepath.Join(b, "y.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExists(filepath.Join(a, "missing"))
	assert.NoError(t, err)
	assert.False(t, ok)

	fs := FindFilesOnPaths([]string{a, b, filepath.Join(a, "none")}, "x.toml", "y.toml")
	assert.Equal(t, []string{filepath.Join(a, "x.toml"), filepath.Join(b, "x.toml")}, fs)
	assert.Nil(t, FindFilesOnPaths([]string{a}, "y.toml"))
}
