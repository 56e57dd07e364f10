// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/geom/base/logx"
	"cogentcore.org/geom/query"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sceneTOML = filepath.Join("..", "..", "query", "testdata", "scene.toml")
	sceneYAML = filepath.Join("..", "..", "query", "testdata", "scene.yaml")
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev, prevLevel := slog.Default(), logx.UserLevel
	t.Cleanup(func() {
		slog.SetDefault(prev)
		logx.UserLevel = prevLevel
		logx.SetColor(true)
	})

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	for _, args := range [][]string{
		{"--color=false", "eval", sceneTOML},
		{"--color=false", sceneYAML},
	} {
		out, err := run(t, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "hit  chord point=(4, 0) halfLength=3\n", args)
		assert.Contains(t, out, "miss closest-point(q, tri) point=(2, 2) region=Edge\n", args)
		assert.Contains(t, out, "hit  ray-triangle(r3, t3) distance=5\n", args)
	}

	out, err := run(t, "--color=false", "eval", sceneTOML, sceneYAML)
	require.NoError(t, err)
	assert.Contains(t, out, sceneTOML+"\n")
	assert.Contains(t, out, sceneYAML+"\n")
}

func TestEvalYAML(t *testing.T) {
	out, err := run(t, "--format", "yaml", sceneTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "query: chord")
	assert.Contains(t, out, "halfLength: 3")
	assert.NotContains(t, out, "miss")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "geomq.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("Format = \"yaml\"\nColor = false\n"), 0666))

	out, err := run(t, "--config", cfgFile, sceneTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "query: chord")

	// flags override the config file
	out, err = run(t, "--config", cfgFile, "--format", "text", sceneTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "hit  chord")

	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), sceneTOML)
	assert.Error(t, err)

	_, err = run(t, "--format", "json", sceneTOML)
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "--epsilon", "-1", sceneTOML)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	c.Format = "yaml"
	c.Epsilon = 1e-3
	assert.NoError(t, c.Validate())
	c.Format = ""
	assert.Error(t, c.Validate())
}

func TestEvalErrors(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(`shapes:
  - {name: p, kind: point, point: [0, 0]}
  - {name: c, kind: circle, center: [0, 0], radius: 1}
queries:
  - {op: point-circle, shapes: [p, c]}
  - {op: point-hexagon, shapes: [p, c]}
`), 0666))

	out, err := run(t, "--color=false", fn)
	assert.ErrorIs(t, err, query.ErrUnknownOp)
	assert.Equal(t, 1, strings.Count(err.Error(), "unknown operation"))
	assert.Contains(t, out, "hit  point-circle(p, c)")

	out, err = run(t, "--format=yaml", fn)
	assert.ErrorIs(t, err, query.ErrUnknownOp)
	assert.Equal(t, 1, strings.Count(err.Error(), "unknown operation"))
	assert.Contains(t, out, "point-circle(p, c)")

	_, err = run(t, "eval", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "eval")
	assert.Error(t, err)
}

func TestShapesOps(t *testing.T) {
	out, err := run(t, "--color=false", "shapes", sceneTOML)
	require.NoError(t, err)
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "triangle3")

	out, err = run(t, "--color=false", "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "circle-circle(circle, circle)")
	assert.Contains(t, out, "closest-point3(triangle3, point3)")
}

func TestConfigPaths(t *testing.T) {
	paths := ConfigPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, ".", paths[len(paths)-1])

	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Format = \"yaml\"\nEpsilon = 0.5\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("Epsilon = 0.25\n"), 0666))

	fs := pflag.NewFlagSet("geomq", pflag.ContinueOnError)
	c := DefaultConfig()
	c.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--color=false"}))
	require.NoError(t, c.Open(fs, a, b))
	assert.Equal(t, Config{Epsilon: 0.25, Format: "yaml", Color: false}, c)
}
