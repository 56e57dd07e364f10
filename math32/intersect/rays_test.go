// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"cogentcore.org/geom/math32"
	"github.com/stretchr/testify/assert"
)

func TestRayLine(t *testing.T) {
	origin, dir := math32.Vec2(0, 0), math32.Vec2(1, 0)
	tolassert.EqualTol(t, 5, RayLine(origin, dir, math32.Vec2(5, 0), math32.Vec2(-1, 0), 1e-6), standardTol)
	tolassert.EqualTol(t, 5, RayLine(origin, dir, math32.Vec2(5, 3), math32.Vec2(-1, 0), 1e-6), standardTol)
	assert.Equal(t, float32(-1), RayLine(origin, dir, math32.Vec2(5, 0), math32.Vec2(1, 0), 1e-6), "back facing")
	assert.Equal(t, float32(-1), RayLine(origin, dir, math32.Vec2(-5, 0), math32.Vec2(-1, 0), 1e-6), "behind")
}

func TestRayCircle(t *testing.T) {
	origin, dir := math32.Vec2(0, 0), math32.Vec2(1, 0)

	hits, ok := RayCircleHits(origin, dir, math32.Vec2(5, 0), 4)
	assert.True(t, ok)
	tolassert.EqualTol(t, 3, hits.Min, standardTol)
	tolassert.EqualTol(t, 7, hits.Max, standardTol)

	hits, ok = RayCircleHits(origin, dir, math32.Vec2(5, 2), 4)
	assert.True(t, ok, "tangent")
	assert.Equal(t, hits.Min, hits.Max)
	tolassert.EqualTol(t, 5, hits.Min, standardTol)

	hits, ok = RayCircleHits(math32.Vec2(0, -1), dir, math32.Vec2(0, 0), 1)
	assert.True(t, ok, "tangent at origin")
	assert.Equal(t, float32(0), hits.Min)
	assert.Equal(t, float32(0), hits.Max)

	hits, ok = RayCircleHits(origin, dir, math32.Vec2(1, 0), 4)
	assert.True(t, ok, "inside")
	tolassert.EqualTol(t, -1, hits.Min, standardTol)
	tolassert.EqualTol(t, 3, hits.Max, standardTol)

	assert.False(t, RayCircle(origin, dir, math32.Vec2(5, 3), 4), "miss")
	assert.False(t, RayCircle(origin, dir, math32.Vec2(-5, 0), 4), "behind")
	assert.True(t, RayCircle(origin, math32.Vec2(1, 1).Normal(), math32.Vec2(3, 3), 1))
}

func TestRayAarInside(t *testing.T) {
	min, max := math32.Vec2(0, 0), math32.Vec2(1, 1)
	origin := math32.Vec2(0.5, 0.5)
	dirs := []math32.Vector2{
		math32.Vec2(1, 0), math32.Vec2(-1, 0), math32.Vec2(0, 1), math32.Vec2(0, -1),
		math32.Vec2(1, 1), math32.Vec2(-1, 0.3), math32.Vec2(0.2, -5),
	}
	for _, dir := range dirs {
		hits, ok := RayAarHits(origin, dir, min, max)
		assert.True(t, ok, dir)
		assert.Less(t, hits.Min, float32(0), dir)
		assert.Greater(t, hits.Max, float32(0), dir)
	}
}

func TestRayAar(t *testing.T) {
	min, max := math32.Vec2(0, 0), math32.Vec2(1, 1)

	hits, ok := RayAarHits(math32.Vec2(-1, 0.5), math32.Vec2(1, 0), min, max)
	assert.True(t, ok)
	tolassert.EqualTol(t, 1, hits.Min, standardTol)
	tolassert.EqualTol(t, 2, hits.Max, standardTol)

	// t is measured in units of |dir|
	hits, ok = RayAarHits(math32.Vec2(-1, 0.5), math32.Vec2(2, 0), min, max)
	assert.True(t, ok)
	tolassert.EqualTol(t, 0.5, hits.Min, standardTol)
	tolassert.EqualTol(t, 1, hits.Max, standardTol)

	assert.True(t, RayAar(math32.Vec2(-1, -1), math32.Vec2(1, 1), min, max))
	assert.False(t, RayAar(math32.Vec2(-1, 2), math32.Vec2(1, 0), min, max), "parallel outside")
	assert.False(t, RayAar(math32.Vec2(2, 0.5), math32.Vec2(1, 0), min, max), "behind")
	assert.False(t, RayAar(math32.Vec2(-1, 0), math32.Vec2(1, 3), min, max), "passes over")
}
